package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"coach/internal/session"
)

// Run drives the quiz until the user quits or ctx is cancelled.
func Run(ctx context.Context, stdin io.Reader, stdout io.Writer, s *session.Session, opts Options) error {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	program := tea.NewProgram(
		NewModel(s, opts),
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run quiz: %w", err)
	}
	return nil
}
