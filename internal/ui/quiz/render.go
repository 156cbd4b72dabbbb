package quiz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coach/internal/scoring"
	"coach/internal/ui"
)

// Title is the heading shown above the question.
const Title = "⚡ Electronics Interview Coach"

func renderTitle(noColor bool) string {
	if noColor {
		return Title
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Render(Title)
}

// renderProgressLine renders "Question N of M".
func renderProgressLine(state State, noColor bool) string {
	return stylize(ui.ProgressLine(state.Session.Progress()), noColor, lipgloss.Color("242"))
}

// renderQuestion renders the prompt and its caption.
func renderQuestion(state State, noColor bool) string {
	q := state.Session.Current()
	prompt := q.Prompt
	if !noColor {
		prompt = lipgloss.NewStyle().Bold(true).Render(prompt)
	}
	caption := stylize(ui.Caption(q), noColor, lipgloss.Color("244"))
	return lipgloss.JoinVertical(lipgloss.Left, prompt, caption)
}

func renderStatus(status Status, noColor bool) string {
	if status.Text == "" {
		return ""
	}
	switch status.Kind {
	case StatusSuccess:
		return stylize(status.Text, noColor, lipgloss.Color("42"))
	case StatusWarning:
		return stylize(status.Text, noColor, lipgloss.Color("220"))
	default:
		return stylize(status.Text, noColor, lipgloss.Color("39"))
	}
}

// renderFeedback renders the feedback panel text for the current result.
func renderFeedback(state State, noColor bool) string {
	q := state.Session.Current()
	if state.Result == nil {
		if state.ShowModelAnswer {
			return "📘 Model Answer:\n" + q.ModelAnswer
		}
		return ""
	}
	var b strings.Builder
	scoring.WriteReport(&b, q, *state.Result, state.ShowModelAnswer)
	text := strings.TrimRight(b.String(), "\n")
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(scoreColor(state.Result.Score)).Render(text)
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 8:
		return lipgloss.Color("42")
	case score >= 6:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("203")
	}
}

// renderSidebar renders the question bank and progress.
func renderSidebar(state State, width int, noColor bool) string {
	lines := []string{
		stylize("📚 Question Bank", noColor, lipgloss.Color("33")),
		"Category: " + ui.FilterLabel(state.Filter.Category),
		"Difficulty: " + ui.FilterLabel(state.Filter.Difficulty),
		"",
	}
	visible := state.Visible()
	if len(visible) == 0 {
		lines = append(lines, stylize("No questions match the filters.", noColor, lipgloss.Color("244")))
	}
	current := state.Session.Current().ID
	for i, q := range visible {
		marker := "  "
		if state.Focus == FocusSidebar && i == state.Cursor {
			marker = "> "
		}
		line := marker + ui.ListEntry(q)
		switch {
		case state.Focus == FocusSidebar && i == state.Cursor:
			line = stylize(line, noColor, lipgloss.Color("212"))
		case q.ID == current:
			line = stylize(line, noColor, lipgloss.Color("33"))
		}
		lines = append(lines, line)
	}
	lines = append(lines,
		"",
		stylize("📈 Progress", noColor, lipgloss.Color("33")),
		ui.CompletedLine(state.Session.Progress()),
	)
	style := lipgloss.NewStyle().Width(width).Padding(0, 1)
	if !noColor {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
