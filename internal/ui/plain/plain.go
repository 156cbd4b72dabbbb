// Package plain is the line-oriented practice loop used when stdout is not
// a terminal.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coach/internal/catalog"
	"coach/internal/scoring"
	"coach/internal/session"
	"coach/internal/ui"
)

// AnswerTerminator ends a multi-line answer.
const AnswerTerminator = "."

const helpText = `Commands:
  submit                      submit the current answer
  feedback                    grade the submitted answer
  next                        go to the next question
  restart                     clear progress and start over
  select <id>                 jump to a question
  list                        show the question bank
  filter [category|all] [difficulty|all]
                              narrow the question bank
  model                       show the model answer
  help                        show this help
  quit                        leave practice
Any other line starts an answer, including lines that begin with a command
word but do not match the forms above. Finish it with a line containing
only "."`

type loop struct {
	session *session.Session
	out     io.Writer
	filter  catalog.Filter
	answer  string
}

// Run reads commands and answers from in until quit, EOF, or cancellation.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *session.Session) error {
	l := &loop{
		session: s,
		out:     out,
		filter:  catalog.Filter{Category: catalog.All, Difficulty: catalog.All},
		answer:  s.Draft(),
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Fprintln(out, "⚡ Electronics Interview Coach")
	fmt.Fprintln(out, `Type "help" for commands.`)
	l.printQuestion()

	var answerLines []string
	collecting := false
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !collecting {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}
		line := scanner.Text()

		if collecting {
			if strings.TrimSpace(line) == AnswerTerminator {
				collecting = false
				l.setAnswer(strings.Join(answerLines, "\n"))
				continue
			}
			answerLines = append(answerLines, line)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if cmd, ok := parseCommand(trimmed); ok {
			if l.run(cmd) {
				return nil
			}
			continue
		}
		if trimmed == AnswerTerminator {
			continue
		}
		collecting = true
		answerLines = []string{line}
	}
}

func (l *loop) setAnswer(answer string) {
	l.answer = answer
	l.session.SetDraft(answer)
	fmt.Fprintf(l.out, "📝 Answer saved (%d words). Type submit when ready.\n", scoring.WordCount(answer))
}

// command is one parsed command line.
type command struct {
	name string
	id   int
	args []string
}

// parseCommand matches a line against the command grammar. Anything that
// does not match exactly, such as "feedback reduces gain", is answer text.
func parseCommand(line string) (command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, false
	}
	cmd := command{name: strings.ToLower(fields[0]), args: fields[1:]}
	switch cmd.name {
	case "submit", "feedback", "next", "restart", "list", "model", "help", "quit", "exit":
		return cmd, len(cmd.args) == 0
	case "select":
		if len(cmd.args) != 1 {
			return command{}, false
		}
		id, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return command{}, false
		}
		cmd.id = id
		return cmd, true
	case "filter":
		return cmd, len(cmd.args) <= 2
	default:
		return command{}, false
	}
}

// run executes a parsed command and reports whether the loop should quit.
func (l *loop) run(cmd command) (quit bool) {
	switch cmd.name {
	case "submit":
		if err := l.session.Submit(l.answer); err != nil {
			fmt.Fprintln(l.out, ui.AnswerWarning(err, l.session.MinAnswerLength(), false))
			return false
		}
		fmt.Fprintln(l.out, ui.SubmittedMessage("Type feedback"))
	case "feedback":
		l.feedback()
	case "next":
		l.session.Next()
		l.moved()
	case "restart":
		l.session.Restart()
		l.moved()
	case "select":
		l.selectQuestion(cmd.id)
	case "list":
		l.list()
	case "filter":
		l.setFilter(cmd.args)
	case "model":
		fmt.Fprintln(l.out, "📘 Model Answer:")
		fmt.Fprintln(l.out, l.session.Current().ModelAnswer)
	case "help":
		fmt.Fprintln(l.out, helpText)
	case "quit", "exit":
		p := l.session.Progress()
		fmt.Fprintf(l.out, "👋 Session %s ended at %s. Total score: %d\n", l.session.ID(), strings.ToLower(ui.ProgressLine(p)), l.session.UserScore())
		return true
	}
	return false
}

func (l *loop) feedback() {
	if !l.session.AnswerSubmitted() {
		fmt.Fprintln(l.out, "ℹ️ Submit an answer before asking for feedback.")
		return
	}
	result, err := l.session.Feedback(l.answer)
	if err != nil {
		fmt.Fprintln(l.out, ui.AnswerWarning(err, l.session.MinAnswerLength(), true))
		return
	}
	fmt.Fprintln(l.out)
	scoring.WriteReport(l.out, l.session.Current(), result, false)
}

func (l *loop) selectQuestion(id int) {
	l.session.SetDraft(l.answer)
	if err := l.session.Select(id); err != nil {
		if errors.Is(err, session.ErrUnknownQuestion) {
			fmt.Fprintf(l.out, "No question with id %d\n", id)
			return
		}
		fmt.Fprintln(l.out, err)
		return
	}
	l.moved()
}

func (l *loop) setFilter(args []string) {
	l.filter = catalog.Filter{Category: catalog.All, Difficulty: catalog.All}
	if len(args) > 0 {
		l.filter.Category = strings.ToLower(args[0])
	}
	if len(args) > 1 {
		l.filter.Difficulty = strings.ToLower(args[1])
	}
	fmt.Fprintf(l.out, "Filter: category %s, difficulty %s\n", ui.FilterLabel(l.filter.Category), ui.FilterLabel(l.filter.Difficulty))
	l.list()
}

func (l *loop) list() {
	fmt.Fprintln(l.out, "📚 Question Bank")
	visible := l.session.Catalog().Filter(l.filter)
	if len(visible) == 0 {
		fmt.Fprintln(l.out, "  No questions match the filters.")
	}
	current := l.session.Current().ID
	for _, q := range visible {
		marker := "  "
		if q.ID == current {
			marker = "* "
		}
		line := marker + ui.ListEntry(q)
		if score, ok := l.session.ScoreFor(q.ID); ok {
			line += fmt.Sprintf(" [%s]", scoring.ScoreLabel(score))
		}
		fmt.Fprintln(l.out, line)
	}
	fmt.Fprintln(l.out, ui.CompletedLine(l.session.Progress()))
}

// moved reloads the draft and shows the new question.
func (l *loop) moved() {
	l.answer = l.session.Draft()
	l.printQuestion()
}

func (l *loop) printQuestion() {
	q := l.session.Current()
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, ui.ProgressLine(l.session.Progress()))
	fmt.Fprintln(l.out, q.Prompt)
	fmt.Fprintln(l.out, ui.Caption(q))
	if l.answer != "" {
		fmt.Fprintf(l.out, "(draft saved, %d words)\n", scoring.WordCount(l.answer))
	}
}
