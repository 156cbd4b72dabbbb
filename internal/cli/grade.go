package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"coach/internal/evaluator"
	"coach/internal/scoring"
	"coach/internal/session"
	"coach/internal/ui"
)

// runGrade builds the handler for the grade command.
func runGrade(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		specPath := flags.String("spec", "", "Path to config file (default: search for .coach/config.yml)")
		questionID := flags.Int("question", 0, "Question id to grade against")
		answerText := flags.String("answer", "", "Answer text")
		answerFile := flags.String("answer-file", "", "Read the answer from a file (- for stdin)")
		showModel := flags.Bool("model-answer", false, "Include the model answer in the report")
		useEvaluator := flags.Bool("evaluator", false, "Also print the AI evaluator verdict")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if *questionID <= 0 {
			fmt.Fprintln(stderr, "invalid arguments: --question is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if (*answerText == "") == (*answerFile == "") {
			fmt.Fprintln(stderr, "invalid arguments: exactly one of --answer or --answer-file is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		answer := *answerText
		if *answerFile != "" {
			data, err := readAnswerFile(*answerFile)
			if err != nil {
				fmt.Fprintf(stderr, "%s\n%v\n", failureTitle(cmd.Name), err)
				return ExitError
			}
			answer = data
		}

		env, err := loadEnvironment(*specPath, environmentOptions{})
		if err != nil {
			fmt.Fprintf(stderr, "%s\n%v\n", failureTitle(cmd.Name), err)
			return ExitError
		}
		defer env.Close()

		s, err := session.New(env.catalog, session.Options{
			MinAnswerLength: env.loaded.Config.Catalog.MinAnswerLength,
			Logger:          env.log,
		})
		if err != nil {
			fmt.Fprintf(stderr, "%s\n%v\n", failureTitle(cmd.Name), err)
			return ExitError
		}
		if err := s.Select(*questionID); err != nil {
			fmt.Fprintf(stderr, "%s\n%v\n", failureTitle(cmd.Name), err)
			return ExitError
		}
		if err := s.Submit(answer); err != nil {
			fmt.Fprintln(stderr, ui.AnswerWarning(err, s.MinAnswerLength(), false))
			return ExitError
		}
		result, err := s.Feedback(answer)
		if err != nil {
			fmt.Fprintln(stderr, ui.AnswerWarning(err, s.MinAnswerLength(), true))
			return ExitError
		}

		q := s.Current()
		fmt.Fprintf(stdout, "%s\n%s\n\n", ui.ListEntry(q), ui.Caption(q))
		scoring.WriteReport(stdout, q, result, *showModel)

		if *useEvaluator {
			client := evaluator.FromEnv(env.loaded.Config.Evaluator.Model, env.log)
			ctx := s.Context(context.Background())
			evaluation, err := client.Evaluate(ctx, evaluator.Request{
				Question:    q.Prompt,
				ModelAnswer: q.ModelAnswer,
				UserAnswer:  answer,
				Category:    string(q.Category),
				Difficulty:  string(q.Difficulty),
			})
			if err != nil {
				fmt.Fprintf(stderr, "%s\n%v\n", failureTitle(cmd.Name), err)
				return ExitError
			}
			writeEvaluation(stdout, client.Model(), evaluation)
		}
		return ExitOK
	}
}

func readAnswerFile(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(practiceInput)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return string(data), nil
}

func writeEvaluation(w io.Writer, model string, evaluation evaluator.Evaluation) {
	fmt.Fprintf(w, "\n🤖 AI Evaluation (%s):\n", model)
	fmt.Fprintf(w, "  Score: %s\n", evaluation.Score)
	fmt.Fprintf(w, "  Strengths: %s\n", strings.Join(evaluation.Strengths, "; "))
	fmt.Fprintf(w, "  Technical accuracy: %s\n", evaluation.TechnicalAccuracy)
	fmt.Fprintf(w, "  Missing points: %s\n", strings.Join(evaluation.MissingPoints, "; "))
	fmt.Fprintf(w, "  Improved answer: %s\n", evaluation.ImprovedAnswer)
}
