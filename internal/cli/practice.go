package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"coach/internal/session"
	"coach/internal/ui/plain"
	"coach/internal/ui/quiz"
)

// practiceInput allows tests to override stdin for the plain loop.
var practiceInput io.Reader = os.Stdin

// runLiveQuiz is swapped in tests so no terminal program starts.
var runLiveQuiz = quiz.Run

// runPractice builds the handler for the practice command.
func runPractice(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		specPath := flags.String("spec", "", "Path to config file (default: search for .coach/config.yml)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default: config ui.mode)")
		noColor := flags.Bool("no-color", false, "Disable colors in the live UI")
		verbose := flags.Bool("verbose", false, "Log at debug level to stderr and use the plain UI")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		opts := environmentOptions{}
		if *verbose {
			opts.logOutput = stderr
			opts.logLevel = "debug"
		}
		env, err := loadEnvironment(*specPath, opts)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n%v\n", failureTitle(cmd.Name), err)
			return ExitError
		}
		defer env.Close()

		mode := *uiMode
		if mode == "" {
			mode = env.loaded.Config.UI.Mode
		}
		decision, err := resolveUIMode(mode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		s, err := session.New(env.catalog, session.Options{
			MinAnswerLength: env.loaded.Config.Catalog.MinAnswerLength,
			Logger:          env.log,
		})
		if err != nil {
			fmt.Fprintf(stderr, "%s\n%v\n", failureTitle(cmd.Name), err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		ctx = s.Context(ctx)

		log := env.log.WithFields(logrus.Fields{"session_id": s.ID(), "live": decision.useLive})
		log.Info("Practice started")
		if decision.useLive {
			err = runLiveQuiz(ctx, practiceInput, stdout, s, quiz.Options{
				NoColor: *noColor || env.loaded.Config.UI.NoColor,
			})
		} else {
			err = plain.Run(ctx, practiceInput, stdout, s)
		}
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(stderr, "%s\n%v\n", failureTitle(cmd.Name), err)
			return ExitError
		}
		log.WithField("score", s.UserScore()).Info("Practice finished")
		return ExitOK
	}
}
