package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"coach/internal/catalog"
	"coach/internal/config"
	"coach/internal/logging"
)

// environment is the resolved config, catalog, and logger for a command.
type environment struct {
	loaded   config.Loaded
	catalog  *catalog.Catalog
	log      *logrus.Logger
	closeLog func() error
}

// environmentOptions tweaks how loadEnvironment builds the logger.
type environmentOptions struct {
	logOutput io.Writer
	logLevel  string
}

// loadEnvironment reads .env, resolves config, loads the catalog, and opens
// the log output.
func loadEnvironment(specPath string, opts environmentOptions) (*environment, error) {
	if wd, err := os.Getwd(); err == nil {
		if err := config.LoadDotEnv(wd); err != nil {
			return nil, err
		}
	}
	loaded, err := config.Resolve(specPath)
	if err != nil {
		return nil, err
	}
	c, err := loaded.Catalog()
	if err != nil {
		return nil, err
	}

	logCfg := loaded.Config.Log
	logOpts := logging.Options{
		Level:  logCfg.Level,
		Format: logCfg.Format,
		Output: opts.logOutput,
	}
	if opts.logLevel != "" {
		logOpts.Level = opts.logLevel
	}
	if logCfg.File != "" {
		logOpts.File = logCfg.File
		if !filepath.IsAbs(logOpts.File) {
			logOpts.File = filepath.Join(loaded.Root, logOpts.File)
		}
	}
	log, closeLog, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"config":    configLabel(loaded),
		"questions": c.Len(),
	}).Debug("Environment loaded")
	return &environment{loaded: loaded, catalog: c, log: log, closeLog: closeLog}, nil
}

// Close releases the log output.
func (e *environment) Close() {
	if e == nil || e.closeLog == nil {
		return
	}
	_ = e.closeLog()
}

func configLabel(loaded config.Loaded) string {
	if loaded.Path == "" {
		return "defaults"
	}
	return loaded.Path
}

// parseFlags parses command flags. ok is false when the command should
// return code immediately.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// failureTitle renders "<Cmd> failed:" for a command name.
func failureTitle(name string) string {
	if name == "" {
		return "Command failed:"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " failed:"
}
