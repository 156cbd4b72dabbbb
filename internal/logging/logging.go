// Package logging builds the application logger. Output never goes to the
// terminal the quiz is drawn on.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options configures logger construction.
type Options struct {
	Level  string
	File   string
	Format string
	// Output takes precedence over File when set.
	Output io.Writer
}

// New builds a logger and returns a close func for its output.
func New(opts Options) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	level := strings.TrimSpace(opts.Level)
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(parsed)

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, nil, fmt.Errorf("unknown log format %q (expected text|json)", opts.Format)
	}

	if opts.Output != nil {
		logger.SetOutput(opts.Output)
		return logger, func() error { return nil }, nil
	}
	path := strings.TrimSpace(opts.File)
	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(file)
	return logger, file.Close, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type sessionKey struct{}

// ContextWithSession stores a session id on ctx.
func ContextWithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// WithContext returns log enriched with fields carried by ctx.
func WithContext(ctx context.Context, log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		log = Discard()
	}
	if ctx == nil {
		return log
	}
	if id, ok := ctx.Value(sessionKey{}).(string); ok && id != "" {
		return log.WithField("session_id", id)
	}
	return log
}
