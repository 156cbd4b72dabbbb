package config

import (
	"os"
	"strings"

	"coach/internal/evaluator"
	"coach/internal/session"
	"coach/internal/spec"
)

// Environment overrides for logging.
const (
	EnvLogLevel = "COACH_LOG_LEVEL"
	EnvLogFile  = "COACH_LOG_FILE"
)

func Normalize(cfg *spec.Config) {
	cfg.Catalog.File = strings.TrimSpace(cfg.Catalog.File)
	if cfg.Catalog.MinAnswerLength == 0 {
		cfg.Catalog.MinAnswerLength = session.DefaultMinAnswerLength
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "auto"
	}
	if strings.TrimSpace(cfg.Evaluator.Model) == "" {
		cfg.Evaluator.Model = evaluator.DefaultModel
	}
	if value := strings.TrimSpace(os.Getenv(EnvLogLevel)); value != "" {
		cfg.Log.Level = value
	}
	if value := strings.TrimSpace(os.Getenv(EnvLogFile)); value != "" {
		cfg.Log.File = value
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
