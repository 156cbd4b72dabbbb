package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"coach/internal/catalog"
	"coach/internal/spec"
)

// Validate checks a config for correctness and the catalog it references.
func Validate(cfg *spec.Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	validateCatalog(cfg, baseDir, collector.add)
	validateUI(cfg, collector.add)
	validateLog(cfg, collector.add)

	return collector.result()
}

func validateCatalog(cfg *spec.Config, baseDir string, add func(field, message string)) {
	if cfg.Catalog.MinAnswerLength < 1 {
		add("catalog.min_answer_length", "must be at least 1")
	}
	if cfg.Catalog.File == "" {
		return
	}
	path := resolvePath(baseDir, cfg.Catalog.File)
	info, err := os.Stat(path)
	if err != nil {
		add("catalog.file", fmt.Sprintf("file not found: %s", path))
		return
	}
	if info.IsDir() {
		add("catalog.file", fmt.Sprintf("%s is a directory", path))
		return
	}
	if _, err := catalog.Load(path); err != nil {
		var validationErr *catalog.ValidationError
		if errors.As(err, &validationErr) {
			for _, issue := range validationErr.Issues {
				add("catalog.file."+issue.Field, issue.Message)
			}
			return
		}
		add("catalog.file", err.Error())
	}
}

func validateUI(cfg *spec.Config, add func(field, message string)) {
	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}
}

func validateLog(cfg *spec.Config, add func(field, message string)) {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		add("log.level", fmt.Sprintf("unknown level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		add("log.format", fmt.Sprintf("invalid format %q (expected text|json)", cfg.Log.Format))
	}
}
