package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"coach/internal/spec"
)

// validConfig returns a normalized config used by validation tests.
func validConfig() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

func writeCatalog(t *testing.T, dir, name, payload string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func writeConfig(t *testing.T, root, payload string) string {
	t.Helper()
	dir := ConfigDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func issueFields(t *testing.T, err error) map[string]bool {
	t.Helper()
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	fields := map[string]bool{}
	for _, issue := range validationErr.Issues {
		fields[issue.Field] = true
	}
	return fields
}

const smallCatalog = `version: 1
questions:
  - id: 1
    category: digital_design
    difficulty: easy
    question: "What is a latch?"
    model_answer: "A level-sensitive storage element."
    key_points: ["level sensitive"]
    follow_up: "How does it differ from a flip-flop?"
`
