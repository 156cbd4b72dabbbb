package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coach/internal/evaluator"
	"coach/internal/session"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFile, "")
	cfg := validConfig()

	if cfg.Catalog.MinAnswerLength != session.DefaultMinAnswerLength {
		t.Fatalf("expected min answer length %d, got %d", session.DefaultMinAnswerLength, cfg.Catalog.MinAnswerLength)
	}
	if cfg.UI.Mode != "auto" {
		t.Fatalf("expected ui mode auto, got %q", cfg.UI.Mode)
	}
	if cfg.Evaluator.Model != evaluator.DefaultModel {
		t.Fatalf("expected default model, got %q", cfg.Evaluator.Model)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestNormalizeAppliesEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFile, "/tmp/coach.log")
	cfg := validConfig()

	if cfg.Log.Level != "debug" {
		t.Fatalf("expected env level debug, got %q", cfg.Log.Level)
	}
	if cfg.Log.File != "/tmp/coach.log" {
		t.Fatalf("expected env log file, got %q", cfg.Log.File)
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Validate(&cfg, t.TempDir()); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateCollectsIssues(t *testing.T) {
	cfg := validConfig()
	cfg.Version = 3
	cfg.Catalog.MinAnswerLength = -1
	cfg.UI.Mode = "fancy"
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err := Validate(&cfg, t.TempDir())
	fields := issueFields(t, err)
	for _, field := range []string{"version", "catalog.min_answer_length", "ui.mode", "log.level", "log.format"} {
		if !fields[field] {
			t.Fatalf("expected issue for %s, got %v", field, err)
		}
	}
}

func TestValidateCatalogFile(t *testing.T) {
	root := t.TempDir()
	writeCatalog(t, root, "good.yml", smallCatalog)
	writeCatalog(t, root, "bad.yml", "version: 1\nquestions:\n  - id: 0\n")
	if err := os.Mkdir(filepath.Join(root, "dir.yml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cases := []struct {
		name  string
		file  string
		field string
	}{
		{name: "valid", file: "good.yml"},
		{name: "missing", file: "missing.yml", field: "catalog.file"},
		{name: "directory", file: "dir.yml", field: "catalog.file"},
		{name: "invalid questions", file: "bad.yml", field: "catalog.file.questions[0].id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Catalog.File = tc.file
			err := Validate(&cfg, root)
			if tc.field == "" {
				if err != nil {
					t.Fatalf("validate: %v", err)
				}
				return
			}
			fields := issueFields(t, err)
			if !fields[tc.field] {
				t.Fatalf("expected issue for %s, got %v", tc.field, err)
			}
		})
	}
}

func TestLoadResolvesCatalogRelativeToRoot(t *testing.T) {
	root := t.TempDir()
	writeCatalog(t, root, "questions.yml", smallCatalog)
	path := writeConfig(t, root, "version: 1\ncatalog:\n  file: questions.yml\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c, err := LoadCatalog(cfg, RootFromConfigPath(path))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 question, got %d", c.Len())
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\nquiz: true\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestLoadCatalogDefaultsToBuiltin(t *testing.T) {
	c, err := LoadCatalog(validConfig(), t.TempDir())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if c.Len() != 10 {
		t.Fatalf("expected builtin catalog, got %d questions", c.Len())
	}
}

func TestResolveExplicitPath(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\nui:\n  mode: plain\n")

	loaded, err := Resolve(path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if loaded.Root != root {
		t.Fatalf("expected root %q, got %q", root, loaded.Root)
	}
	if loaded.Config.UI.Mode != "plain" {
		t.Fatalf("expected plain mode, got %q", loaded.Config.UI.Mode)
	}
}

func TestFindConfigPathWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFindConfigPathMissingFile(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(ConfigDir(root), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, err := FindConfigPath(root)
	if err == nil || !strings.Contains(err.Error(), "is missing") {
		t.Fatalf("expected missing config file error, got %v", err)
	}
	if errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("did not expect ErrConfigNotFound when .coach exists")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}

	t.Setenv(evaluator.APIKeyEnv, "")
	os.Unsetenv(evaluator.APIKeyEnv)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENAI_API_KEY=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("load .env: %v", err)
	}
	if got := os.Getenv(evaluator.APIKeyEnv); got != "from-dotenv" {
		t.Fatalf("expected key from .env, got %q", got)
	}
}

func TestScaffoldWritesLoadableConfig(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)

	if err := Scaffold(path, DefaultLogFile); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffold: %v", err)
	}
	if cfg.Catalog.File != ".coach/questions.yml" {
		t.Fatalf("unexpected catalog file %q", cfg.Catalog.File)
	}
	if cfg.Log.File != DefaultLogFile {
		t.Fatalf("unexpected log file %q", cfg.Log.File)
	}
	c, err := LoadCatalog(cfg, root)
	if err != nil {
		t.Fatalf("load scaffold catalog: %v", err)
	}
	if c.Len() != 10 {
		t.Fatalf("expected scaffolded catalog to match builtin, got %d", c.Len())
	}

	if err := Scaffold(path, ""); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected existing file error, got %v", err)
	}
}

func TestScaffoldConfigWithoutLogFile(t *testing.T) {
	rendered, err := renderScaffoldConfig("questions.yml", "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(rendered, "  # file: ") {
		t.Fatalf("expected commented log file, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, `file: "questions.yml"`) {
		t.Fatalf("expected catalog file, got:\n%s", rendered)
	}
}

func TestScaffoldConfigRendersYAMLSections(t *testing.T) {
	rendered, err := renderScaffoldConfig("catalog/questions.yml", "logs/coach.log")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `version: 1
catalog:
  # Questions shown during practice. Remove to use the built-in bank.
  file: "catalog/questions.yml"
  min_answer_length: 20

ui:
  # auto | live | plain
  mode: auto
  no_color: false

evaluator:
  model: "gpt-3.5-turbo"

log:
  level: info
  format: text
  file: "logs/coach.log"
`
	if rendered != want {
		t.Fatalf("unexpected scaffold:\n%s", rendered)
	}
}
