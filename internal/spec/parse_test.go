package spec

import (
	"errors"
	"strings"
	"testing"
)

// TestParseConfigValid verifies valid config parsing succeeds.
func TestParseConfigValid(t *testing.T) {
	data := []byte(`version: 1
catalog:
  file: "questions.yml"
  min_answer_length: 25
ui:
  mode: plain
evaluator:
  model: gpt-3.5-turbo
log:
  level: debug
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Catalog.MinAnswerLength != 25 || cfg.UI.Mode != "plain" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

// TestParseConfigUnknownField verifies unknown fields are rejected.
func TestParseConfigUnknownField(t *testing.T) {
	data := []byte(`version: 1
catalog:
  file: "questions.yml"
unknown: true
`)
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

// TestParseConfigRejectsMultipleDocs verifies multiple YAML docs are rejected.
func TestParseConfigRejectsMultipleDocs(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{name: "full second document", data: "version: 1\n---\nversion: 1\n"},
		{name: "unknown keys in second document", data: "version: 1\n---\nanything: true\n"},
		{name: "scalar second document", data: "version: 1\n---\nhello\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.data))
			if !errors.Is(err, ErrMultipleDocuments) {
				t.Fatalf("expected multiple documents error, got %v", err)
			}
		})
	}
}

// TestParseConfigSyntaxErrorInSecondDocument keeps the yaml error.
func TestParseConfigSyntaxErrorInSecondDocument(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\n---\nkey: [unclosed\n"))
	if err == nil || errors.Is(err, ErrMultipleDocuments) || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected yaml syntax error, got %v", err)
	}
}
