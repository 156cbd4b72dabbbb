package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoadYAML verifies YAML catalogs load and normalize properly.
func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yml")
	payload := `version: 1
questions:
  - id: 7
    category: " Power_Electronics "
    difficulty: Hard
    question: "  What limits buck converter efficiency? "
    model_answer: "Switching and conduction losses."
    key_points: [" losses ", "frequency"]
    follow_up: "How does dead time matter?"
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 question, got %d", c.Len())
	}
	q := c.At(0)
	if q.ID != 7 {
		t.Fatalf("expected id 7, got %d", q.ID)
	}
	if q.Category != "power_electronics" {
		t.Fatalf("expected normalized category, got %q", q.Category)
	}
	if q.Difficulty != Hard {
		t.Fatalf("expected hard difficulty, got %q", q.Difficulty)
	}
	if q.Prompt != "What limits buck converter efficiency?" {
		t.Fatalf("expected trimmed prompt, got %q", q.Prompt)
	}
	if len(q.KeyPoints) != 2 || q.KeyPoints[0] != "losses" {
		t.Fatalf("unexpected key points: %+v", q.KeyPoints)
	}
}

// TestLoadJSON verifies JSON catalogs are parsed and validated.
func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")
	payload := `{
  "version": 1,
  "questions": [
    {
      "id": 3,
      "category": "digital_design",
      "difficulty": "easy",
      "question": "What is a mux?",
      "model_answer": "A selector.",
      "key_points": ["select lines"],
      "follow_up": "Build a 4:1 mux from 2:1 muxes."
    }
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if c.Len() != 1 || c.At(0).ID != 3 {
		t.Fatalf("unexpected catalog: %+v", c.Questions())
	}
}

// TestLoadRejectsUnknownFields verifies strict decoding.
func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("version: 1\nextra: true\nquestions: []\n"), ".yaml")
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
	if !strings.Contains(err.Error(), "parse yaml") {
		t.Fatalf("expected parse yaml error, got %v", err)
	}
}

// TestLoadRejectsMultipleDocuments verifies single-document enforcement.
func TestLoadRejectsMultipleDocuments(t *testing.T) {
	cases := []struct {
		name string
		data string
		ext  string
	}{
		{name: "yaml catalog twice", data: "version: 1\n---\nversion: 1\n", ext: ".yml"},
		{name: "yaml arbitrary keys", data: "version: 1\n---\nnotes: later\n", ext: ".yaml"},
		{name: "json objects", data: `{"version": 1} {"version": 1}`, ext: ".json"},
		{name: "json array trailer", data: `{"version": 1} []`, ext: ".json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), tc.ext)
			if err == nil || !strings.Contains(err.Error(), "multiple documents are not supported") {
				t.Fatalf("expected multiple documents error, got %v", err)
			}
		})
	}
}

// TestLoadValidationErrors verifies every issue is collected.
func TestLoadValidationErrors(t *testing.T) {
	payload := `version: 1
questions:
  - id: 1
    category: "Digital Design"
    difficulty: impossible
    question: "Q1"
    model_answer: "A1"
    follow_up: "F1"
  - id: 1
    category: digital_design
    difficulty: easy
    question: ""
    model_answer: ""
    follow_up: ""
`
	_, err := Parse([]byte(payload), ".yml")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, issue := range validationErr.Issues {
		fields[issue.Field] = true
	}
	for _, want := range []string{
		"questions[0].category",
		"questions[0].difficulty",
		"questions[1].id",
		"questions[1].question",
		"questions[1].model_answer",
		"questions[1].follow_up",
	} {
		if !fields[want] {
			t.Fatalf("expected issue for %s, got %+v", want, validationErr.Issues)
		}
	}
}

// TestLoadMissingVersion verifies version is required.
func TestLoadMissingVersion(t *testing.T) {
	_, err := Parse([]byte("questions: []\n"), ".yml")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 2 {
		t.Fatalf("expected version and questions issues, got %+v", validationErr.Issues)
	}
}
