package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `version: 1
questions:
  - id: 7
    category: digital_design
    difficulty: easy
    question: "What does a D flip-flop store?"
    model_answer: "One bit, captured on the active clock edge."
    key_points: ["edge triggered"]
    follow_up: "What limits its maximum clock frequency?"
  - id: 8
    category: analog_circuits
    difficulty: hard
    question: "Why does a current mirror need matched transistors?"
    model_answer: "Mismatch in threshold and beta skews the copied current."
    key_points: ["matching"]
    follow_up: "How does channel-length modulation affect the mirror?"
`

// writeProject creates root/.coach/config.yml and an optional catalog.
func writeProject(t *testing.T, config string, withCatalog bool) (root, specPath string) {
	t.Helper()
	root = t.TempDir()
	specPath = filepath.Join(root, ".coach", "config.yml")
	if err := os.MkdirAll(filepath.Dir(specPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(specPath, []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if withCatalog {
		if err := os.WriteFile(filepath.Join(root, "questions.yml"), []byte(testCatalog), 0o644); err != nil {
			t.Fatalf("write catalog: %v", err)
		}
	}
	return root, specPath
}

// withInput swaps the practice input for the test.
func withInput(t *testing.T, input string) {
	t.Helper()
	original := practiceInput
	practiceInput = strings.NewReader(input)
	t.Cleanup(func() { practiceInput = original })
}

// withTerminal forces the TTY answer for the test.
func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}
