package vcs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coach/internal/testutil"
)

// TestDiscoverRepoRoot verifies root discovery through the runner.
func TestDiscoverRepoRoot(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := filepath.Join(t.TempDir(), "repo")
	subdir := filepath.Join(root, "nested")

	client := NewClient(&fakeGitRunner{responses: map[string]string{
		"rev-parse --show-toplevel": root,
	}})
	actualRoot, err := client.DiscoverRepoRoot(ctx, subdir)
	if err != nil {
		t.Fatalf("discover repo root: %v", err)
	}
	if actualRoot != root {
		t.Fatalf("expected root %q, got %q", root, actualRoot)
	}

	failing := NewClient(&fakeGitRunner{responses: map[string]string{}})
	if _, err := failing.DiscoverRepoRoot(ctx, subdir); err == nil {
		t.Fatalf("expected error outside a repo")
	}
}

func TestEnsureIgnored(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("bin/"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	changed, err := EnsureIgnored(root, filepath.Join(root, ".coach", "coach.log"))
	if err != nil || !changed {
		t.Fatalf("expected entry to be added, changed=%v err=%v", changed, err)
	}
	changed, err = EnsureIgnored(root, ".coach/coach.log")
	if err != nil || changed {
		t.Fatalf("expected existing entry to be kept, changed=%v err=%v", changed, err)
	}
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if string(data) != "bin/\n.coach/coach.log\n" {
		t.Fatalf("unexpected .gitignore %q", string(data))
	}

	if _, err := EnsureIgnored(root, "../elsewhere.log"); err == nil {
		t.Fatalf("expected error for a path outside the root")
	}
}

// fakeGitRunner returns canned outputs for git commands in tests.
type fakeGitRunner struct {
	responses map[string]string
}

// Run satisfies gitRunner for test doubles.
func (f *fakeGitRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	if value, ok := f.responses[key]; ok {
		return value, nil
	}
	return "", fmt.Errorf("unexpected git args: %s", key)
}
