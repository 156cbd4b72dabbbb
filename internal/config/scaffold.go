package config

//go:generate templ generate -f scaffold.templ

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"coach/internal/catalog"
)

// ScaffoldCatalogName is the catalog file written next to the config.
const ScaffoldCatalogName = "questions.yml"

// DefaultLogFile is the log path offered by init, relative to the root.
const DefaultLogFile = ".coach/coach.log"

// Scaffold writes a starter config and an editable copy of the built-in
// catalog into the directory holding specPath.
func Scaffold(specPath, logFile string) error {
	if specPath == "" {
		return fmt.Errorf("spec path is required")
	}
	if err := ensureAbsent(specPath, "spec"); err != nil {
		return err
	}

	baseDir := filepath.Dir(specPath)
	catalogPath := filepath.Join(baseDir, ScaffoldCatalogName)
	if err := ensureAbsent(catalogPath, "catalog"); err != nil {
		return err
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	catalogRef, err := filepath.Rel(RootFromConfigPath(specPath), catalogPath)
	if err != nil {
		return fmt.Errorf("resolve catalog path: %w", err)
	}
	rendered, err := renderScaffoldConfig(filepath.ToSlash(catalogRef), strings.TrimSpace(logFile))
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if err := os.WriteFile(catalogPath, catalog.BuiltinSource(), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := os.WriteFile(specPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func ensureAbsent(path, label string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s path %q is a directory", label, path)
		}
		return fmt.Errorf("%s file already exists at %q", label, path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s file: %w", label, err)
	}
	return nil
}
