package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"coach/internal/catalog"
	"coach/internal/spec"
)

// Loaded is a validated config plus where it came from.
type Loaded struct {
	Config spec.Config
	// Path is empty when defaults are in use.
	Path string
	Root string
}

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return spec.Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg, RootFromConfigPath(path)); err != nil {
		return spec.Config{}, err
	}
	return cfg, nil
}

// Default returns the normalized config used when no file exists.
func Default() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Resolve loads the config at path, or discovers one upward from the working
// directory when path is empty. A missing config yields defaults.
func Resolve(path string) (Loaded, error) {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return Loaded{}, fmt.Errorf("resolve spec path: %w", err)
		}
		cfg, err := Load(abs)
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Config: cfg, Path: abs, Root: RootFromConfigPath(abs)}, nil
	}
	found, err := FindConfigPath("")
	if errors.Is(err, ErrConfigNotFound) {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return Loaded{}, fmt.Errorf("get working directory: %w", wdErr)
		}
		return Loaded{Config: Default(), Root: wd}, nil
	}
	if err != nil {
		return Loaded{}, err
	}
	cfg, err := Load(found)
	if err != nil {
		return Loaded{}, err
	}
	return Loaded{Config: cfg, Path: found, Root: RootFromConfigPath(found)}, nil
}

// Catalog loads the configured catalog, or the built-in one.
func (l Loaded) Catalog() (*catalog.Catalog, error) {
	return LoadCatalog(l.Config, l.Root)
}

// LoadCatalog loads the catalog referenced by cfg relative to root.
func LoadCatalog(cfg spec.Config, root string) (*catalog.Catalog, error) {
	if cfg.Catalog.File == "" {
		return catalog.Builtin(), nil
	}
	return catalog.Load(resolvePath(root, cfg.Catalog.File))
}

// LoadDotEnv loads a .env file from dir into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat .env: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}
