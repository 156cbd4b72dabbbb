package cli

import (
	"flag"
	"fmt"
	"io"

	"coach/internal/catalog"
	"coach/internal/config"
	"coach/internal/spec"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		specPath := flags.String("spec", "", "Path to config file (default: search for .coach/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		resolvedSpec, err := resolveSpecPath(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		cfg, c, err := loadConfigAndCatalog(resolvedSpec)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintf(stdout, "Config OK (%d questions, %s)\n", c.Len(), catalogSource(cfg.Catalog.File))
		return ExitOK
	}
}

func catalogSource(file string) string {
	if file == "" {
		return "built-in catalog"
	}
	return file
}

// loadConfigAndCatalog loads a config file and the catalog it references.
func loadConfigAndCatalog(path string) (spec.Config, *catalog.Catalog, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return spec.Config{}, nil, err
	}
	c, err := config.LoadCatalog(cfg, config.RootFromConfigPath(path))
	if err != nil {
		return spec.Config{}, nil, err
	}
	return cfg, c, nil
}
