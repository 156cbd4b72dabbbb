package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"coach/internal/catalog"
	"coach/internal/ui"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		specPath := flags.String("spec", "", "Path to config file (default: search for .coach/config.yml)")
		category := flags.String("category", catalog.All, "Only list this category")
		difficulty := flags.String("difficulty", catalog.All, "Only list this difficulty")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		env, err := loadEnvironment(*specPath, environmentOptions{})
		if err != nil {
			fmt.Fprintf(stderr, "%s\n%v\n", failureTitle(cmd.Name), err)
			return ExitError
		}
		defer env.Close()

		filter := catalog.Filter{Category: *category, Difficulty: *difficulty}
		if err := checkFilter(env.catalog, filter); err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		questions := env.catalog.Filter(filter)
		if len(questions) == 0 {
			fmt.Fprintln(stdout, "No questions match the filters.")
			return ExitOK
		}
		for _, q := range questions {
			fmt.Fprintf(stdout, "%s\n    %s\n", ui.ListEntry(q), ui.Caption(q))
		}
		fmt.Fprintf(stdout, "\n%d of %d questions\n", len(questions), env.catalog.Len())
		return ExitOK
	}
}

// checkFilter rejects filter values the catalog does not contain.
func checkFilter(c *catalog.Catalog, filter catalog.Filter) error {
	category := strings.ToLower(strings.TrimSpace(filter.Category))
	if category != "" && category != catalog.All {
		known := false
		for _, candidate := range c.Categories() {
			if string(candidate) == category {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown category %q", filter.Category)
		}
	}
	difficulty := strings.ToLower(strings.TrimSpace(filter.Difficulty))
	if difficulty != "" && difficulty != catalog.All && !catalog.Difficulty(difficulty).Valid() {
		return fmt.Errorf("unknown difficulty %q (expected easy|medium|hard|all)", filter.Difficulty)
	}
	return nil
}
