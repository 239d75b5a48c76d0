// Command docgen generates CLI reference documentation from the
// curselect-demo command definitions. Output is written to
// docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/curselect/internal/commands"
	"github.com/colonyops/curselect/internal/styles"
)

func main() {
	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "curselect-demo",
		Usage:     "Run selection forms defined in YAML files",
		UsageText: "curselect-demo [global options] command [command options]",
		Description: `Curselect-demo presents selection-list forms defined in YAML files and
prints the confirmed selections.

Run 'curselect-demo docs' for the in-form keybinding guide.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("CURSELECT_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path to log file (defaults to stderr)",
				Sources: cli.EnvVars("CURSELECT_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "theme",
				Usage:   "color theme",
				Sources: cli.EnvVars("CURSELECT_THEME"),
				Value:   styles.DefaultTheme,
			},
		},
	}

	root = commands.NewRunCmd(flags).Register(root)
	root = commands.NewLsCmd(flags).Register(root)
	root = commands.NewDocsCmd(flags).Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
