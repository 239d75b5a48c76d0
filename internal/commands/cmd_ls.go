package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/curselect/internal/formfile"
	"github.com/colonyops/curselect/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	pattern    string
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List form definition files matching a glob pattern",
		UsageText: "curselect-demo ls [--pattern GLOB] [--json]",
		Description: `Displays a table of form definitions with their path, title, and field
count. Files that fail to parse or validate are skipped with a warning.

Use --json for machine-readable output, one JSON line per definition.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "pattern",
				Usage:       "doublestar glob pattern for form definitions",
				Value:       "**/*.yaml",
				Destination: &cmd.pattern,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

type definitionInfo struct {
	Path   string `json:"path"`
	Title  string `json:"title"`
	Fields int    `json:"fields"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	paths, err := formfile.Discover(cmd.pattern)
	if err != nil {
		return err
	}

	var infos []definitionInfo
	for _, p := range paths {
		def, err := formfile.Load(p)
		if err != nil {
			log.Warn().Err(err).Str("file", p).Msg("skipping invalid form definition")
			continue
		}
		title := def.Title
		if title == "" {
			title = "(untitled)"
		}
		infos = append(infos, definitionInfo{Path: p, Title: title, Fields: len(def.Fields)})
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, info := range infos {
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode definition: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%d field(s)\n", info.Path, info.Title, info.Fields)
	}
	return w.Flush()
}
