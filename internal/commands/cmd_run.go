package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/curselect/internal/formfile"
	"github.com/colonyops/curselect/pkg/iojson"
)

type RunCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewRunCmd creates a new run command
func NewRunCmd(flags *Flags) *RunCmd {
	return &RunCmd{flags: flags}
}

// Register adds the run command to the application
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Present the form defined in a YAML file and print the selections",
		UsageText: "curselect-demo run [--json] <form.yaml>",
		Description: `Loads a form definition, presents it full screen, and prints the
confirmed selections as YAML keyed by field name. Nothing is printed when the
form is cancelled.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output selections as a JSON line instead of YAML",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RunCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one form definition file")
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	path := c.Args().First()
	def, err := formfile.Load(path)
	if err != nil {
		return err
	}

	form, err := def.Build()
	if err != nil {
		return err
	}

	log.Debug().Str("file", path).Int("fields", len(def.Fields)).Msg("running form")
	results, err := form.Run(ctx)
	if err != nil {
		return err
	}
	if results == nil {
		log.Info().Msg("form cancelled")
		return nil
	}

	if cmd.jsonOutput {
		return iojson.WriteLine(c.Root().Writer, results)
	}

	out, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	_, err = c.Root().Writer.Write(out)
	return err
}
