package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/curselect/internal/styles"
)

const keybindingGuide = `# curselect keybindings

| Key(s) | Action |
|---|---|
| ` + "`j`" + `, down | move down |
| ` + "`k`" + `, up | move up |
| ` + "`h`" + `, left | move left |
| ` + "`l`" + `, right | move right |
| ` + "`w`" + `, page up | go up a page |
| ` + "`z`" + `, page down | go down a page |
| ` + "`g`" + ` | go to first item |
| ` + "`G`" + ` | go to last item |
| tab | go to next list |
| shift+tab | go to previous list |
| enter, space | select/activate current item |
| ctrl+d | confirm and return selections |
| ` + "`q`" + `, ` + "`Q`" + ` | cancel |

Disabled items are skipped by the cursor and cannot be activated.
`

type DocsCmd struct {
	flags *Flags
}

// NewDocsCmd creates a new docs command
func NewDocsCmd(flags *Flags) *DocsCmd {
	return &DocsCmd{flags: flags}
}

// Register adds the docs command to the application
func (cmd *DocsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "docs",
		Usage:  "Show the keybinding guide",
		Action: cmd.run,
	})

	return app
}

func (cmd *DocsCmd) run(ctx context.Context, c *cli.Command) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}
	rendered, err := r.Render(keybindingGuide)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.Root().Writer, rendered)
	return err
}
