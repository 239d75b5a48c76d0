// Command curselect-demo runs selection forms defined in YAML files.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/curselect/internal/commands"
	"github.com/colonyops/curselect/internal/styles"
	"github.com/colonyops/curselect/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	v, c := version, commit
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
		}
	}
	short := c
	if len(c) > 7 {
		short = c[:7]
	}
	return fmt.Sprintf("%s (%s)", v, short)
}

func main() {
	ctx := context.Background()

	var (
		flags     commands.Flags
		logCloser func()
	)

	app := &cli.Command{
		Name:    "curselect-demo",
		Usage:   "Run selection forms defined in YAML files",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CURSELECT_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("CURSELECT_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme",
				Sources:     cli.EnvVars("CURSELECT_THEME"),
				Value:       styles.DefaultTheme,
				Destination: &flags.Theme,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			palette, ok := styles.GetPalette(flags.Theme)
			if !ok {
				return ctx, fmt.Errorf("unknown theme %q (available: %v)", flags.Theme, styles.ThemeNames())
			}
			styles.SetTheme(palette)
			return ctx, nil
		},
	}

	app = commands.NewRunCmd(&flags).Register(app)
	app = commands.NewLsCmd(&flags).Register(app)
	app = commands.NewDocsCmd(&flags).Register(app)

	err := app.Run(ctx, os.Args)
	if logCloser != nil {
		logCloser()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
