package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tqbf/storegen/pkg/pack"
	"github.com/tqbf/storegen/pkg/paths"
	"github.com/tqbf/storegen/pkg/storefront"
)

const appVersion = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "storegen",
		Usage: "generate the e-commerce starter project as a zip archive",
		Before: func(c *cli.Context) error {
			configureLogging(c.Bool("verbose"))
			return nil
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose output",
			},
		}, buildFlags()...),
		Action: buildAction,
		Commands: []*cli.Command{
			buildCmd(),
			listCmd(),
			verifyCmd(),
			extractCmd(),
			{
				Name:  "version",
				Usage: "print version",
				Action: func(c *cli.Context) error {
					fmt.Println(appVersion)
					return nil
				},
			},
		},
	}
}

func excludeFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  "exclude",
		Usage: "leave out matching paths (repeatable)",
	}
}

func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}),
	))
}

func loadManifest(c *cli.Context) (pack.Manifest, error) {
	m, err := storefront.Manifest()
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	excludes := paths.NewExcludeMatcher(c.StringSlice("exclude"))
	if !excludes.Empty() {
		filtered := m.Filter(excludes)
		slog.Debug("excluded entries",
			"patterns", c.StringSlice("exclude"),
			"dropped", len(m)-len(filtered),
		)
		m = filtered
	}
	slog.Debug("manifest",
		"count", len(m),
		"bytes", m.TotalSize(),
	)
	return m, nil
}

func humanBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf(
			"%.1f MB", float64(n)/(1<<20),
		)
	case n >= 1<<10:
		return fmt.Sprintf(
			"%.1f KB", float64(n)/(1<<10),
		)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
