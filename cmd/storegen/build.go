package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/tqbf/storegen/pkg/pack"
	"github.com/tqbf/storegen/pkg/storefront"
)

func buildFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			EnvVars: []string{"STOREGEN_OUTPUT"},
			Value:   storefront.DefaultArchiveName,
			Usage:   "archive path",
		},
		excludeFlag(),
		&cli.BoolFlag{
			Name:  "compress",
			Value: true,
			Usage: "deflate entries (store them when false)",
		},
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:   "build",
		Usage:  "write the project archive (default command)",
		Flags:  buildFlags(),
		Action: buildAction,
	}
}

func buildAction(c *cli.Context) error {
	if c.NArg() != 0 {
		return fmt.Errorf(
			"unexpected argument %q (see storegen --help)",
			c.Args().First(),
		)
	}

	m, err := loadManifest(c)
	if err != nil {
		return err
	}

	out := c.String("output")
	t := time.Now()
	n, err := pack.BuildZip(out, m, c.Bool("compress"))
	if err != nil {
		return fmt.Errorf("build archive: %w", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		return fmt.Errorf("stat archive: %w", err)
	}
	slog.Debug("archive written",
		"output", out,
		"entries", n,
		"elapsed", time.Since(t),
	)

	fmt.Printf(
		"%s generated successfully! (%d files, %s)\n",
		out, n, humanBytes(info.Size()),
	)
	return nil
}
