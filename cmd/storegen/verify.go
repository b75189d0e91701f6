package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/tqbf/storegen/pkg/pack"
	"github.com/tqbf/storegen/pkg/storefront"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "check an archive against the built-in project",
		ArgsUsage: "[archive]",
		Flags:     []cli.Flag{excludeFlag()},
		Action:    verifyAction,
	}
}

func verifyAction(c *cli.Context) error {
	if c.NArg() > 1 {
		return fmt.Errorf("usage: storegen verify [archive]")
	}
	archive := storefront.DefaultArchiveName
	if c.NArg() == 1 {
		archive = c.Args().Get(0)
	}

	m, err := loadManifest(c)
	if err != nil {
		return err
	}

	got, err := pack.DigestZip(archive)
	if err != nil {
		return fmt.Errorf("read archive: %w", err)
	}
	slog.Debug("archive digests",
		"archive", archive,
		"count", len(got),
	)

	diff := pack.ComputeDiff(m.Digests(), got)
	if diff.Clean() {
		fmt.Printf("%s: ok (%d files)\n", archive, len(got))
		return nil
	}
	fmt.Print(formatDiff(diff))
	return fmt.Errorf("%s does not match the project", archive)
}

func formatDiff(d pack.DiffResult) string {
	var b strings.Builder
	for _, p := range d.Missing {
		fmt.Fprintf(&b, "  - %s\n", p)
	}
	for _, p := range d.Changed {
		fmt.Fprintf(&b, "  ~ %s\n", p)
	}
	for _, p := range d.Extra {
		fmt.Fprintf(&b, "  + %s\n", p)
	}
	return b.String()
}
