package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tqbf/storegen/pkg/pack"
)

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "unpack an archive into a directory",
		ArgsUsage: "<archive> <dir>",
		Action:    extractAction,
	}
}

func extractAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf(
			"usage: storegen extract <archive> <dir>",
		)
	}
	archive := c.Args().Get(0)
	dir := c.Args().Get(1)

	n, err := pack.UnpackZip(archive, dir)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	fmt.Printf("extracted %d files to %s\n", n, dir)
	return nil
}
