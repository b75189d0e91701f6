package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/tqbf/storegen/pkg/pack"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "print the files the archive will contain",
		Flags: []cli.Flag{
			excludeFlag(),
			&cli.StringFlag{
				Name:  "format",
				Value: "text",
				Usage: "text, json or yaml",
			},
		},
		Action: listAction,
	}
}

type listEntry struct {
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"size" yaml:"size"`
	Hash string `json:"sha256" yaml:"sha256"`
}

func listAction(c *cli.Context) error {
	m, err := loadManifest(c)
	if err != nil {
		return err
	}

	entries := make([]listEntry, len(m))
	for i, e := range m {
		d := e.Digest()
		entries[i] = listEntry{
			Path: d.Path,
			Size: d.Size,
			Hash: d.Hash,
		}
	}

	switch c.String("format") {
	case "text":
		fmt.Print(formatList(m))
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf(
			"unknown format %q (want text, json or yaml)",
			c.String("format"),
		)
	}
}

func formatList(m pack.Manifest) string {
	var b strings.Builder
	for _, e := range m {
		fmt.Fprintf(&b,
			"  %s (%s)\n",
			e.Path, humanBytes(e.Size()),
		)
	}
	fmt.Fprintf(&b,
		"%d files, %s\n",
		len(m), humanBytes(m.TotalSize()),
	)
	return b.String()
}
