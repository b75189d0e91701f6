// Package storefront holds the boilerplate e-commerce project that
// storegen archives: an Express + MongoDB backend and a Next.js
// frontend. The files under skel/ are opaque payload; nothing here
// parses or renders them.
package storefront

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"github.com/tqbf/storegen/pkg/pack"
)

const DefaultArchiveName = "ecommerce-app.zip"

//go:embed skel
var skel embed.FS

const skelRoot = "skel"

var load = sync.OnceValues(func() (pack.Manifest, error) {
	return ManifestFS(skel, skelRoot)
})

// Manifest returns a copy of the embedded project, one entry per
// file, in lexical path order.
func Manifest() (pack.Manifest, error) {
	m, err := load()
	if err != nil {
		return nil, err
	}
	return slices.Clone(m), nil
}

// ManifestFS builds a manifest from every regular file under root
// in fsys, keyed by its slash path relative to root.
func ManifestFS(fsys fs.FS, root string) (pack.Manifest, error) {
	sub, err := fs.Sub(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("sub %s: %w", root, err)
	}

	var m pack.Manifest
	err = fs.WalkDir(
		sub, ".",
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			b, err := fs.ReadFile(sub, p)
			if err != nil {
				return fmt.Errorf("read %s: %w", p, err)
			}
			m = append(m, pack.ManifestEntry{
				Path:    p,
				Content: string(b),
			})
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(m, func(a, b pack.ManifestEntry) int {
		return strings.Compare(a.Path, b.Path)
	})
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
