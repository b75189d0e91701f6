package pack

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/tqbf/storegen/pkg/paths"
)

type ManifestEntry struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"-" yaml:"-"`
}

func (e ManifestEntry) Size() int64 {
	return int64(len(e.Content))
}

func (e ManifestEntry) Digest() Digest {
	sum := sha256.Sum256([]byte(e.Content))
	return Digest{
		Path: e.Path,
		Hash: hex.EncodeToString(sum[:]),
		Size: e.Size(),
	}
}

// Manifest is written in slice order; paths are unique.
type Manifest []ManifestEntry

func (m Manifest) Validate() error {
	seen := make(map[string]bool, len(m))
	for _, e := range m {
		if err := paths.ValidateRelPath(e.Path); err != nil {
			return fmt.Errorf("invalid path %q: %w", e.Path, err)
		}
		if paths.CleanRelPath(e.Path) != e.Path {
			return fmt.Errorf("non-canonical path %q", e.Path)
		}
		if seen[e.Path] {
			return fmt.Errorf("duplicate path %q", e.Path)
		}
		seen[e.Path] = true
	}
	return nil
}

func (m Manifest) Filter(excludes *paths.ExcludeMatcher) Manifest {
	out := make(Manifest, 0, len(m))
	for _, e := range m {
		if excludes.Match(e.Path) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (m Manifest) Paths() []string {
	out := make([]string, len(m))
	for i, e := range m {
		out[i] = e.Path
	}
	return out
}

func (m Manifest) TotalSize() int64 {
	var total int64
	for _, e := range m {
		total += e.Size()
	}
	return total
}

func (m Manifest) Digests() Digests {
	d := make(Digests, len(m))
	for _, e := range m {
		d[e.Path] = e.Digest()
	}
	return d
}

type Digest struct {
	Path string `json:"path"`
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

type Digests map[string]Digest
