package storefront

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tqbf/storegen/pkg/pack"
)

func TestManifestPaths(t *testing.T) {
	m, err := Manifest()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"README.md",
		"backend/models/Product.js",
		"backend/models/User.js",
		"backend/package.json",
		"backend/routes/auth.js",
		"backend/routes/product.js",
		"backend/server.js",
		"docker-compose.yml",
		"frontend/package.json",
		"frontend/pages/index.js",
	}, m.Paths())
}

func TestManifestContents(t *testing.T) {
	m, err := Manifest()
	require.NoError(t, err)

	sizes := map[string]int64{
		"README.md":                 375,
		"docker-compose.yml":        461,
		"backend/package.json":      465,
		"backend/server.js":         666,
		"backend/models/User.js":    341,
		"backend/models/Product.js": 337,
		"backend/routes/auth.js":    983,
		"backend/routes/product.js": 438,
		"frontend/package.json":     271,
		"frontend/pages/index.js":   518,
	}
	for _, e := range m {
		assert.Equal(t, sizes[e.Path], e.Size(), e.Path)
	}

	byPath := make(map[string]string, len(m))
	for _, e := range m {
		byPath[e.Path] = e.Content
	}
	assert.True(t, strings.HasPrefix(
		byPath["README.md"], "# E-commerce App\n",
	))
	assert.True(t, strings.HasSuffix(byPath["backend/package.json"], "}"))
	assert.True(t, strings.HasSuffix(byPath["frontend/package.json"], "}"))
	assert.Contains(t, byPath["docker-compose.yml"], "mongo:6")
	assert.Contains(t, byPath["frontend/pages/index.js"], "<p>${p.price}</p>")
}

func TestManifestIsCopy(t *testing.T) {
	m, err := Manifest()
	require.NoError(t, err)
	m[0].Content = "clobbered"

	again, err := Manifest()
	require.NoError(t, err)
	assert.NotEqual(t, "clobbered", again[0].Content)
}

func TestManifestFS(t *testing.T) {
	fsys := fstest.MapFS{
		"root/z.txt":       {Data: []byte("z")},
		"root/a-b.txt":     {Data: []byte("ab")},
		"root/a/inner.txt": {Data: []byte("inner")},
		"other/skip.txt":   {Data: []byte("skip")},
	}

	m, err := ManifestFS(fsys, "root")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"a-b.txt", "a/inner.txt", "z.txt"},
		m.Paths(),
	)
	assert.Equal(t, "inner", m[1].Content)
}

func TestManifestFSMissingRoot(t *testing.T) {
	_, err := ManifestFS(fstest.MapFS{}, "missing")
	assert.Error(t, err)
}

func TestManifestBuildsArchive(t *testing.T) {
	m, err := Manifest()
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), DefaultArchiveName)
	n, err := pack.BuildZip(out, m, true)
	require.NoError(t, err)
	assert.Equal(t, len(m), n)

	got, err := pack.DigestZip(out)
	require.NoError(t, err)
	assert.True(t, pack.ComputeDiff(m.Digests(), got).Clean())
}
