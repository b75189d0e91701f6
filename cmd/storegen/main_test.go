package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tqbf/storegen/pkg/pack"
	"github.com/tqbf/storegen/pkg/storefront"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	return newApp().Run(append([]string{"storegen"}, args...))
}

func archivePaths(t *testing.T, path string) []string {
	t.Helper()
	d, err := pack.DigestZip(path)
	require.NoError(t, err)
	var out []string
	for p := range d {
		out = append(out, p)
	}
	return out
}

func TestBuildDefault(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, run(t))

	m, err := storefront.Manifest()
	require.NoError(t, err)
	assert.ElementsMatch(t,
		m.Paths(),
		archivePaths(t, filepath.Join(dir, storefront.DefaultArchiveName)),
	)
}

func TestBuildCommandOutputFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "store.zip")

	require.NoError(t, run(t,
		"build", "--output", out, "--exclude", "frontend",
	))

	got := archivePaths(t, out)
	assert.Len(t, got, 8)
	assert.NotContains(t, got, "frontend/pages/index.js")
	assert.Contains(t, got, "backend/server.js")
}

func TestBuildEnvOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "env.zip")
	t.Setenv("STOREGEN_OUTPUT", out)

	require.NoError(t, run(t, "--compress=false"))
	assert.Len(t, archivePaths(t, out), 10)
}

func TestBuildMissingDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "store.zip")

	err := run(t, "-o", out)
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildRejectsArgs(t *testing.T) {
	chdir(t, t.TempDir())
	assert.Error(t, run(t, "bogus"))
}

func TestVerify(t *testing.T) {
	out := filepath.Join(t.TempDir(), "store.zip")
	require.NoError(t, run(t, "-o", out))

	assert.NoError(t, run(t, "verify", out))
}

func TestVerifyDefaultArchive(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, run(t))

	assert.NoError(t, run(t, "verify"))
}

func TestVerifyMismatch(t *testing.T) {
	out := filepath.Join(t.TempDir(), "store.zip")
	require.NoError(t, run(t, "-o", out, "--exclude", "*.md"))

	assert.Error(t, run(t, "verify", out))
	assert.NoError(t, run(t, "verify", "--exclude", "*.md", out))
}

func TestVerifyMissingArchive(t *testing.T) {
	err := run(t, "verify", filepath.Join(t.TempDir(), "none.zip"))
	assert.Error(t, err)
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "store.zip")
	require.NoError(t, run(t, "-o", out))

	dest := filepath.Join(dir, "app")
	require.NoError(t, run(t, "extract", out, dest))

	m, err := storefront.Manifest()
	require.NoError(t, err)
	for _, e := range m {
		b, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(e.Path)))
		require.NoError(t, err, e.Path)
		assert.Equal(t, e.Content, string(b), e.Path)
	}

	assert.Error(t, run(t, "extract", out))
}

func TestList(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		assert.NoError(t, run(t, "list", "--format", format), format)
	}
	assert.Error(t, run(t, "list", "--format", "xml"))
}

func TestFormatList(t *testing.T) {
	got := formatList(pack.Manifest{
		{Path: "a.txt", Content: "hello"},
		{Path: "dir/b.txt", Content: "world"},
	})
	assert.Equal(t,
		"  a.txt (5 B)\n  dir/b.txt (5 B)\n2 files, 10 B\n",
		got,
	)
}

func TestFormatDiff(t *testing.T) {
	got := formatDiff(pack.DiffResult{
		Missing: []string{"README.md"},
		Changed: []string{"backend/server.js"},
		Extra:   []string{"notes.txt"},
	})
	assert.Equal(t,
		"  - README.md\n  ~ backend/server.js\n  + notes.txt\n",
		got,
	)
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", humanBytes(512))
	assert.Equal(t, "1.5 KB", humanBytes(1536))
	assert.Equal(t, "2.0 MB", humanBytes(2<<20))
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
