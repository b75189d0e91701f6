package pack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/tqbf/storegen/pkg/paths"
)

func UnpackZip(path, dir string) (int, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer zr.Close()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("create dir: %w", err)
	}

	count := 0
	for _, f := range zr.File {
		if err := paths.ValidateRelPath(f.Name); err != nil {
			return count, fmt.Errorf(
				"invalid entry %q: %w", f.Name, err,
			)
		}
		name := paths.CleanRelPath(f.Name)

		target := filepath.Join(dir, filepath.FromSlash(name))
		if !paths.IsWithinDir(dir, target) {
			return count, fmt.Errorf(
				"path escapes dir: %s", name,
			)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return count, fmt.Errorf(
					"mkdir %s: %w", name, err,
				)
			}
			continue
		}
		if !f.Mode().IsRegular() {
			continue
		}
		if err := extractFile(f, target); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func extractFile(f *zip.File, target string) error {
	parent := filepath.Dir(target)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("mkdir parent: %w", err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(
		target,
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
		mode,
	)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.Name, err)
	}

	_, copyErr := io.Copy(out, rc)
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("write %s: %w", f.Name, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", f.Name, closeErr)
	}
	return nil
}
