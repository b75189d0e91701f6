package pack

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zip"
)

// Fixed entry timestamp so identical manifests give identical
// archives.
var entryTime = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

func WriteZip(
	w io.Writer,
	m Manifest,
	compress bool,
) (int, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	method := zip.Store
	if compress {
		method = zip.Deflate
	}

	zw := zip.NewWriter(w)
	count := 0
	for _, e := range m {
		if err := addEntry(zw, e, method); err != nil {
			zw.Close()
			return 0, err
		}
		count++
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("finish zip: %w", err)
	}
	return count, nil
}

func addEntry(
	zw *zip.Writer,
	e ManifestEntry,
	method uint16,
) error {
	hdr := &zip.FileHeader{
		Name:     e.Path,
		Method:   method,
		Modified: entryTime,
	}
	hdr.SetMode(0644)

	fw, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("write header %s: %w", e.Path, err)
	}
	if _, err := io.WriteString(fw, e.Content); err != nil {
		return fmt.Errorf("write body %s: %w", e.Path, err)
	}
	return nil
}

// BuildZip writes m to outputPath. The archive is staged in a
// temp file next to outputPath and renamed into place, so a
// failed build never leaves a partial file at outputPath.
func BuildZip(
	outputPath string,
	m Manifest,
	compress bool,
) (count int, err error) {
	tmp, err := os.CreateTemp(
		filepath.Dir(outputPath),
		"."+filepath.Base(outputPath)+".*",
	)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", outputPath, err)
	}
	slog.Debug("staging archive",
		"tmp", tmp.Name(),
		"output", outputPath,
	)
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	count, err = WriteZip(tmp, m, compress)
	if err != nil {
		return 0, err
	}
	if err = tmp.Sync(); err != nil {
		return 0, fmt.Errorf("sync %s: %w", outputPath, err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return 0, fmt.Errorf("chmod %s: %w", outputPath, err)
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", outputPath, err)
	}
	if err = os.Rename(tmp.Name(), outputPath); err != nil {
		return 0, fmt.Errorf("rename %s: %w", outputPath, err)
	}
	return count, nil
}
