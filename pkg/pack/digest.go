package pack

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/klauspost/compress/zip"
)

type hashResult struct {
	digest Digest
	err    error
}

// DigestZip hashes every regular entry of the archive at path.
func DigestZip(path string) (Digests, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer zr.Close()

	var jobs []*zip.File
	seen := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if seen[f.Name] {
			return nil, fmt.Errorf(
				"duplicate entry in zip: %s", f.Name,
			)
		}
		seen[f.Name] = true
		jobs = append(jobs, f)
	}

	workers := runtime.NumCPU()
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers == 0 {
		return Digests{}, nil
	}

	jobCh := make(chan *zip.File, len(jobs))
	resultCh := make(chan hashResult, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hashWorker(jobCh, resultCh)
		}()
	}

	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	wg.Wait()
	close(resultCh)

	digests := make(Digests, len(jobs))
	for r := range resultCh {
		if r.err != nil {
			return nil, r.err
		}
		digests[r.digest.Path] = r.digest
	}
	return digests, nil
}

func hashWorker(
	jobs <-chan *zip.File,
	results chan<- hashResult,
) {
	buf := make([]byte, 32<<10)
	for f := range jobs {
		d, err := hashEntry(f, buf)
		results <- hashResult{d, err}
	}
}

func hashEntry(f *zip.File, buf []byte) (Digest, error) {
	rc, err := f.Open()
	if err != nil {
		return Digest{}, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	h := sha256.New()
	n, err := io.CopyBuffer(h, rc, buf)
	if err != nil {
		return Digest{}, fmt.Errorf("read %s: %w", f.Name, err)
	}

	return Digest{
		Path: f.Name,
		Hash: hex.EncodeToString(h.Sum(nil)),
		Size: n,
	}, nil
}
