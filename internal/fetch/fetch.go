// Package fetch downloads files over HTTP and lands them on disk with a
// verified content digest and a collision-free name.
package fetch

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/awaller/nab/internal/digest"
	"github.com/awaller/nab/internal/naming"
	"github.com/awaller/nab/internal/observe"
)

// HTTPClient abstracts HTTP operations for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Download describes a file that was fetched to disk.
type Download struct {
	Path   string // final on-disk location
	Name   string // file name within the destination directory
	Digest string // lowercase hex digest of the body
	Size   int64
}

// Fetcher downloads URLs into a destination directory.
type Fetcher struct {
	Client    HTTPClient // nil uses http.DefaultClient
	MaxSize   int64      // max body size in bytes (0 = no limit)
	UserAgent string
	Algo      string // digest algorithm, empty selects sha256
	Observer  observe.Observer
}

// Fetch GETs rawURL and writes the body to destDir. The file name comes
// from the Content-Disposition header when present, otherwise from the URL
// path base; names already taken in destDir get a numeric suffix spliced
// in. The body is digested while streaming and written through a temp file,
// so a failed download never leaves a partial file behind.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, destDir string) (*Download, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)
	}

	name, err := f.pickName(resp, rawURL, destDir)
	if err != nil {
		return nil, err
	}
	final := filepath.Join(destDir, name)

	obs := f.Observer
	if obs == nil {
		obs = observe.Nop
	}
	obs.Observe(observe.Event{Op: "fetch", Path: rawURL, Dest: final})

	h, err := digest.New(f.Algo)
	if err != nil {
		return nil, err
	}

	var body io.Reader = resp.Body
	if f.MaxSize > 0 {
		body = io.LimitReader(resp.Body, f.MaxSize+1)
	}

	// Temp file in the destination directory keeps the final rename on one
	// filesystem.
	tmp, err := os.CreateTemp(destDir, ".nab-*.part")
	if err != nil {
		return nil, fmt.Errorf("creating temp file in %s: %w", destDir, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	size, err := io.Copy(io.MultiWriter(tmp, h), body)
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", rawURL, err)
	}
	if f.MaxSize > 0 && size > f.MaxSize {
		return nil, fmt.Errorf("%s exceeds max size %d bytes", rawURL, f.MaxSize)
	}
	if err := tmp.Sync(); err != nil {
		return nil, fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, final); err != nil {
		return nil, fmt.Errorf("renaming temp file to %s: %w", final, err)
	}
	success = true

	return &Download{
		Path:   final,
		Name:   name,
		Digest: hex.EncodeToString(h.Sum(nil)),
		Size:   size,
	}, nil
}

// pickName chooses the on-disk name for a response: Content-Disposition
// first, then the URL path base, collision-resolved against destDir.
func (f *Fetcher) pickName(resp *http.Response, rawURL, destDir string) (string, error) {
	name, ok := naming.FromHeader(resp.Header.Get("Content-Disposition"))
	if !ok || name == "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("parsing %s: %w", rawURL, err)
		}
		name = path.Base(u.Path)
		if name == "" || name == "." || name == "/" {
			name = "download"
		}
	}

	// Header values are attacker-controlled; keep only the base name.
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		name = "download"
	}

	return naming.NextFree(destDir, name)
}
