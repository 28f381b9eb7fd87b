// Package digest computes streaming content digests for deduplication and
// download verification.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// chunkSize is the read granularity for streaming digests. It is a
// throughput knob, not a correctness constraint.
const chunkSize = 1024

// New returns a fresh hasher for the named algorithm.
// Supported: sha256 (also the default for an empty name), sha1, md5, blake3.
func New(algo string) (hash.Hash, error) {
	switch algo {
	case "", "sha256":
		return sha256.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "md5":
		return md5.New(), nil
	case "blake3":
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm '%s' — must be one of: sha256, sha1, md5, blake3", algo)
	}
}

// Sum streams r through h in fixed-size chunks and returns the final digest
// as a lowercase hex string. The loop runs until the reader reports io.EOF;
// a short read is not treated as end-of-stream, so sources that legitimately
// short-read (sockets, pipes) digest correctly. A read error aborts the
// computation — no partial digest is ever returned.
func Sum(r io.Reader, h hash.Hash) (string, error) {
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading stream: %w", err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumFile opens the named file and digests its content with h.
// The file is closed on every return path.
func SumFile(path string, h hash.Hash) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Sum(f, h)
}
