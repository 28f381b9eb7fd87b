// Package dedup tracks content digests to find files with identical bytes.
package dedup

import (
	"github.com/awaller/nab/internal/digest"
)

// Index remembers the digest of every file it has seen and the first path
// recorded for each digest. It is not goroutine-safe; scans are sequential.
type Index struct {
	algo string
	seen map[string]string // hex digest -> first path recorded
}

// NewIndex creates an empty index using the named digest algorithm
// (empty selects sha256).
func NewIndex(algo string) *Index {
	return &Index{algo: algo, seen: make(map[string]string)}
}

// Add digests the file at path and records it. If a file with identical
// content was recorded earlier, Add returns that file's path and true, and
// path itself is not recorded.
func (ix *Index) Add(path string) (original string, dup bool, err error) {
	h, err := digest.New(ix.algo)
	if err != nil {
		return "", false, err
	}
	sum, err := digest.SumFile(path, h)
	if err != nil {
		return "", false, err
	}

	if first, ok := ix.seen[sum]; ok {
		return first, true, nil
	}
	ix.seen[sum] = path
	return "", false, nil
}

// Len reports how many distinct contents have been recorded.
func (ix *Index) Len() int {
	return len(ix.seen)
}
