// Package naming derives download filenames: suffix splicing for collision
// disambiguation and filename extraction from Content-Disposition headers.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SpliceName inserts "_<suffix>" into fname immediately before the final
// extension. Names without an extension get the suffix appended. Multi-dot
// names split on the last dot only: "stuff.tar.gz" becomes "stuff.tar_2.gz".
func SpliceName(fname string, suffix int) string {
	ext := filepath.Ext(fname)
	if ext == "" || ext == fname {
		// No extension, or a dotfile like ".bashrc".
		return fmt.Sprintf("%s_%d", fname, suffix)
	}
	base := strings.TrimSuffix(fname, ext)
	return fmt.Sprintf("%s_%d%s", base, suffix, ext)
}

// FromHeader extracts a filename from a Content-Disposition header value.
// It takes everything after the first "filename=" occurrence and strips
// surrounding double quotes. RFC 6266 extended parameters ("filename*=")
// and quoted-pair unescaping are out of scope. The boolean reports whether
// a filename was present.
func FromHeader(headerValue string) (string, bool) {
	i := strings.Index(headerValue, "filename=")
	if i < 0 {
		return "", false
	}
	rest := headerValue[i+len("filename="):]
	return strings.Trim(rest, `"`), true
}

// NextFree returns a name that does not yet exist in dir, starting with
// name itself and then splicing increasing suffixes: "a.pdf", "a_1.pdf",
// "a_2.pdf", and so on. Races with concurrent creators in dir are not
// handled.
func NextFree(dir, name string) (string, error) {
	candidate := name
	for i := 1; ; i++ {
		_, err := os.Stat(filepath.Join(dir, candidate))
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("probing %s: %w", filepath.Join(dir, candidate), err)
		}
		candidate = SpliceName(name, i)
	}
}
