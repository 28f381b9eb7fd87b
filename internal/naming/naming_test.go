package naming

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSpliceName(t *testing.T) {
	tests := []struct {
		name   string
		suffix int
		want   string
	}{
		{"abc.pdf", 1, "abc_1.pdf"},
		{"abc", 1, "abc_1"},
		{"stuff.tar.gz", 2, "stuff.tar_2.gz"},
		{".bashrc", 1, ".bashrc_1"},
		{"report v2.pdf", 3, "report v2_3.pdf"},
		{"x.", 1, "x_1."},
	}

	for _, tt := range tests {
		if got := SpliceName(tt.name, tt.suffix); got != tt.want {
			t.Errorf("SpliceName(%q, %d) = %q, want %q", tt.name, tt.suffix, got, tt.want)
		}
	}
}

func TestFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{`inline; filename="test.jpg"`, "test.jpg", true},
		{"inline", "", false},
		{"", "", false},
		{`attachment; filename=report.pdf`, "report.pdf", true},
		{`attachment; filename="a b.txt"`, "a b.txt", true},
		{`attachment; filename=""`, "", true},
	}

	for _, tt := range tests {
		got, ok := FromHeader(tt.header)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FromHeader(%q) = %q, %v, want %q, %v", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNextFreeEmptyDir(t *testing.T) {
	got, err := NextFree(t.TempDir(), "a.pdf")
	if err != nil {
		t.Fatalf("NextFree: %v", err)
	}
	if got != "a.pdf" {
		t.Errorf("NextFree = %q, want a.pdf", got)
	}
}

func TestNextFreeCollisions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "a_1.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := NextFree(dir, "a.pdf")
	if err != nil {
		t.Fatalf("NextFree: %v", err)
	}
	if got != "a_2.pdf" {
		t.Errorf("NextFree = %q, want a_2.pdf", got)
	}
}
