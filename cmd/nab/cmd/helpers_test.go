package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/awaller/nab/internal/observe"
)

func TestLoadConfigFallsBackToDefault(t *testing.T) {
	orig := configPath
	defer func() { configPath = orig }()
	configPath = filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Algorithm != "sha256" || cfg.Dir != "." {
		t.Errorf("unexpected default config: %+v", cfg)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	orig := configPath
	defer func() { configPath = orig }()

	configPath = filepath.Join(t.TempDir(), ".nab.yaml")
	if err := os.WriteFile(configPath, []byte("version: 1\nalgorithm: blake3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Algorithm != "blake3" {
		t.Errorf("algorithm = %q, want blake3", cfg.Algorithm)
	}
}

func TestNewObserver(t *testing.T) {
	origVerbose := verbose
	defer func() { verbose = origVerbose }()

	verbose = false
	if _, ok := newObserver().(observe.Printer); ok {
		t.Error("got a printing observer without --verbose")
	}

	verbose = true
	if _, ok := newObserver().(observe.Printer); !ok {
		t.Error("verbose observer is not a Printer")
	}
}
