package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/awaller/nab/internal/config"
	"github.com/awaller/nab/internal/observe"
)

// loadConfig reads the config file, falling back to defaults when missing.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// newObserver returns the event sink for core operations: stderr lines in
// verbose mode, discarded otherwise.
func newObserver() observe.Observer {
	if verbose {
		return observe.Printer{W: os.Stderr}
	}
	return observe.Nop
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
