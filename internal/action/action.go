// Package action applies a configured disposition to a processed file:
// move it into a target tree, delete it, or leave it alone.
package action

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/awaller/nab/internal/observe"
)

// Action is the configured disposition for processed files. MoveTo takes
// precedence over Delete when both are set.
type Action struct {
	Delete bool   `yaml:"delete,omitempty"`
	MoveTo string `yaml:"move_to,omitempty"`
}

// Outcome is the kind of disposition that was applied to a file.
type Outcome int

const (
	Nothing Outcome = iota
	Moved
	Deleted
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Deleted:
		return "deleted"
	default:
		return "nothing"
	}
}

// Result reports what Execute did to a file. Path is the destination for
// Moved, the original path for Deleted, and empty for Nothing.
type Result struct {
	Outcome Outcome
	Path    string
}

// Plan reports what Execute would do, without touching the filesystem.
func (a Action) Plan(file, root string) (Result, error) {
	if a.MoveTo != "" {
		dest, err := a.dest(file, root)
		if err != nil {
			return Result{}, err
		}
		return Result{Outcome: Moved, Path: dest}, nil
	}
	if a.Delete {
		return Result{Outcome: Deleted, Path: file}, nil
	}
	return Result{Outcome: Nothing}, nil
}

// Execute applies the action to file. root, when non-empty, must be an
// ancestor directory of file; a move then preserves the file's position
// relative to root under MoveTo. With an empty root only the base name is
// kept. obs receives an event for every filesystem mutation; nil discards
// them.
//
// Failures surface immediately — no retry, and a partially completed move
// is not rolled back.
func (a Action) Execute(file, root string, obs observe.Observer) (Result, error) {
	if obs == nil {
		obs = observe.Nop
	}

	if a.MoveTo != "" {
		dest, err := a.move(file, root, obs)
		if err != nil {
			return Result{}, err
		}
		return Result{Outcome: Moved, Path: dest}, nil
	}

	if a.Delete {
		obs.Observe(observe.Event{Op: "delete", Path: file})
		if err := os.Remove(file); err != nil {
			return Result{}, fmt.Errorf("deleting %s: %w", file, err)
		}
		return Result{Outcome: Deleted, Path: file}, nil
	}

	return Result{Outcome: Nothing}, nil
}

func (a Action) move(file, root string, obs observe.Observer) (string, error) {
	dest, err := a.dest(file, root)
	if err != nil {
		return "", err
	}

	obs.Observe(observe.Event{Op: "move", Path: file, Dest: dest})

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
	}
	if err := os.Rename(file, dest); err != nil {
		return "", fmt.Errorf("moving %s to %s: %w", file, dest, err)
	}

	// Single-level cleanup: remove the source directory if the move left it
	// empty. Grandparents are never touched, and Delete has no counterpart
	// cleanup.
	parent := filepath.Dir(file)
	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", fmt.Errorf("reading %s after move: %w", parent, err)
	}
	if len(entries) == 0 {
		if err := os.Remove(parent); err != nil {
			return "", fmt.Errorf("removing empty %s: %w", parent, err)
		}
	}

	return dest, nil
}

// dest computes the move destination for file.
func (a Action) dest(file, root string) (string, error) {
	if root == "" {
		return filepath.Join(a.MoveTo, filepath.Base(file)), nil
	}
	rel, err := relUnder(root, file)
	if err != nil {
		return "", err
	}
	return filepath.Join(a.MoveTo, rel), nil
}

// relUnder returns file's path relative to root, failing if file does not
// sit under root. This is a recoverable error rather than an unchecked
// precondition: a malformed input path must not crash the host process.
func relUnder(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", fmt.Errorf("relativizing %s against %s: %w", file, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file %s is not under root %s", file, root)
	}
	return rel, nil
}
