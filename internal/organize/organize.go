// Package organize applies a configured file action across existing files,
// either in a one-shot directory scan or continuously via a watcher.
package organize

import (
	"io/fs"
	"path/filepath"

	"github.com/awaller/nab/internal/action"
	"github.com/awaller/nab/internal/dedup"
	"github.com/awaller/nab/internal/observe"
)

// Entry records the disposition applied to one file. DuplicateOf is set
// when the file was removed as a content duplicate of an earlier file.
type Entry struct {
	File        string
	Result      action.Result
	DuplicateOf string
}

// FileError pairs a file with the error that stopped its disposition.
type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string { return e.File + ": " + e.Err.Error() }
func (e FileError) Unwrap() error { return e.Err }

// ScanResult holds the outcome of a directory scan.
type ScanResult struct {
	Applied []Entry
	Errors  []FileError
}

// Organizer applies Action to files handed to it. Root, when set, makes
// moves preserve each file's position relative to Root. With Dedup set, a
// scan deletes files whose content digest was already seen instead of
// applying the configured action. With DryRun set, nothing on disk changes
// and entries report what would have happened.
type Organizer struct {
	Action   action.Action
	Root     string
	Algo     string // digest algorithm for dedup, empty selects sha256
	Dedup    bool
	DryRun   bool
	Observer observe.Observer
}

// File applies the configured action to a single file.
func (o *Organizer) File(path string) (action.Result, error) {
	return o.apply(path, o.Action)
}

// Scan walks dir in lexical order and applies the action to every regular
// file. Per-file failures are collected rather than aborting the walk; a
// failure to read the tree itself aborts. With Dedup, the first file with a
// given content wins and later copies are deleted.
func (o *Organizer) Scan(dir string) (*ScanResult, error) {
	res := &ScanResult{}
	ix := dedup.NewIndex(o.Algo)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		act := o.Action
		duplicateOf := ""
		if o.Dedup {
			original, dup, err := ix.Add(path)
			if err != nil {
				res.Errors = append(res.Errors, FileError{File: path, Err: err})
				return nil
			}
			if dup {
				act = action.Action{Delete: true}
				duplicateOf = original
			}
		}

		result, err := o.apply(path, act)
		if err != nil {
			res.Errors = append(res.Errors, FileError{File: path, Err: err})
			return nil
		}
		res.Applied = append(res.Applied, Entry{File: path, Result: result, DuplicateOf: duplicateOf})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (o *Organizer) apply(path string, act action.Action) (action.Result, error) {
	if o.DryRun {
		return act.Plan(path, o.Root)
	}
	return act.Execute(path, o.Root, o.observer())
}

func (o *Organizer) observer() observe.Observer {
	if o.Observer == nil {
		return observe.Nop
	}
	return o.Observer
}
