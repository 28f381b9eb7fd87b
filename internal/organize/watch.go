package organize

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/awaller/nab/internal/action"
)

// DefaultSettle is the default quiet period before a newly seen file is
// dispatched.
const DefaultSettle = 500 * time.Millisecond

// Watch applies the action to files as they appear under dir, blocking
// until ctx is done or the watcher fails. Newly created subdirectories are
// added to the watch; a file is dispatched once no event has been seen for
// it for the settle duration, so writers get a chance to finish. report
// receives the outcome of every dispatch and may be nil.
func (o *Organizer) Watch(ctx context.Context, dir string, settle time.Duration, report func(path string, res action.Result, err error)) error {
	if settle <= 0 {
		settle = DefaultSettle
	}
	if report == nil {
		report = func(string, action.Result, error) {}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Watch dir and every directory already under it.
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				delete(pending, ev.Name)
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			info, err := os.Stat(ev.Name)
			if err != nil {
				continue // vanished between event and stat
			}
			if info.IsDir() {
				_ = w.Add(ev.Name)
				continue
			}
			if info.Mode().IsRegular() {
				pending[ev.Name] = time.Now()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", dir, err)

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < settle {
					continue
				}
				delete(pending, path)
				res, err := o.File(path)
				report(path, res, err)
			}
		}
	}
}
