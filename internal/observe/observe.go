// Package observe carries side-effect events out of the core packages so
// callers can log them without the core touching a global logger.
package observe

import (
	"fmt"
	"io"
)

// Event describes a single operation on a file, emitted just before the
// operation runs.
type Event struct {
	Op   string // "move", "delete", "fetch"
	Path string
	Dest string // set for "move" and "fetch"
}

// Observer receives events from core operations.
type Observer interface {
	Observe(Event)
}

// Func adapts a plain function to the Observer interface.
type Func func(Event)

func (f Func) Observe(e Event) { f(e) }

// Nop discards all events.
var Nop Observer = Func(func(Event) {})

// Printer writes one line per event to W.
type Printer struct {
	W io.Writer
}

func (p Printer) Observe(e Event) {
	switch e.Op {
	case "move":
		fmt.Fprintf(p.W, "moving %s -> %s\n", e.Path, e.Dest)
	case "delete":
		fmt.Fprintf(p.W, "deleting %s\n", e.Path)
	default:
		if e.Dest != "" {
			fmt.Fprintf(p.W, "%s %s -> %s\n", e.Op, e.Path, e.Dest)
		} else {
			fmt.Fprintf(p.W, "%s %s\n", e.Op, e.Path)
		}
	}
}
