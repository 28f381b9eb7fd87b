package action

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awaller/nab/internal/observe"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestExecuteRootedMove(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "in")
	target := filepath.Join(base, "out")
	file := filepath.Join(root, "a", "b.txt")
	writeFile(t, file)

	res, err := Action{MoveTo: target}.Execute(file, root, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := filepath.Join(target, "a", "b.txt")
	if res.Outcome != Moved || res.Path != want {
		t.Errorf("result = %v %q, want moved %q", res.Outcome, res.Path, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("moved file missing: %v", err)
	}
	// The now-empty source directory is removed, one level only.
	if _, err := os.Stat(filepath.Join(root, "a")); !os.IsNotExist(err) {
		t.Errorf("empty source dir survived: %v", err)
	}
	if _, err := os.Stat(root); err != nil {
		t.Errorf("grandparent was cleaned up too: %v", err)
	}
}

func TestExecuteMoveWithoutRoot(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "out")
	file := filepath.Join(base, "x", "c.txt")
	writeFile(t, file)

	res, err := Action{MoveTo: target}.Execute(file, "", nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// Relative structure is discarded without a root.
	want := filepath.Join(target, "c.txt")
	if res.Path != want {
		t.Errorf("dest = %q, want %q", res.Path, want)
	}
}

func TestExecuteMoveKeepsNonEmptyParent(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "in")
	file := filepath.Join(root, "a", "b.txt")
	sibling := filepath.Join(root, "a", "keep.txt")
	writeFile(t, file)
	writeFile(t, sibling)

	if _, err := (Action{MoveTo: filepath.Join(base, "out")}).Execute(file, root, nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if _, err := os.Stat(sibling); err != nil {
		t.Errorf("sibling vanished: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "a")); err != nil {
		t.Errorf("non-empty parent removed: %v", err)
	}
}

func TestExecuteDelete(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sub", "d.txt")
	writeFile(t, file)

	res, err := Action{Delete: true}.Execute(file, "", nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Outcome != Deleted || res.Path != file {
		t.Errorf("result = %v %q, want deleted %q", res.Outcome, res.Path, file)
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Errorf("file still exists: %v", err)
	}
	// Delete never cleans up the parent directory, unlike move.
	if _, err := os.Stat(filepath.Dir(file)); err != nil {
		t.Errorf("parent dir removed after delete: %v", err)
	}
}

func TestExecuteNothing(t *testing.T) {
	file := filepath.Join(t.TempDir(), "e.txt")
	writeFile(t, file)

	res, err := Action{}.Execute(file, "", nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Outcome != Nothing {
		t.Errorf("outcome = %v, want nothing", res.Outcome)
	}
	if _, err := os.Stat(file); err != nil {
		t.Errorf("file touched by no-op: %v", err)
	}
}

func TestExecuteMovePrecedesDelete(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "f.txt")
	writeFile(t, file)

	res, err := Action{Delete: true, MoveTo: filepath.Join(base, "out")}.Execute(file, "", nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Outcome != Moved {
		t.Errorf("outcome = %v, want moved", res.Outcome)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Errorf("moved file missing: %v", err)
	}
}

func TestExecuteFileNotUnderRoot(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "elsewhere", "g.txt")
	writeFile(t, file)

	_, err := Action{MoveTo: filepath.Join(base, "out")}.Execute(file, filepath.Join(base, "in"), nil)
	if err == nil {
		t.Fatal("Execute succeeded for a file outside the root")
	}
	if !strings.Contains(err.Error(), "not under root") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := os.Stat(file); err != nil {
		t.Errorf("file touched despite the error: %v", err)
	}
}

func TestExecuteMissingFile(t *testing.T) {
	base := t.TempDir()
	if _, err := (Action{Delete: true}).Execute(filepath.Join(base, "absent"), "", nil); err == nil {
		t.Error("delete of a missing file succeeded")
	}
	if _, err := (Action{MoveTo: filepath.Join(base, "out")}).Execute(filepath.Join(base, "absent"), "", nil); err == nil {
		t.Error("move of a missing file succeeded")
	}
}

func TestExecuteEmitsEvents(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "in", "h.txt")
	writeFile(t, file)

	var events []observe.Event
	obs := observe.Func(func(e observe.Event) { events = append(events, e) })

	res, err := Action{MoveTo: filepath.Join(base, "out")}.Execute(file, "", obs)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Op != "move" || e.Path != file || e.Dest != res.Path {
		t.Errorf("event = %+v, want move %s -> %s", e, file, res.Path)
	}
}

func TestPlanMatchesExecute(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "in")
	file := filepath.Join(root, "a", "b.txt")
	writeFile(t, file)

	act := Action{MoveTo: filepath.Join(base, "out")}

	planned, err := act.Plan(file, root)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if _, err := os.Stat(file); err != nil {
		t.Fatalf("Plan touched the filesystem: %v", err)
	}

	executed, err := act.Execute(file, root, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if planned != executed {
		t.Errorf("plan %+v != execute %+v", planned, executed)
	}
}

func TestOutcomeString(t *testing.T) {
	if Nothing.String() != "nothing" || Moved.String() != "moved" || Deleted.String() != "deleted" {
		t.Errorf("unexpected outcome strings: %s %s %s", Nothing, Moved, Deleted)
	}
}
