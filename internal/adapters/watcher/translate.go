package watcher

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/stay/internal/core/ports"
)

// translator turns raw fsnotify events into document events. A rename is
// reported by fsnotify as a Rename of the old name followed by a Create of the
// new one; translator pairs them. An unpaired Rename means the document left
// the watched tree and is reported as a deletion by expire.
//
// A watched folder also reports its own move once more after the pair, so a
// Rename repeating the pending or just-paired old path is dropped.
type translator struct {
	root    string
	pending string
	moved   string
}

func newTranslator(root string) *translator {
	return &translator{root: root}
}

// handle returns the document events for ev and whether a rename is now
// waiting for its Create.
func (t *translator) handle(ev fsnotify.Event) ([]ports.DocumentEvent, bool) {
	rel, ok := t.relative(ev.Name)
	if !ok {
		return nil, t.pending != ""
	}
	moved := t.moved
	t.moved = ""

	var out []ports.DocumentEvent
	switch {
	case ev.Has(fsnotify.Create):
		if t.pending != "" {
			if t.pending != rel {
				out = append(out, ports.DocumentEvent{Op: ports.DocumentRenamed, OldPath: t.pending, Path: rel})
				t.moved = t.pending
			}
			t.pending = ""
		}
	case ev.Has(fsnotify.Rename):
		if rel == t.pending || rel == moved {
			break
		}
		out = append(out, t.expire()...)
		t.pending = rel
	case ev.Has(fsnotify.Remove):
		out = append(out, t.expire()...)
		out = append(out, ports.DocumentEvent{Op: ports.DocumentDeleted, Path: rel})
	}
	return out, t.pending != ""
}

// expire reports a pending rename as a deletion.
func (t *translator) expire() []ports.DocumentEvent {
	if t.pending == "" {
		return nil
	}
	ev := ports.DocumentEvent{Op: ports.DocumentDeleted, Path: t.pending}
	t.pending = ""
	return []ports.DocumentEvent{ev}
}

// relative converts an absolute event path to a slash-separated path below root.
func (t *translator) relative(name string) (string, bool) {
	rel, err := filepath.Rel(t.root, name)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
