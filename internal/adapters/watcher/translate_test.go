package watcher

import (
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/stay/internal/core/ports"
)

func TestTranslator(t *testing.T) {
	root := filepath.FromSlash("/vault")
	abs := func(rel string) string { return filepath.Join(root, filepath.FromSlash(rel)) }

	tests := []struct {
		name        string
		events      []fsnotify.Event
		want        []ports.DocumentEvent
		wantWaiting bool
	}{
		{
			name:   "remove",
			events: []fsnotify.Event{{Name: abs("notes/a.md"), Op: fsnotify.Remove}},
			want:   []ports.DocumentEvent{{Op: ports.DocumentDeleted, Path: "notes/a.md"}},
		},
		{
			name: "rename pairs with create",
			events: []fsnotify.Event{
				{Name: abs("a.md"), Op: fsnotify.Rename},
				{Name: abs("dir/b.md"), Op: fsnotify.Create},
			},
			want: []ports.DocumentEvent{{Op: ports.DocumentRenamed, OldPath: "a.md", Path: "dir/b.md"}},
		},
		{
			name:        "rename waits for create",
			events:      []fsnotify.Event{{Name: abs("a.md"), Op: fsnotify.Rename}},
			want:        nil,
			wantWaiting: true,
		},
		{
			name: "second rename expires the first",
			events: []fsnotify.Event{
				{Name: abs("a.md"), Op: fsnotify.Rename},
				{Name: abs("b.md"), Op: fsnotify.Rename},
			},
			want:        []ports.DocumentEvent{{Op: ports.DocumentDeleted, Path: "a.md"}},
			wantWaiting: true,
		},
		{
			name: "folder move reported twice",
			events: []fsnotify.Event{
				{Name: abs("notes"), Op: fsnotify.Rename},
				{Name: abs("archive"), Op: fsnotify.Create},
				{Name: abs("notes"), Op: fsnotify.Rename},
			},
			want: []ports.DocumentEvent{{Op: ports.DocumentRenamed, OldPath: "notes", Path: "archive"}},
		},
		{
			name: "folder leaving the tree reported twice",
			events: []fsnotify.Event{
				{Name: abs("notes"), Op: fsnotify.Rename},
				{Name: abs("notes"), Op: fsnotify.Rename},
			},
			want:        nil,
			wantWaiting: true,
		},
		{
			name: "later rename of a reused name",
			events: []fsnotify.Event{
				{Name: abs("a.md"), Op: fsnotify.Rename},
				{Name: abs("b.md"), Op: fsnotify.Create},
				{Name: abs("a.md"), Op: fsnotify.Create},
				{Name: abs("a.md"), Op: fsnotify.Rename},
			},
			want:        []ports.DocumentEvent{{Op: ports.DocumentRenamed, OldPath: "a.md", Path: "b.md"}},
			wantWaiting: true,
		},
		{
			name: "plain create is ignored",
			events: []fsnotify.Event{
				{Name: abs("new.md"), Op: fsnotify.Create},
				{Name: abs("new.md"), Op: fsnotify.Write},
				{Name: abs("new.md"), Op: fsnotify.Chmod},
			},
			want: nil,
		},
		{
			name:   "outside root is ignored",
			events: []fsnotify.Event{{Name: filepath.FromSlash("/elsewhere/a.md"), Op: fsnotify.Remove}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTranslator(root)

			var got []ports.DocumentEvent
			var waiting bool
			for _, ev := range tt.events {
				var out []ports.DocumentEvent
				out, waiting = tr.handle(ev)
				got = append(got, out...)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantWaiting, waiting)
		})
	}
}

func TestTranslator_Expire(t *testing.T) {
	tr := newTranslator("/vault")
	tr.handle(fsnotify.Event{Name: "/vault/a.md", Op: fsnotify.Rename})

	assert.Equal(t, []ports.DocumentEvent{{Op: ports.DocumentDeleted, Path: "a.md"}}, tr.expire())
	assert.Nil(t, tr.expire())
}
