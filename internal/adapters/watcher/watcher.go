// Package watcher observes a document directory and reports deletions and
// renames of documents.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DocumentWatcher = (*Watcher)(nil)

// shouldSkipDirectories are directories that are never watched.
var shouldSkipDirectories = map[string]bool{
	".git":             true,
	".obsidian":        true,
	".trash":           true,
	domain.StayDirName: true,
	"node_modules":     true,
}

const eventChannelBuffer = 100

// DefaultPairWindow is how long a Rename waits for the matching Create.
const DefaultPairWindow = 50 * time.Millisecond

// Watcher implements ports.DocumentWatcher using fsnotify.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	events     chan ports.DocumentEvent
	pairWindow time.Duration
	logger     ports.Logger
	closeOnce  sync.Once
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithPairWindow overrides DefaultPairWindow.
func WithPairWindow(d time.Duration) Option {
	return func(w *Watcher) {
		w.pairWindow = d
	}
}

// NewWatcher creates a new document watcher. No file system resources are
// acquired until Start.
func NewWatcher(log ports.Logger, opts ...Option) *Watcher {
	w := &Watcher{
		events:     make(chan ports.DocumentEvent, eventChannelBuffer),
		pairWindow: DefaultPairWindow,
		logger:     log,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching root recursively. A watcher can be started once.
func (w *Watcher) Start(ctx context.Context, root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", root)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", root)
	}
	if !info.IsDir() {
		return zerr.With(domain.ErrWatchFailed, "root", root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	w.fsWatcher = fsw

	for dir := range w.watchRecursively(abs) {
		if err := w.fsWatcher.Add(dir); err != nil {
			_ = w.fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "dir", dir)
		}
	}

	go w.processEvents(ctx, newTranslator(abs))
	return nil
}

// Stop stops the watcher and releases all resources. The event iterator ends
// once pending events were delivered.
func (w *Watcher) Stop() error {
	if w.fsWatcher == nil {
		w.closeEvents()
		return nil
	}
	return w.fsWatcher.Close()
}

// Events returns an iterator of document events.
func (w *Watcher) Events() iter.Seq[ports.DocumentEvent] {
	return func(yield func(ports.DocumentEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // skip unreadable directories
			}
			if d.IsDir() {
				if path != root && shouldSkipDirectories[d.Name()] {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

//nolint:cyclop // one select over fsnotify, the pairing timer and ctx
func (w *Watcher) processEvents(ctx context.Context, tr *translator) {
	defer w.closeEvents()

	var pairTimer *time.Timer
	var pairC <-chan time.Time
	stopPairTimer := func() {
		if pairTimer != nil {
			pairTimer.Stop()
			pairTimer, pairC = nil, nil
		}
	}
	defer stopPairTimer()

	for {
		var out []ports.DocumentEvent

		select {
		case <-ctx.Done():
			return

		case <-pairC:
			pairTimer, pairC = nil, nil
			out = tr.expire()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			var waiting bool
			out, waiting = tr.handle(event)
			stopPairTimer()
			if waiting {
				pairTimer = time.NewTimer(w.pairWindow)
				pairC = pairTimer.C
			}
			if event.Has(fsnotify.Create) {
				w.watchCreated(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}

		for _, ev := range out {
			select {
			case w.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *Watcher) closeEvents() {
	w.closeOnce.Do(func() {
		close(w.events)
	})
}

// watchCreated adds a newly created or moved-in directory tree.
func (w *Watcher) watchCreated(name string) {
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() || shouldSkipDirectories[info.Name()] {
		return
	}
	for dir := range w.watchRecursively(name) {
		_ = w.fsWatcher.Add(dir)
	}
}
