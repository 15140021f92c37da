// Package tracker decides when positions are captured from the host's views
// and when they are restored into them.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
	"go.trai.ch/stay/internal/engine/debounce"
	"go.trai.ch/stay/internal/engine/positions"
)

// Tracker observes host signals, captures view positions into a PositionStore
// and restores them when documents are shown again.
//
// Every state transition is serialised through mu, which models the host's
// single event loop. Scroll and editor-change handlers never take mu so a host
// that dispatches scroll events from inside a view mutation cannot deadlock.
type Tracker struct {
	store    ports.PositionStore
	host     ports.Workspace
	events   ports.EventSource
	settings ports.SettingsProvider
	tracer   ports.Tracer
	logger   ports.Logger
	timings  domain.Timings

	mu          sync.Mutex
	suppression *Suppression
	layoutReady bool
	lastLeaf    ports.Leaf
	generation  uint64
	registered  bool
	closed      bool
	subs        []ports.Subscription
	ctx         context.Context
	cancel      context.CancelFunc

	// navigating is the depth of link navigations in progress.
	navigating atomic.Int32

	capture *debounce.Debouncer
	wg      sync.WaitGroup
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithTimings overrides the tracker's internal delays.
func WithTimings(t domain.Timings) Option {
	return func(tr *Tracker) {
		tr.timings = t
	}
}

// New creates a Tracker. It does nothing until Register is called.
func New(
	store ports.PositionStore,
	host ports.Workspace,
	events ports.EventSource,
	settings ports.SettingsProvider,
	tracer ports.Tracer,
	log ports.Logger,
	opts ...Option,
) *Tracker {
	t := &Tracker{
		store:       store,
		host:        host,
		events:      events,
		settings:    settings,
		tracer:      tracer,
		logger:      log,
		timings:     domain.DefaultTimings(),
		suppression: NewSuppression(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.capture = debounce.New(t.timings.CaptureDebounce, t.captureActive)
	return t
}

// Register subscribes to the host signals and starts the periodic safety
// capture. It is the only lifecycle entry point and may be called once.
func (t *Tracker) Register(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.registered || t.closed {
		return domain.ErrAlreadyRegistered
	}
	t.registered = true
	t.ctx, t.cancel = context.WithCancel(ctx)

	t.subs = append(t.subs,
		t.events.On(ports.EventLayoutReady, t.onLayoutReady),
		t.events.On(ports.EventFileOpen, t.onFileOpen),
		t.events.On(ports.EventActiveLeafChange, t.onActiveLeafChange),
		t.events.On(ports.EventFileDelete, t.onFileDelete),
		t.events.On(ports.EventFileRename, t.onFileRename),
		t.events.On(ports.EventScroll, t.onActivity),
		t.events.On(ports.EventEditorChange, t.onActivity),
	)

	runCtx := t.ctx
	t.wg.Go(func() {
		t.safetyLoop(runCtx)
	})
	return nil
}

// Close unsubscribes from the host, stops every timer, cancels in-flight
// restores and waits for them to return. It is safe to call more than once.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	subs := t.subs
	t.subs = nil
	cancel := t.cancel
	t.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
	t.capture.Stop()
	if cancel != nil {
		cancel()
	}
	t.wg.Wait()

	t.mu.Lock()
	t.suppression.Reset()
	t.mu.Unlock()
}

// State returns the capture gate state.
func (t *Tracker) State() SuppressionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.suppression.State(time.Now())
}

// LayoutReady reports whether the initial layout has settled.
func (t *Tracker) LayoutReady() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.layoutReady
}

func (t *Tracker) onLayoutReady(ports.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.layoutReady || t.closed {
		return
	}
	for _, leaf := range t.host.DocumentLeaves() {
		t.beginRestoreLocked(leaf, true)
	}
	if leaf, ok := t.host.MostRecentLeaf(); ok {
		t.lastLeaf = leaf
	}
	t.layoutReady = true
}

func (t *Tracker) onFileOpen(ports.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.beginRestoreLocked(nil, false)
}

func (t *Tracker) onActiveLeafChange(ev ports.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.layoutReady || t.closed {
		return
	}
	if t.lastLeaf != nil {
		t.captureLocked(t.lastLeaf)
	}

	leaf := ev.Leaf
	if leaf == nil {
		leaf, _ = t.host.MostRecentLeaf()
	}
	t.lastLeaf = leaf
	t.beginRestoreLocked(nil, false)
}

func (t *Tracker) onFileDelete(ev ports.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ev.Path == "" || t.closed {
		return
	}
	if n := positions.Forget(t.store, ev.Path); n > 0 {
		t.logger.Info(fmt.Sprintf("forgot %d position(s) of %s", n, ev.Path))
	}
}

func (t *Tracker) onFileRename(ev ports.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ev.OldPath == "" || ev.Path == "" || t.closed {
		return
	}
	if n := positions.Move(t.store, ev.OldPath, ev.Path); n > 0 {
		t.logger.Info(fmt.Sprintf("moved %d position(s) from %s to %s", n, ev.OldPath, ev.Path))
	}
}

// onActivity handles scroll and editor-change signals. It only restarts the
// capture debounce window.
func (t *Tracker) onActivity(ports.Event) {
	t.capture.Trigger()
}

func (t *Tracker) safetyLoop(ctx context.Context) {
	ticker := time.NewTicker(t.timings.SafetyInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.captureActive()
		}
	}
}
