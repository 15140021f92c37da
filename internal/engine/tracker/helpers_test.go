package tracker_test

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
	"go.trai.ch/stay/internal/core/ports/mocks"
	"go.trai.ch/stay/internal/engine/positions"
	"go.trai.ch/stay/internal/engine/tracker"
	"go.uber.org/mock/gomock"
)

// bus is an in-memory ports.EventSource.
type bus struct {
	mu       sync.Mutex
	handlers map[ports.EventName][]*subscription
}

type subscription struct {
	bus  *bus
	name ports.EventName
	fn   func(ports.Event)
}

func newBus() *bus {
	return &bus{handlers: make(map[ports.EventName][]*subscription)}
}

func (b *bus) On(name ports.EventName, fn func(ports.Event)) ports.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub := &subscription{bus: b, name: name, fn: fn}
	b.handlers[name] = append(b.handlers[name], sub)
	return sub
}

func (s *subscription) Unsubscribe() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	s.bus.handlers[s.name] = slices.DeleteFunc(s.bus.handlers[s.name], func(o *subscription) bool {
		return o == s
	})
}

func (b *bus) emit(ev ports.Event) {
	b.mu.Lock()
	subs := slices.Clone(b.handlers[ev.Name])
	b.mu.Unlock()
	for _, sub := range subs {
		sub.fn(ev)
	}
}

func (b *bus) subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, subs := range b.handlers {
		n += len(subs)
	}
	return n
}

// editor is a fake editing-mode view. Setter calls are recorded in order.
type editor struct {
	mu        sync.Mutex
	path      string
	cursor    *domain.Cursor
	scroll    *float64
	scrollTop *float64
	calls     []string
}

func (e *editor) Kind() ports.ViewKind { return ports.ViewEditing }

func (e *editor) Path() (string, bool) { return e.path, e.path != "" }

func (e *editor) Selection() (domain.Cursor, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursor == nil {
		return domain.Cursor{}, false
	}
	return *e.cursor, true
}

func (e *editor) SetSelection(c domain.Cursor) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor = &c
	e.calls = append(e.calls, "selection")
}

func (e *editor) ScrollState() (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scroll == nil {
		return 0, false
	}
	return *e.scroll, true
}

func (e *editor) SetScrollState(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scroll = &v
	e.calls = append(e.calls, "scroll")
}

func (e *editor) ScrollTop() (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scrollTop == nil {
		return 0, false
	}
	return *e.scrollTop, true
}

func (e *editor) SetScrollTop(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scrollTop = &v
	e.calls = append(e.calls, "scrollTop")
}

func (e *editor) scrollTo(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scroll = &v
}

func (e *editor) applied() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.calls)
}

// preview is a fake reading-mode view.
type preview struct {
	mu        sync.Mutex
	path      string
	scrollTop float64
	calls     int
}

func (p *preview) Kind() ports.ViewKind { return ports.ViewPreview }

func (p *preview) Path() (string, bool) { return p.path, true }

func (p *preview) ScrollTop() (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scrollTop, true
}

func (p *preview) SetScrollTop(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scrollTop = v
	p.calls++
}

func (p *preview) applied() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// graph is a fake non-document view.
type graph struct{}

func (graph) Kind() ports.ViewKind { return ports.ViewUnsupported }

func (graph) Path() (string, bool) { return "", false }

// leaf is a fake view slot.
type leaf struct {
	view     ports.View
	ancestry []int
	loading  atomic.Bool
}

func newLeaf(view ports.View, ancestry ...int) *leaf {
	return &leaf{view: view, ancestry: ancestry}
}

func (l *leaf) View() (ports.View, bool) { return l.view, l.view != nil }

func (l *leaf) Loading() bool { return l.loading.Load() }

func (l *leaf) Ancestry() ([]int, bool) { return l.ancestry, true }

// workspace is a fake ports.Workspace.
type workspace struct {
	mu        sync.Mutex
	active    *leaf
	leaves    []*leaf
	highlight map[*leaf]bool
}

func (w *workspace) ActiveDocumentLeaf() (ports.Leaf, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active == nil || w.active.view == nil || w.active.view.Kind() == ports.ViewUnsupported {
		return nil, false
	}
	return w.active, true
}

func (w *workspace) MostRecentLeaf() (ports.Leaf, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active == nil {
		return nil, false
	}
	return w.active, true
}

func (w *workspace) DocumentLeaves() []ports.Leaf {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]ports.Leaf, 0, len(w.leaves))
	for _, l := range w.leaves {
		out = append(out, l)
	}
	return out
}

func (w *workspace) HighlightVisible(l ports.Leaf) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	fl, ok := l.(*leaf)
	return ok && w.highlight[fl]
}

func (w *workspace) activate(l *leaf) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = l
}

func (w *workspace) setHighlight(l *leaf, on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.highlight == nil {
		w.highlight = make(map[*leaf]bool)
	}
	w.highlight[l] = on
}

// recorder is a ports.Tracer that keeps every span it started.
type recorder struct {
	mu    sync.Mutex
	spans []*span
}

type span struct {
	mu    sync.Mutex
	name  string
	attrs map[string]any
	ended bool
}

func (r *recorder) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &span{name: name, attrs: make(map[string]any)}
	r.spans = append(r.spans, s)
	return ctx, s
}

func (s *span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = true
}

func (s *span) RecordError(error) {}

func (s *span) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs[key] = value
}

// outcomes returns the outcome of every finished restore.
func (r *recorder) outcomes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, s := range r.spans {
		s.mu.Lock()
		if s.ended {
			out = append(out, s.attrs["outcome"].(string))
		}
		s.mu.Unlock()
	}
	return out
}

// liveSettings is a ports.SettingsProvider whose value tests can swap.
type liveSettings struct {
	v atomic.Pointer[domain.Settings]
}

func (l *liveSettings) Settings() domain.Settings {
	return *l.v.Load()
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

type harness struct {
	bus      *bus
	ws       *workspace
	store    *positions.Store
	tracer   *recorder
	settings *liveSettings
	tracker  *tracker.Tracker
}

// newHarness wires a tracker to fakes and an in-memory store. Persistence is
// off, so the file system mock fails the test on any access.
func newHarness(t *testing.T, opts ...func(*domain.Settings)) *harness {
	t.Helper()

	s := domain.DefaultSettings()
	s.PersistToDisk = false
	for _, opt := range opts {
		opt(&s)
	}
	settings := &liveSettings{}
	settings.v.Store(&s)

	h := &harness{
		bus:      newBus(),
		ws:       &workspace{},
		tracer:   &recorder{},
		settings: settings,
	}
	fsys := mocks.NewMockFileSystem(gomock.NewController(t))
	h.store = positions.NewStore(fsys, settings, quietLogger(t))
	h.tracker = tracker.New(h.store, h.ws, h.bus, settings, h.tracer, quietLogger(t))
	return h
}

// start registers the tracker and signals that the layout is ready.
func (h *harness) start(t *testing.T) {
	t.Helper()
	require.NoError(t, h.tracker.Register(context.Background()))
	h.bus.emit(ports.Event{Name: ports.EventLayoutReady})
}

func (h *harness) stop() {
	h.tracker.Close()
	_ = h.store.Flush(context.Background())
}

func cursor(line, ch int) *domain.Cursor {
	return &domain.Cursor{From: domain.Pos{Line: line, Ch: ch}, To: domain.Pos{Line: line, Ch: ch}}
}
