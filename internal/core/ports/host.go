package ports

import "go.trai.ch/stay/internal/core/domain"

//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

// EventName identifies a host signal.
type EventName string

const (
	// EventFileOpen fires when a document is opened in a view slot.
	EventFileOpen EventName = "file-open"
	// EventActiveLeafChange fires when another view slot becomes active.
	EventActiveLeafChange EventName = "active-leaf-change"
	// EventLayoutReady fires once, after the initial workspace layout was restored.
	EventLayoutReady EventName = "layout-ready"
	// EventFileDelete fires when a document was deleted. Path is set.
	EventFileDelete EventName = "file-delete"
	// EventFileRename fires when a document was renamed or moved. Path and OldPath are set.
	EventFileRename EventName = "file-rename"
	// EventScroll fires when any scrollable surface scrolled.
	EventScroll EventName = "scroll"
	// EventEditorChange fires when the content of an editor changed.
	EventEditorChange EventName = "editor-change"
)

// Event is a host signal delivered to a subscribed handler.
type Event struct {
	Name    EventName
	Path    string
	OldPath string
	// Leaf is the view slot the event concerns, when the host knows it.
	Leaf Leaf
}

// Subscription releases a handler registered with an EventSource.
type Subscription interface {
	Unsubscribe()
}

// EventSource delivers host signals. Handlers are invoked one at a time.
type EventSource interface {
	On(name EventName, handler func(Event)) Subscription
}

// ViewKind discriminates the views a slot can show.
type ViewKind uint8

const (
	// ViewUnsupported is any view that is not a document view.
	ViewUnsupported ViewKind = iota
	// ViewEditing is a document in editing mode. It implements Editor.
	ViewEditing
	// ViewPreview is a document in read-only mode. It implements Preview.
	ViewPreview
)

// String returns the name of the view kind.
func (k ViewKind) String() string {
	switch k {
	case ViewEditing:
		return "editing"
	case ViewPreview:
		return "preview"
	default:
		return "unsupported"
	}
}

// View is the content shown in a view slot.
type View interface {
	// Kind reports which capability the view provides.
	Kind() ViewKind
	// Path returns the path of the displayed document, if any.
	Path() (string, bool)
}

// Editor is a document view in editing mode.
type Editor interface {
	View
	// Selection returns the live selection anchor and head.
	Selection() (domain.Cursor, bool)
	// SetSelection replaces the selection without scrolling it into view.
	SetSelection(c domain.Cursor)
	// ScrollState returns the host's opaque internal scroll value.
	ScrollState() (float64, bool)
	// SetScrollState restores an internal scroll value.
	SetScrollState(v float64)
	// ScrollTop returns the raw pixel scroll offset.
	ScrollTop() (float64, bool)
	// SetScrollTop sets the raw pixel scroll offset.
	SetScrollTop(v float64)
}

// Preview is a document view in read-only mode.
type Preview interface {
	View
	// ScrollTop returns the raw pixel scroll offset of the preview surface.
	ScrollTop() (float64, bool)
	// SetScrollTop sets the raw pixel scroll offset of the preview surface.
	SetScrollTop(v float64)
}

// Leaf is a view slot.
type Leaf interface {
	// View returns the view currently shown in the slot.
	View() (View, bool)
	// Loading reports whether the slot is still loading its view.
	Loading() bool
	// Ancestry returns the child indices from the slot's container up to,
	// but excluding, the workspace root.
	Ancestry() ([]int, bool)
}

// Workspace is the query side of the host's view object model.
//
// View mutations (SetSelection, SetScrollState, SetScrollTop) may dispatch
// scroll events synchronously but must not dispatch lifecycle signals.
type Workspace interface {
	// ActiveDocumentLeaf returns the active view slot if it shows a document.
	ActiveDocumentLeaf() (Leaf, bool)
	// MostRecentLeaf returns the most recently active view slot.
	MostRecentLeaf() (Leaf, bool)
	// DocumentLeaves returns every visible slot that shows a document.
	DocumentLeaves() []Leaf
	// HighlightVisible reports whether a heading or block highlight flash is visible in the slot.
	HighlightVisible(leaf Leaf) bool
}
