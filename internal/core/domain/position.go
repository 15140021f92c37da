package domain

// Pos is a zero-based line/column location inside a document.
type Pos struct {
	Line int `json:"line"`
	Ch   int `json:"ch"`
}

// Cursor is a selection range. From and To differ when a non-empty selection was active.
type Cursor struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}

// SavedPosition is the reading/editing position recorded for one document view slot.
type SavedPosition struct {
	// Timestamp is the write time in milliseconds since the epoch. It only orders eviction.
	Timestamp int64 `json:"timestamp"`
	// Scroll is the host's opaque internal scroll value (editing mode).
	Scroll *float64 `json:"scroll,omitempty"`
	// ScrollTop is the raw pixel scroll offset (reading mode, or editing fallback).
	ScrollTop *float64 `json:"scrollTop,omitempty"`
	// Cursor is the saved selection, if any.
	Cursor *Cursor `json:"cursor,omitempty"`
}

// HasPosition reports whether at least one positional field is set.
func (p SavedPosition) HasPosition() bool {
	return p.Scroll != nil || p.ScrollTop != nil || p.Cursor != nil
}

// SamePlace reports whether p and other carry the same positional fields, ignoring timestamps.
func (p SavedPosition) SamePlace(other SavedPosition) bool {
	return floatPtrEqual(p.Scroll, other.Scroll) &&
		floatPtrEqual(p.ScrollTop, other.ScrollTop) &&
		cursorPtrEqual(p.Cursor, other.Cursor)
}

// Clone returns a deep copy so callers never share pointer fields with the store.
func (p SavedPosition) Clone() SavedPosition {
	out := SavedPosition{Timestamp: p.Timestamp}
	if p.Scroll != nil {
		v := *p.Scroll
		out.Scroll = &v
	}
	if p.ScrollTop != nil {
		v := *p.ScrollTop
		out.ScrollTop = &v
	}
	if p.Cursor != nil {
		c := *p.Cursor
		out.Cursor = &c
	}
	return out
}

// Float returns a pointer to v. It keeps position literals short.
func Float(v float64) *float64 {
	return &v
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cursorPtrEqual(a, b *Cursor) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
