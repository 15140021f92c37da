package tracker

import (
	"time"

	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
)

// captureActive records the position of the active document view.
func (t *Tracker) captureActive() {
	t.mu.Lock()
	defer t.mu.Unlock()

	leaf, ok := t.host.ActiveDocumentLeaf()
	if !ok {
		return
	}
	t.captureLocked(leaf)
}

// captureLocked records the position shown in leaf. It is skipped while a
// restore suppresses captures, before the layout settled, and for slots that
// do not show a supported document view.
func (t *Tracker) captureLocked(leaf ports.Leaf) {
	if t.closed || !t.layoutReady {
		return
	}
	now := time.Now()
	if t.suppression.State(now) == Suppressed {
		return
	}

	key, view, ok := resolve(leaf)
	if !ok {
		return
	}
	pos, ok := readPosition(view, now)
	if !ok {
		return
	}
	t.store.Set(key, pos)
}

// resolve derives the position key of the document shown in leaf.
func resolve(leaf ports.Leaf) (domain.Key, ports.View, bool) {
	if leaf == nil {
		return "", nil, false
	}
	view, ok := leaf.View()
	if !ok || view == nil {
		return "", nil, false
	}
	path, ok := view.Path()
	if !ok || path == "" {
		return "", nil, false
	}
	ancestry, ok := leaf.Ancestry()
	if !ok {
		return "", nil, false
	}
	return domain.NewKey(path, ancestry), view, true
}

// readPosition reads the live position of a document view. It reports false
// for unsupported views and when no positional field could be read.
func readPosition(view ports.View, now time.Time) (domain.SavedPosition, bool) {
	pos := domain.SavedPosition{Timestamp: now.UnixMilli()}

	switch view.Kind() {
	case ports.ViewEditing:
		ed, ok := view.(ports.Editor)
		if !ok {
			return pos, false
		}
		if c, ok := ed.Selection(); ok {
			pos.Cursor = &c
		}
		if v, ok := ed.ScrollState(); ok {
			pos.Scroll = domain.Float(v)
		}
		if v, ok := ed.ScrollTop(); ok {
			pos.ScrollTop = domain.Float(v)
		}
	case ports.ViewPreview:
		pv, ok := view.(ports.Preview)
		if !ok {
			return pos, false
		}
		if v, ok := pv.ScrollTop(); ok {
			pos.ScrollTop = domain.Float(v)
		}
	default:
		return pos, false
	}

	return pos, pos.HasPosition()
}

// applyPosition writes pos into view. The selection goes first and the scroll
// restore always comes last.
func applyPosition(view ports.View, pos domain.SavedPosition, restoreCursor bool) bool {
	switch view.Kind() {
	case ports.ViewEditing:
		ed, ok := view.(ports.Editor)
		if !ok {
			return false
		}
		if restoreCursor && pos.Cursor != nil {
			ed.SetSelection(*pos.Cursor)
		}
		switch {
		case pos.Scroll != nil:
			ed.SetScrollState(*pos.Scroll)
		case pos.ScrollTop != nil:
			ed.SetScrollTop(*pos.ScrollTop)
		}
		return true
	case ports.ViewPreview:
		pv, ok := view.(ports.Preview)
		if !ok {
			return false
		}
		if pos.ScrollTop != nil {
			pv.SetScrollTop(*pos.ScrollTop)
		}
		return true
	default:
		return false
	}
}
