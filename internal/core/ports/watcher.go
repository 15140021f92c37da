package ports

import (
	"context"
	"iter"
)

// DocumentOp is the kind of change observed on a document.
type DocumentOp uint8

const (
	// DocumentDeleted indicates the document at Path was removed.
	DocumentDeleted DocumentOp = iota
	// DocumentRenamed indicates the document at OldPath now lives at Path.
	DocumentRenamed
)

func (op DocumentOp) String() string {
	switch op {
	case DocumentDeleted:
		return "delete"
	case DocumentRenamed:
		return "rename"
	default:
		return "unknown"
	}
}

// DocumentEvent is a document lifecycle change observed outside the host.
type DocumentEvent struct {
	Op      DocumentOp
	Path    string
	OldPath string
}

// DocumentWatcher observes a document directory.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type DocumentWatcher interface {
	// Start begins watching root recursively.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of document events. It ends when the watcher stops.
	Events() iter.Seq[DocumentEvent]
}
