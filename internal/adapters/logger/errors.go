package logger

import (
	"errors"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer describes an error carrying key-value metadata attached with zerr.With.
// Errors without it are rendered without metadata.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the error chain. zerr errors contribute their own
// message and metadata; the first standard error ends the walk with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message(), Metadata: map[string]any{}}
		if md, ok := current.(metadataer); ok {
			maps.Copy(entry.Metadata, md.Metadata())
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as "Error: ..." followed by an indented
// "Caused by:" list. Metadata is left to errorAttrs.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var head, indent string
		if i == 0 {
			head, indent = "Error: ", "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
	}

	return strings.Join(lines, "\n")
}

// errorAttrs merges the metadata of the whole chain into log attributes sorted
// by key. When a key repeats, the outermost error wins.
func errorAttrs(entries []ErrorEntry) []slog.Attr {
	merged := map[string]any{}
	for _, entry := range slices.Backward(entries) {
		maps.Copy(merged, entry.Metadata)
	}

	attrs := make([]slog.Attr, 0, len(merged))
	for _, key := range slices.Sorted(maps.Keys(merged)) {
		attrs = append(attrs, slog.Any(key, merged[key]))
	}
	return attrs
}
