package domain

import (
	"strconv"
	"strings"
)

// KeySeparator splits the document path from the split suffix of a Key.
const KeySeparator = "#"

// Key identifies a saved position: "<path>" or "<path>#<splitPath>".
type Key string

// NewKey derives the key of a document shown in a view slot.
//
// ancestry holds the child index of each container walking from the slot's
// container outwards, excluding the workspace root. The suffix is omitted when
// every index is zero so that single-pane keys stay stable.
func NewKey(path string, ancestry []int) Key {
	primary := true
	for _, idx := range ancestry {
		if idx != 0 {
			primary = false
			break
		}
	}
	if primary {
		return Key(path)
	}

	parts := make([]string, len(ancestry))
	for i, idx := range ancestry {
		parts[i] = strconv.Itoa(idx)
	}
	return Key(path + KeySeparator + strings.Join(parts, "-"))
}

// Path returns the document part of the key.
func (k Key) Path() string {
	if i := strings.LastIndex(string(k), KeySeparator); i >= 0 && isSplitSuffix(string(k[i+1:])) {
		return string(k[:i])
	}
	return string(k)
}

// Suffix returns the split suffix without the separator, or "" for a primary slot.
func (k Key) Suffix() string {
	p := k.Path()
	if len(p) == len(k) {
		return ""
	}
	return string(k[len(p)+1:])
}

// WithPath returns the key for the same view slot showing another document.
func (k Key) WithPath(path string) Key {
	if s := k.Suffix(); s != "" {
		return Key(path + KeySeparator + s)
	}
	return Key(path)
}

// BelongsTo reports whether the key records a position of the document at path.
// A key equal to path always belongs to it, even when path itself ends in
// something that parses as a split suffix.
func (k Key) BelongsTo(path string) bool {
	return string(k) == path || k.Path() == path
}

// Under reports whether the key records a position of a document inside the
// folder dir, at any depth.
func (k Key) Under(dir string) bool {
	dir = strings.TrimSuffix(dir, "/")
	return dir != "" && strings.HasPrefix(string(k), dir+"/")
}

// String returns the key as a string.
func (k Key) String() string {
	return string(k)
}

// isSplitSuffix reports whether s looks like a dash-joined list of indices.
// Document paths may contain '#', so only a well-formed tail counts as a suffix.
func isSplitSuffix(s string) bool {
	if s == "" {
		return false
	}
	for part := range strings.SplitSeq(s, "-") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
