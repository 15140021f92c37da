package positions

import (
	"strings"

	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
)

// Forget deletes every key recorded for the document at path, across all
// split slots, and returns how many were removed. When path is a folder the
// keys of every document below it are removed as well.
func Forget(store ports.PositionStore, path string) int {
	var n int
	for _, key := range store.Keys() {
		if _, ok := retarget(key, path, ""); ok {
			store.Delete(key)
			n++
		}
	}
	return n
}

// Move re-keys every position of the document at oldPath to newPath, keeping
// each split suffix, and returns how many were moved. Moving a folder re-keys
// every document below it.
func Move(store ports.PositionStore, oldPath, newPath string) int {
	if oldPath == newPath {
		return 0
	}
	var n int
	for _, key := range store.Keys() {
		if to, ok := retarget(key, oldPath, newPath); ok {
			store.Rename(key, to)
			n++
		}
	}
	return n
}

// retarget returns the key k becomes once the document or folder at oldPath
// is known as newPath, and whether k is affected at all.
func retarget(k domain.Key, oldPath, newPath string) (domain.Key, bool) {
	oldPath = strings.TrimSuffix(oldPath, "/")
	newPath = strings.TrimSuffix(newPath, "/")
	switch {
	case oldPath == "":
		return "", false
	case string(k) == oldPath:
		return domain.Key(newPath), true
	case k.BelongsTo(oldPath):
		return k.WithPath(newPath), true
	case k.Under(oldPath):
		return domain.Key(newPath + string(k[len(oldPath):])), true
	}
	return "", false
}
