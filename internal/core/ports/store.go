package ports

import "go.trai.ch/stay/internal/core/domain"

// PositionStore is the bounded, persisted mapping from position keys to saved positions.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PositionStore interface {
	// Get returns the position saved under key.
	Get(key domain.Key) (domain.SavedPosition, bool)

	// Set upserts the position, evicts the oldest entries beyond the configured
	// maximum and schedules a debounced write. It never blocks on I/O.
	Set(key domain.Key, pos domain.SavedPosition)

	// Delete removes the position saved under key, if any.
	Delete(key domain.Key)

	// Rename moves the position saved under oldKey to newKey, if any.
	Rename(oldKey, newKey domain.Key)

	// Size returns the number of stored positions.
	Size() int

	// Keys returns the stored keys in lexical order.
	Keys() []domain.Key
}
