// Package positions implements the bounded, persisted position store.
package positions

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
	"go.trai.ch/stay/internal/engine/debounce"
	"go.trai.ch/zerr"
)

var _ ports.PositionStore = (*Store)(nil)

// Entry is a stored key with its position.
type Entry struct {
	Key      domain.Key
	Position domain.SavedPosition
}

// Store implements ports.PositionStore with debounced writes to a single JSON file.
type Store struct {
	fs       ports.FileSystem
	settings ports.SettingsProvider
	logger   ports.Logger

	mu        sync.Mutex
	positions map[domain.Key]domain.SavedPosition
	dirty     bool

	// writeMu keeps at most one write in flight. It is taken before mu.
	writeMu    sync.Mutex
	lastPath   string
	lastDigest uint64

	writer *debounce.Debouncer
}

// Option configures a Store.
type Option func(*Store)

// WithWriteDebounce overrides the quiescence window of file writes.
func WithWriteDebounce(window time.Duration) Option {
	return func(s *Store) {
		s.writer = debounce.NewFixed(window, s.writeScheduled)
	}
}

// NewStore creates an empty store persisting through fsys.
func NewStore(fsys ports.FileSystem, settings ports.SettingsProvider, log ports.Logger, opts ...Option) *Store {
	s := &Store{
		fs:        fsys,
		settings:  settings,
		logger:    log,
		positions: make(map[domain.Key]domain.SavedPosition),
	}
	s.writer = debounce.NewFixed(domain.DefaultTimings().WriteDebounce, s.writeScheduled)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the position saved under key.
func (s *Store) Get(key domain.Key) (domain.SavedPosition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.positions[key]
	if !ok {
		return domain.SavedPosition{}, false
	}
	return pos.Clone(), true
}

// Set upserts pos under key. Positions without positional fields are ignored.
func (s *Store) Set(key domain.Key, pos domain.SavedPosition) {
	if !pos.HasPosition() {
		return
	}
	limit := s.settings.Settings().MaxPositions

	s.mu.Lock()
	s.positions[key] = pos.Clone()
	s.dirty = true
	s.evictLocked(limit)
	s.mu.Unlock()

	s.writer.Trigger()
}

// Delete removes the position saved under key, if any.
func (s *Store) Delete(key domain.Key) {
	s.mu.Lock()
	_, ok := s.positions[key]
	if ok {
		delete(s.positions, key)
		s.dirty = true
	}
	s.mu.Unlock()

	if ok {
		s.writer.Trigger()
	}
}

// Rename moves the position saved under oldKey to newKey, if any.
func (s *Store) Rename(oldKey, newKey domain.Key) {
	if oldKey == newKey {
		return
	}

	s.mu.Lock()
	pos, ok := s.positions[oldKey]
	if ok {
		delete(s.positions, oldKey)
		s.positions[newKey] = pos
		s.dirty = true
	}
	s.mu.Unlock()

	if ok {
		s.writer.Trigger()
	}
}

// Size returns the number of stored positions.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.positions)
}

// Keys returns the stored keys in lexical order.
func (s *Store) Keys() []domain.Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.positions))
}

// Entries returns a snapshot of the store ordered by key.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, 0, len(s.positions))
	for _, key := range slices.Sorted(maps.Keys(s.positions)) {
		entries = append(entries, Entry{Key: key, Position: s.positions[key].Clone()})
	}
	return entries
}

// Dirty reports whether the store holds mutations that were not written yet.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Prune applies the configured bound now and returns how many positions were evicted.
// Eviction normally happens on Set; Prune covers a bound lowered at runtime.
func (s *Store) Prune() int {
	limit := s.settings.Settings().MaxPositions

	s.mu.Lock()
	removed := s.evictLocked(limit)
	if removed > 0 {
		s.dirty = true
	}
	s.mu.Unlock()

	if removed > 0 {
		s.writer.Trigger()
	}
	return removed
}

// evictLocked deletes the oldest positions beyond limit. Zero means unlimited.
func (s *Store) evictLocked(limit uint) int {
	if limit == 0 || uint(len(s.positions)) <= limit {
		return 0
	}

	keys := slices.Collect(maps.Keys(s.positions))
	slices.SortFunc(keys, func(a, b domain.Key) int {
		return cmp.Or(
			cmp.Compare(s.positions[a].Timestamp, s.positions[b].Timestamp),
			cmp.Compare(a, b),
		)
	})

	excess := len(keys) - int(limit) //nolint:gosec // limit < len(keys) here
	for _, key := range keys[:excess] {
		delete(s.positions, key)
	}
	return excess
}

// Load hydrates the store from the positions file. A missing file leaves the
// store empty; an unreadable or corrupt file resets it to empty and is logged.
func (s *Store) Load(ctx context.Context) {
	settings := s.settings.Settings()
	if !settings.PersistToDisk {
		return
	}
	if ctx.Err() != nil {
		return
	}

	positions, digest, err := s.read(settings.FilePath)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.positions = positions
	s.dirty = false
	s.lastPath, s.lastDigest = "", 0
	if err != nil {
		s.logger.Error(err)
		return
	}
	if digest != 0 {
		s.lastPath, s.lastDigest = settings.FilePath, digest
	}
}

func (s *Store) read(path string) (map[domain.Key]domain.SavedPosition, uint64, error) {
	empty := make(map[domain.Key]domain.SavedPosition)

	exists, err := s.fs.Exists(path)
	if err != nil {
		return empty, 0, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}
	if !exists {
		return empty, 0, nil
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return empty, 0, nil
		}
		return empty, 0, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}
	if len(data) == 0 {
		return empty, 0, nil
	}

	var raw map[domain.Key]domain.SavedPosition
	if err := json.Unmarshal(data, &raw); err != nil {
		return empty, 0, zerr.With(zerr.Wrap(err, domain.ErrStoreCorrupt.Error()), "path", path)
	}

	for key, pos := range raw {
		if pos.HasPosition() {
			empty[key] = pos
		}
	}
	return empty, xxhash.Sum64(data), nil
}

// Flush cancels the pending debounced write and writes now if the store is dirty.
// Failures are logged and returned; the store keeps working in memory either way.
func (s *Store) Flush(ctx context.Context) error {
	s.writer.Cancel()
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.write()
}

func (s *Store) writeScheduled() {
	_ = s.write()
}

// write persists the current mapping. A failed write keeps the store dirty so
// that the next mutation or Flush retries it.
func (s *Store) write() error {
	settings := s.settings.Settings()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if !s.dirty || !settings.PersistToDisk {
		s.mu.Unlock()
		return nil
	}
	data, err := json.MarshalIndent(s.positions, "", "  ")
	s.dirty = false
	s.mu.Unlock()

	if err != nil {
		return s.writeFailed(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), settings.FilePath)
	}

	path := settings.FilePath
	digest := xxhash.Sum64(data)
	if path == s.lastPath && digest == s.lastDigest {
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir); err != nil {
			return s.writeFailed(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), path)
		}
	}
	if err := s.fs.WriteFile(path, data); err != nil {
		return s.writeFailed(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), path)
	}

	s.lastPath, s.lastDigest = path, digest
	return nil
}

func (s *Store) writeFailed(err error, path string) error {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()

	err = zerr.With(err, "path", path)
	s.logger.Error(err)
	return err
}
