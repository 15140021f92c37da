package positions_test

import (
	"io/fs"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports/mocks"
	"go.trai.ch/stay/internal/engine/positions"
	"go.uber.org/mock/gomock"
)

// memFS is an in-memory ports.FileSystem.
type memFS struct {
	mu     sync.Mutex
	files  map[string][]byte
	writes int
}

func newMemFS() *memFS {
	return &memFS{files: make(map[string][]byte)}
}

func (m *memFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(name)]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (m *memFS) WriteFile(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(name)] = append([]byte(nil), data...)
	m.writes++
	return nil
}

func (m *memFS) Exists(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[filepath.Clean(name)]
	return ok, nil
}

func (m *memFS) MkdirAll(string) error {
	return nil
}

func (m *memFS) put(name, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(name)] = []byte(content)
}

func (m *memFS) get(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(name)]
	return string(data), ok
}

func (m *memFS) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// liveSettings is a ports.SettingsProvider whose value tests can swap.
type liveSettings struct {
	v atomic.Pointer[domain.Settings]
}

func newSettings(maxPositions uint) *liveSettings {
	s := domain.DefaultSettings()
	s.MaxPositions = maxPositions
	ls := &liveSettings{}
	ls.v.Store(&s)
	return ls
}

func (l *liveSettings) Settings() domain.Settings {
	return *l.v.Load()
}

func (l *liveSettings) update(fn func(*domain.Settings)) {
	s := *l.v.Load()
	fn(&s)
	l.v.Store(&s)
}

// quietLogger returns a logger mock that accepts any call.
func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func at(ts int64) domain.SavedPosition {
	return domain.SavedPosition{Timestamp: ts, Scroll: domain.Float(float64(ts))}
}

func newStore(t *testing.T, fsys *memFS, settings *liveSettings) *positions.Store {
	t.Helper()
	return positions.NewStore(fsys, settings, quietLogger(t))
}
