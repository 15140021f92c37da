package config

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
)

var _ ports.SettingsProvider = (*Live)(nil)

// Live holds the current settings. Readers always see a complete value, and
// every field can be changed while the tracker and store are running.
type Live struct {
	mu sync.Mutex
	v  atomic.Pointer[domain.Settings]
}

// NewLive creates a Live holding s.
func NewLive(s domain.Settings) *Live {
	l := &Live{}
	s = s.Normalize()
	l.v.Store(&s)
	return l
}

// Settings returns the current settings.
func (l *Live) Settings() domain.Settings {
	return *l.v.Load()
}

// Update applies fn to a copy of the current settings and publishes the result.
func (l *Live) Update(fn func(*domain.Settings)) domain.Settings {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := *l.v.Load()
	fn(&s)
	s = s.Normalize()
	l.v.Store(&s)
	return s
}

// Replace publishes s.
func (l *Live) Replace(s domain.Settings) {
	l.Update(func(cur *domain.Settings) {
		*cur = s
	})
}
