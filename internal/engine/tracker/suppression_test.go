package tracker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stay/internal/engine/tracker"
)

func TestSuppression_Nesting(t *testing.T) {
	now := time.Unix(100, 0)
	s := tracker.NewSuppression()
	assert.Equal(t, tracker.Active, s.State(now))

	a := s.Acquire(now, time.Second)
	b := s.Acquire(now, time.Second)
	assert.Equal(t, 2, s.Count(now))
	assert.Equal(t, tracker.Suppressed, s.State(now))

	s.Release(a)
	assert.Equal(t, tracker.Suppressed, s.State(now))

	s.Release(b)
	assert.Equal(t, tracker.Active, s.State(now))
}

func TestSuppression_ReleaseIsIdempotent(t *testing.T) {
	now := time.Unix(100, 0)
	s := tracker.NewSuppression()

	a := s.Acquire(now, time.Second)
	b := s.Acquire(now, time.Second)
	s.Release(a)
	s.Release(a)

	assert.Equal(t, 1, s.Count(now))
	s.Release(b)
	assert.Equal(t, 0, s.Count(now))
}

func TestSuppression_HoldsExpire(t *testing.T) {
	now := time.Unix(100, 0)
	s := tracker.NewSuppression()

	s.Acquire(now, time.Second)
	s.Acquire(now, 3*time.Second)

	assert.Equal(t, 2, s.Count(now.Add(999*time.Millisecond)))
	assert.Equal(t, 1, s.Count(now.Add(time.Second)))
	assert.Equal(t, tracker.Active, s.State(now.Add(3*time.Second)))
}

func TestSuppression_Extend(t *testing.T) {
	now := time.Unix(100, 0)
	s := tracker.NewSuppression()

	h := s.Acquire(now, time.Second)
	assert.True(t, s.Extend(h, now.Add(500*time.Millisecond), now.Add(2*time.Second)))

	deadline, ok := s.Deadline(now)
	assert.True(t, ok)
	assert.Equal(t, now.Add(2*time.Second), deadline)
	assert.Equal(t, tracker.Suppressed, s.State(now.Add(1500*time.Millisecond)))

	assert.False(t, s.Extend(h, now.Add(2*time.Second), now.Add(3*time.Second)), "expired hold cannot be extended")

	s.Release(h)
	assert.False(t, s.Extend(h, now, now.Add(time.Second)))
}

func TestSuppression_Reset(t *testing.T) {
	now := time.Unix(100, 0)
	s := tracker.NewSuppression()
	s.Acquire(now, time.Hour)
	s.Acquire(now, time.Hour)

	s.Reset()

	_, ok := s.Deadline(now)
	assert.False(t, ok)
	assert.Equal(t, "active", s.State(now).String())
}
