package tracker

import "time"

// SuppressionState is the capture gate derived from the active holds.
type SuppressionState uint8

const (
	// Active means captures may run.
	Active SuppressionState = iota
	// Suppressed means at least one unexpired hold exists.
	Suppressed
)

// String returns the name of the state.
func (s SuppressionState) String() string {
	if s == Suppressed {
		return "suppressed"
	}
	return "active"
}

// Hold identifies one acquisition of a Suppression.
type Hold uint64

// Suppression counts nested capture suppressions. Every hold carries a hard
// expiry deadline, so a restore that never completes cannot disable captures
// for longer than its deadline. It does not use timers: callers pass the
// current time, and expired holds are treated as released.
//
// Suppression is not safe for concurrent use.
type Suppression struct {
	next  Hold
	holds map[Hold]time.Time
}

// NewSuppression returns a Suppression in the Active state.
func NewSuppression() *Suppression {
	return &Suppression{holds: make(map[Hold]time.Time)}
}

// Acquire adds a hold that expires at now+ttl.
func (s *Suppression) Acquire(now time.Time, ttl time.Duration) Hold {
	s.prune(now)
	s.next++
	s.holds[s.next] = now.Add(ttl)
	return s.next
}

// Extend moves the deadline of a live hold. It reports false when the hold
// was already released or expired.
func (s *Suppression) Extend(h Hold, now, deadline time.Time) bool {
	s.prune(now)
	if _, ok := s.holds[h]; !ok {
		return false
	}
	s.holds[h] = deadline
	return true
}

// Release drops a hold. Releasing twice, or after expiry, is a no-op.
func (s *Suppression) Release(h Hold) {
	delete(s.holds, h)
}

// Count returns the nesting depth at now.
func (s *Suppression) Count(now time.Time) int {
	s.prune(now)
	return len(s.holds)
}

// State returns the gate state at now.
func (s *Suppression) State(now time.Time) SuppressionState {
	if s.Count(now) > 0 {
		return Suppressed
	}
	return Active
}

// Deadline returns the latest expiry among live holds.
func (s *Suppression) Deadline(now time.Time) (time.Time, bool) {
	s.prune(now)
	var latest time.Time
	for _, d := range s.holds {
		if d.After(latest) {
			latest = d
		}
	}
	return latest, len(s.holds) > 0
}

// Reset releases every hold.
func (s *Suppression) Reset() {
	clear(s.holds)
}

func (s *Suppression) prune(now time.Time) {
	for h, d := range s.holds {
		if !now.Before(d) {
			delete(s.holds, h)
		}
	}
}
