package tracker

import (
	"context"
	"time"
)

// WaitUntil polls ready up to attempts times, interval apart, and reports
// whether it returned true. It never waits longer than attempts*interval and
// returns false early when ctx is done.
func WaitUntil(ctx context.Context, interval time.Duration, attempts int, ready func() bool) bool {
	if ready() {
		return true
	}

	ticker := time.NewTicker(max(interval, time.Millisecond))
	defer ticker.Stop()

	for range attempts {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
		if ready() {
			return true
		}
	}
	return false
}

// sleep waits for d or until ctx is done. It reports whether the full duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
