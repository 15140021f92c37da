// Package debounce coalesces bursts of calls into a single deferred invocation.
package debounce

import (
	"sync"
	"time"
)

// Debouncer defers a callback until a quiet window elapsed after Trigger.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	gen      uint64
	pending  bool
	stopped  bool
	restart  bool
	window   time.Duration
	callback func()
}

// New creates a trailing-edge debouncer: every Trigger restarts the window,
// so a burst of triggers runs the callback once, after the last one.
func New(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
		restart:  true,
	}
}

// NewFixed creates a coalescer whose window starts at the first Trigger.
// Triggers arriving while a call is pending join it without moving the deadline.
func NewFixed(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Trigger schedules the callback.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.pending && !d.restart {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = true
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

// fire is called when the window of generation gen expires.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()

	// A newer Trigger, Cancel or Flush superseded this timer.
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}

	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback()
	}
}

// Flush runs a pending callback immediately and synchronously.
// It reports whether a callback was pending.
func (d *Debouncer) Flush() bool {
	if !d.Cancel() {
		return false
	}
	if d.callback != nil {
		d.callback()
	}
	return true
}

// Cancel drops a pending callback without running it.
// It reports whether a callback was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

func (d *Debouncer) cancelLocked() bool {
	if !d.pending {
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = false
	return true
}

// Pending reports whether a callback is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Stop cancels a pending callback and ignores all later triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	d.stopped = true
}
