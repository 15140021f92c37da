package tracker

import "context"

// BeforeNavigate marks the start of a link navigation. Restores triggered
// while a navigation is in progress are skipped when links are respected.
func (t *Tracker) BeforeNavigate() {
	t.navigating.Add(1)
}

// AfterNavigate marks the end of a link navigation started with BeforeNavigate.
func (t *Tracker) AfterNavigate() {
	for {
		n := t.navigating.Load()
		if n <= 0 || t.navigating.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// LinkUsed reports whether a link navigation is in progress.
func (t *Tracker) LinkUsed() bool {
	return t.navigating.Load() > 0
}

// Navigate runs open as a link navigation. The navigation ends when open
// returns, including on error or panic.
func (t *Tracker) Navigate(ctx context.Context, open func(context.Context) error) error {
	t.BeforeNavigate()
	defer t.AfterNavigate()
	return open(ctx)
}
