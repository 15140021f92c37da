package tracker

import (
	"context"
	"time"

	"go.trai.ch/stay/internal/core/ports"
)

// Restore outcomes recorded on the restore span.
const (
	outcomeApplied     = "applied"
	outcomeSuperseded  = "superseded"
	outcomeNoView      = "no-view"
	outcomeNoPosition  = "no-position"
	outcomeNavigation  = "deliberate-navigation"
	outcomeCancelled   = "cancelled"
	outcomeUnsupported = "unsupported"
)

type restoreJob struct {
	hold Hold
	// gen orders restores of the normal path. Zero marks a startup restore,
	// which is never superseded.
	gen uint64
	// leaf is the slot to restore. Nil resolves the most recent slot when
	// the restore runs.
	leaf ports.Leaf
}

// beginRestoreLocked acquires a suppression hold synchronously and hands the
// remaining steps to a goroutine.
func (t *Tracker) beginRestoreLocked(leaf ports.Leaf, startup bool) {
	if t.closed || t.ctx == nil {
		return
	}
	now := time.Now()
	hold := t.suppression.Acquire(now, t.timings.SuppressionTTL)

	if !startup && !t.layoutReady {
		t.suppression.Release(hold)
		return
	}

	if t.deliberateNavigation(leaf) {
		// The hold expires on its own; the host's scroll to the link target
		// must not be captured as the document's position.
		return
	}

	job := restoreJob{hold: hold, leaf: leaf}
	if !startup {
		t.generation++
		job.gen = t.generation
	}

	ctx := t.ctx
	t.wg.Go(func() {
		t.restore(ctx, job)
	})
}

// deliberateNavigation reports whether the user navigated to a heading or
// block and the restore must not override that scroll.
func (t *Tracker) deliberateNavigation(leaf ports.Leaf) bool {
	if !t.settings.Settings().RespectLinks {
		return false
	}
	if t.LinkUsed() {
		return true
	}
	if leaf == nil {
		leaf, _ = t.host.MostRecentLeaf()
	}
	return leaf != nil && t.host.HighlightVisible(leaf)
}

func (t *Tracker) restore(ctx context.Context, job restoreJob) {
	ctx, span := t.tracer.Start(ctx, "tracker.restore")
	defer span.End()

	span.SetAttribute("startup", job.gen == 0)
	outcome := t.runRestore(ctx, job, span)
	span.SetAttribute("outcome", outcome)
}

func (t *Tracker) runRestore(ctx context.Context, job restoreJob, span ports.Span) string {
	t.mu.Lock()
	if t.supersededLocked(job) {
		t.suppression.Release(job.hold)
		t.mu.Unlock()
		return outcomeSuperseded
	}
	leaf := job.leaf
	if leaf == nil {
		leaf, _ = t.host.MostRecentLeaf()
	}
	key, _, ok := resolve(leaf)
	if !ok {
		t.suppression.Release(job.hold)
		t.mu.Unlock()
		return outcomeNoView
	}
	pos, ok := t.store.Get(key)
	if !ok {
		t.suppression.Release(job.hold)
		t.mu.Unlock()
		return outcomeNoPosition
	}
	t.mu.Unlock()
	span.SetAttribute("key", key.String())

	loaded := WaitUntil(ctx, t.timings.FrameInterval, t.timings.LoadAttempts, func() bool {
		return !leaf.Loading()
	})
	span.SetAttribute("loaded", loaded)

	settings := t.settings.Settings()
	if !sleep(ctx, settings.RestoreDelay) {
		t.release(job.hold)
		return outcomeCancelled
	}

	t.mu.Lock()
	if t.closed {
		t.suppression.Release(job.hold)
		t.mu.Unlock()
		return outcomeCancelled
	}
	if t.supersededLocked(job) {
		t.suppression.Release(job.hold)
		t.mu.Unlock()
		return outcomeSuperseded
	}
	if settings.RespectLinks && t.host.HighlightVisible(leaf) {
		t.mu.Unlock()
		return outcomeNavigation
	}
	current, view, ok := resolve(leaf)
	if !ok || current != key {
		t.suppression.Release(job.hold)
		t.mu.Unlock()
		return outcomeNoView
	}
	if !applyPosition(view, pos, settings.RestoreCursor) {
		t.suppression.Release(job.hold)
		t.mu.Unlock()
		return outcomeUnsupported
	}

	now := time.Now()
	pos.Timestamp = now.UnixMilli()
	t.store.Set(key, pos)

	settle := now.Add(t.timings.SettleDelay)
	if !t.suppression.Extend(job.hold, now, settle) {
		job.hold = t.suppression.Acquire(now, t.timings.SettleDelay)
	}
	t.mu.Unlock()

	sleep(ctx, t.timings.SettleDelay)
	t.release(job.hold)
	return outcomeApplied
}

// supersededLocked reports whether a newer restore of the normal path started.
func (t *Tracker) supersededLocked(job restoreJob) bool {
	return job.gen != 0 && job.gen != t.generation
}

func (t *Tracker) release(h Hold) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.suppression.Release(h)
}
