package app

import (
	"context"

	"go.trai.ch/stay/internal/core/ports"
	"go.trai.ch/stay/internal/engine/tracker"
)

// Plugin runs position tracking inside a host: it hydrates the store,
// registers the tracker and flushes the store when the host unloads it.
type Plugin struct {
	store   Store
	tracker *tracker.Tracker
}

// NewPlugin creates a Plugin for the given host.
func NewPlugin(
	store Store,
	host ports.Workspace,
	events ports.EventSource,
	settings ports.SettingsProvider,
	tracer ports.Tracer,
	log ports.Logger,
	opts ...tracker.Option,
) *Plugin {
	return &Plugin{
		store:   store,
		tracker: tracker.New(store, host, events, settings, tracer, log, opts...),
	}
}

// Start loads the saved positions and starts tracking.
func (p *Plugin) Start(ctx context.Context) error {
	p.store.Load(ctx)
	return p.tracker.Register(ctx)
}

// Stop stops tracking and writes pending positions. A failed write is logged
// by the store and does not fail the unload; only a done ctx is reported.
func (p *Plugin) Stop(ctx context.Context) error {
	p.tracker.Close()
	if err := p.store.Flush(ctx); err != nil && ctx.Err() != nil {
		return err
	}
	return nil
}

// Tracker returns the underlying tracker, for link navigation hooks.
func (p *Plugin) Tracker() *tracker.Tracker {
	return p.tracker
}

// NewPlugin creates a Plugin sharing the store, settings and tracer of the components.
func (c *Components) NewPlugin(host ports.Workspace, events ports.EventSource, opts ...tracker.Option) *Plugin {
	return NewPlugin(c.Store, host, events, c.Settings, c.Tracer, c.Logger, opts...)
}
