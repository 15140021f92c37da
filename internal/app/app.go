// Package app implements the application layer for stay.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
	"go.trai.ch/stay/internal/engine/positions"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Store is the position store as the application drives it.
type Store interface {
	ports.PositionStore
	Load(ctx context.Context)
	Flush(ctx context.Context) error
	Entries() []positions.Entry
	Prune() int
}

// Settings is the live settings value the application may change at runtime.
type Settings interface {
	ports.SettingsProvider
	Update(fn func(*domain.Settings)) domain.Settings
	Replace(s domain.Settings)
}

// App represents the main application logic.
type App struct {
	store    Store
	settings Settings
	loader   ports.SettingsLoader
	watcher  ports.DocumentWatcher
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	store Store,
	settings Settings,
	loader ports.SettingsLoader,
	watcher ports.DocumentWatcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		store:    store,
		settings: settings,
		loader:   loader,
		watcher:  watcher,
		tracer:   tracer,
		logger:   log,
	}
}

// Configure reloads the settings from an explicit file. Unlike the default
// settings file, an explicit one must exist.
func (a *App) Configure(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", path)
	}

	settings, err := a.loader.Load(path)
	if err != nil {
		return err
	}
	a.settings.Replace(settings)
	return nil
}

// Settings returns the settings currently in effect.
func (a *App) Settings() domain.Settings {
	return a.settings.Settings()
}

// List returns every saved position ordered by key.
func (a *App) List(ctx context.Context) []positions.Entry {
	a.store.Load(ctx)
	return a.store.Entries()
}

// Forget deletes every position saved for the document at path.
func (a *App) Forget(ctx context.Context, path string) (int, error) {
	a.store.Load(ctx)

	n := positions.Forget(a.store, path)
	if n == 0 {
		return 0, zerr.With(domain.ErrDocumentNotFound, "path", path)
	}
	return n, a.store.Flush(ctx)
}

// Rename moves every position saved for oldPath to newPath.
func (a *App) Rename(ctx context.Context, oldPath, newPath string) (int, error) {
	a.store.Load(ctx)

	n := positions.Move(a.store, oldPath, newPath)
	if n == 0 && oldPath != newPath {
		return 0, zerr.With(domain.ErrDocumentNotFound, "path", oldPath)
	}
	return n, a.store.Flush(ctx)
}

// Prune evicts the oldest positions beyond the bound. A non-nil limit
// overrides the configured bound for this run.
func (a *App) Prune(ctx context.Context, limit *uint) (int, error) {
	a.store.Load(ctx)

	if limit != nil {
		a.settings.Update(func(s *domain.Settings) {
			s.MaxPositions = *limit
		})
	}

	n := a.store.Prune()
	return n, a.store.Flush(ctx)
}

// Watch follows deletes and renames below root and applies them to the store
// until ctx is cancelled. Pending writes are flushed before it returns.
func (a *App) Watch(ctx context.Context, root string) error {
	a.store.Load(ctx)

	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %s", root))

	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	g.Go(func() error {
		<-gctx.Done()
		return a.watcher.Stop()
	})
	g.Go(func() error {
		defer cancel()
		for ev := range a.watcher.Events() {
			a.apply(gctx, ev)
		}
		return nil
	})

	err := g.Wait()
	if flushErr := a.store.Flush(context.WithoutCancel(ctx)); flushErr != nil && err == nil {
		err = flushErr
	}
	return err
}

func (a *App) apply(ctx context.Context, ev ports.DocumentEvent) {
	_, span := a.tracer.Start(ctx, "app.document."+ev.Op.String(), ports.WithRoot())
	defer span.End()
	span.SetAttribute("path", ev.Path)

	var n int
	switch ev.Op {
	case ports.DocumentDeleted:
		n = positions.Forget(a.store, ev.Path)
		if n > 0 {
			a.logger.Info(fmt.Sprintf("forgot %d position(s) of %s", n, ev.Path))
		}
	case ports.DocumentRenamed:
		span.SetAttribute("old_path", ev.OldPath)
		n = positions.Move(a.store, ev.OldPath, ev.Path)
		if n > 0 {
			a.logger.Info(fmt.Sprintf("moved %d position(s) from %s to %s", n, ev.OldPath, ev.Path))
		}
	}
	span.SetAttribute("positions", n)
}
