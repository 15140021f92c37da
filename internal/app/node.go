package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stay/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/stay/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/stay/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/stay/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/stay/internal/core/ports"
	"go.trai.ch/stay/internal/engine/positions"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups the application with the shared services a host
// integration needs to build a Plugin.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *config.Live
	Store    *positions.Store
	Tracer   ports.Tracer
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			positions.NodeID,
			config.LiveNodeID,
			config.LoaderNodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.LiveNodeID,
			positions.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[*positions.Store](ctx)
	if err != nil {
		return nil, err
	}

	live, err := graft.Dep[*config.Live](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	docs, err := graft.Dep[ports.DocumentWatcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, live, loader, docs, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	live, err := graft.Dep[*config.Live](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[*positions.Store](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Settings: live,
		Store:    store,
		Tracer:   tracer,
	}, nil
}
