package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stay/internal/adapters/logger"
	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the settings loader Graft node.
	LoaderNodeID graft.ID = "adapter.config.loader"
	// LiveNodeID is the unique identifier for the live settings Graft node.
	LiveNodeID graft.ID = "adapter.config.live"
	// ProviderNodeID is the unique identifier for the settings provider Graft node.
	ProviderNodeID graft.ID = "adapter.config.provider"
)

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*Live]{
		ID:        LiveNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (*Live, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := loader.Load(domain.SettingsFileName)
			if err != nil {
				return nil, err
			}
			return NewLive(settings), nil
		},
	})

	graft.Register(graft.Node[ports.SettingsProvider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LiveNodeID},
		Run: func(ctx context.Context) (ports.SettingsProvider, error) {
			live, err := graft.Dep[*Live](ctx)
			if err != nil {
				return nil, err
			}
			return live, nil
		},
	})
}
