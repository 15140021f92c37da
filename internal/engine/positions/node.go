package positions

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stay/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stay/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stay/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stay/internal/core/ports"
)

// NodeID is the unique identifier for the position store Graft node.
const NodeID graft.ID = "engine.positions"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			config.ProviderNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Store, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[ports.SettingsProvider](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewStore(fsys, settings, log), nil
		},
	})
}
