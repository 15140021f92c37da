package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stay/internal/adapters/logger"
	"go.trai.ch/stay/internal/core/ports"
)

// NodeID is the unique identifier for the document watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.DocumentWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DocumentWatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log), nil
		},
	})
}
