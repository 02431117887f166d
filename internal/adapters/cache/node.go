package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/config"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/logger"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
)

// NodeID is the unique identifier for the install cache adapter node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.InstallCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.InstallCache, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			runCtx, err := graft.Dep[domain.RunContext](ctx)
			if err != nil {
				return nil, err
			}

			return NewGuard(log, runCtx.Configuration()), nil
		},
	})
}
