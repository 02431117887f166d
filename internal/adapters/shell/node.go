package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/config"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/logger"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
)

// NodeID is the unique identifier for the process runner adapter node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.ProcessRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			runCtx, err := graft.Dep[domain.RunContext](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(log, runCtx.Platform), nil
		},
	})
}
