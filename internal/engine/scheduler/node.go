package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, reporter), nil
		},
	})
}
