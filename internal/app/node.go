package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/engine/scheduler"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scheduler.NodeID,
			shell.NodeID,
			toolchain.NodeID,
			cache.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			runCtx, err := graft.Dep[domain.RunContext](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[*toolchain.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			installCache, err := graft.Dep[ports.InstallCache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			return New(runCtx, sched, runner, resolver, resolver, installCache, log, reporter), nil
		},
	})
}
