package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/config"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
)

// NodeID is the unique identifier for the tool resolver adapter node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			runCtx, err := graft.Dep[domain.RunContext](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(runCtx.Platform, runCtx.PreferHint, runCtx.Tools.Map()), nil
		},
	})
}
