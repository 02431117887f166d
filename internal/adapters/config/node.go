package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
)

// NodeID is the unique identifier for the config adapter node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[domain.RunContext]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.RunContext, error) {
			return Load(DefaultFilename, domain.CurrentPlatform())
		},
	})
}
