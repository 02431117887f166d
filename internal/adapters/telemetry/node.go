package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	rock "github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/telemetry/progrock"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return rock.New(), nil
		},
	})
}
