package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/logger"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			Setup(log)

			return NewOTelTracer("cask"), nil
		},
	})
}
