package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/core/ports"
)

const NodeID graft.ID = "adapter.host_info"

func init() {
	graft.Register(graft.Node[ports.HostInfo]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.HostInfo, error) {
			return New(), nil
		},
	})
}
