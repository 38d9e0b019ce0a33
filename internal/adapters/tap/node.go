package tap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/host"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the unique identifier for the tap resolver Graft node.
const NodeID graft.ID = "adapter.tap"

func init() {
	graft.Register(graft.Node[ports.TapResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{host.NodeID},
		Run: func(ctx context.Context) (ports.TapResolver, error) {
			info, err := graft.Dep[ports.HostInfo](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(info.Prefix()), nil
		},
	})
}
