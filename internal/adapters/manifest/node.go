package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/host"
	"go.trai.ch/cask/internal/adapters/tap"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the unique identifier for the cask loader Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.CaskLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{tap.NodeID, host.NodeID},
		Run: func(ctx context.Context) (ports.CaskLoader, error) {
			taps, err := graft.Dep[ports.TapResolver](ctx)
			if err != nil {
				return nil, err
			}
			info, err := graft.Dep[ports.HostInfo](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(taps, info.Prefix()), nil
		},
	})
}
