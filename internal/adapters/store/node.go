package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/host"
	"go.trai.ch/cask/internal/build"
	"go.trai.ch/cask/internal/core/ports"
)

const NodeID graft.ID = "adapter.receipt_store"

func init() {
	graft.Register(graft.Node[ports.ReceiptStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{host.NodeID},
		Run: func(ctx context.Context) (ports.ReceiptStore, error) {
			info, err := graft.Dep[ports.HostInfo](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(info, build.Version), nil
		},
	})
}
