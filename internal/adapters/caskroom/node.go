package caskroom

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/host"
	"go.trai.ch/cask/internal/core/ports"
)

const (
	// LocatorNodeID is the unique identifier for the dependency locator Graft node.
	LocatorNodeID graft.ID = "adapter.locator"

	// RoomNodeID is the unique identifier for the caskroom view Graft node.
	RoomNodeID graft.ID = "adapter.caskroom"
)

func init() {
	// Locator Node
	graft.Register(graft.Node[ports.Locator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{host.NodeID},
		Run: func(ctx context.Context) (ports.Locator, error) {
			info, err := graft.Dep[ports.HostInfo](ctx)
			if err != nil {
				return nil, err
			}
			return New(info.Prefix()), nil
		},
	})

	// Caskroom Node
	graft.Register(graft.Node[ports.Caskroom]{
		ID:        RoomNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{host.NodeID},
		Run: func(ctx context.Context) (ports.Caskroom, error) {
			info, err := graft.Dep[ports.HostInfo](ctx)
			if err != nil {
				return nil, err
			}
			return New(info.Prefix()), nil
		},
	})
}
