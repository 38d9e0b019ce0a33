package receipt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/caskroom" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cask/internal/adapters/host"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cask/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cask/internal/adapters/store"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cask/internal/build"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the unique identifier for the receipt factory Graft node.
const NodeID graft.ID = "engine.receipt_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			host.NodeID,
			caskroom.LocatorNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			receipts, err := graft.Dep[ports.ReceiptStore](ctx)
			if err != nil {
				return nil, err
			}

			info, err := graft.Dep[ports.HostInfo](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(receipts, info, locator, log, build.Version), nil
		},
	})
}
