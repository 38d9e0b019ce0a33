package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/caskroom"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cask/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cask/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cask/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/cask/internal/adapters/tap"       //nolint:depguard // Wired in app layer
	"go.trai.ch/cask/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cask/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/cask/internal/engine/receipt"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			manifest.NodeID,
			receipt.NodeID,
			caskroom.RoomNodeID,
			tap.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			watcher.WatcherNodeID,
			watcher.FingerprintNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	receipts, err := graft.Dep[ports.ReceiptStore](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.CaskLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[*receipt.Factory](ctx)
	if err != nil {
		return nil, err
	}

	room, err := graft.Dep[ports.Caskroom](ctx)
	if err != nil {
		return nil, err
	}

	taps, err := graft.Dep[ports.TapResolver](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	fingerprints, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	return New(receipts, loader, factory, room, taps, log, tracer, watch, fingerprints), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
