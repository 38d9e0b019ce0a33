package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the caskroom watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// FingerprintNodeID is the unique identifier for the fingerprint cache Graft node.
	FingerprintNodeID graft.ID = "adapter.fingerprint"
)

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprintNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewFingerprintCache(), nil
		},
	})
}
