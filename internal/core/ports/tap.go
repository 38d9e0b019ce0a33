package ports

import "context"

// Tap describes a source repository casks are loaded from.
//
//go:generate mockgen -source=tap.go -destination=mocks/mock_tap.go -package=mocks
type Tap interface {
	// Name returns the tap name, e.g. "acme/tap".
	Name() string

	// Installed reports whether the tap is present on disk.
	Installed() bool

	// GitHead returns the tap's current git revision.
	GitHead(ctx context.Context) (string, error)
}

// TapResolver looks up taps by name.
type TapResolver interface {
	// Resolve returns the tap with the given name, or nil if no such tap
	// is known.
	Resolve(name string) Tap
}
