// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/cask/internal/core/domain"

// Cask describes an installable package definition as seen by the receipt
// subsystem. Implementations are backed by a parsed cask definition file.
//
//go:generate mockgen -source=cask.go -destination=mocks/mock_cask.go -package=mocks
type Cask interface {
	// Token returns the cask token, the unique name the cask is installed under.
	Token() string

	// Version returns the cask version.
	Version() string

	// SourcePath returns the path of the definition file the cask was loaded from.
	SourcePath() string

	// MetadataDir returns the metadata directory for this cask version, the
	// directory the install receipt lives in.
	MetadataDir() string

	// LoadedFromAPI reports whether the definition came from the remote index
	// rather than a local tap.
	LoadedFromAPI() bool

	// Tap returns the tap the cask came from, or nil if it has none.
	Tap() Tap

	// DependsOn returns the cask's direct dependency declarations by kind.
	// Resolvable kinds hold identifier strings; all other kinds hold the
	// declaration values verbatim.
	DependsOn() map[domain.DependencyKind][]any

	// Artifacts returns the cask's artifact declarations verbatim.
	Artifacts() []any
}
