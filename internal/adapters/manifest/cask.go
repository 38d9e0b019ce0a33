package manifest

import (
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
)

// Cask is a cask definition loaded from a manifest file.
type Cask struct {
	token       string
	version     string
	sourcePath  string
	metadataDir string
	fromAPI     bool
	tap         ports.Tap
	dependsOn   map[domain.DependencyKind][]any
	artifacts   []any
}

// Token returns the cask token.
func (c *Cask) Token() string {
	return c.token
}

// Version returns the cask version.
func (c *Cask) Version() string {
	return c.version
}

// SourcePath returns the path of the definition file the cask was loaded from.
func (c *Cask) SourcePath() string {
	return c.sourcePath
}

// MetadataDir returns the metadata directory for this cask version.
func (c *Cask) MetadataDir() string {
	return c.metadataDir
}

// LoadedFromAPI reports whether the definition came from the remote index.
func (c *Cask) LoadedFromAPI() bool {
	return c.fromAPI
}

// Tap returns the tap the cask came from, or nil if it has none.
func (c *Cask) Tap() ports.Tap {
	return c.tap
}

// DependsOn returns the cask's direct dependency declarations by kind.
func (c *Cask) DependsOn() map[domain.DependencyKind][]any {
	return c.dependsOn
}

// Artifacts returns the cask's artifact declarations verbatim.
func (c *Cask) Artifacts() []any {
	return c.artifacts
}
