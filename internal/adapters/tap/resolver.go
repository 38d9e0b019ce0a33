package tap

import (
	"strings"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
)

// Resolver maps tap names to clone directories under the installation prefix.
type Resolver struct {
	prefix string
}

// NewResolver creates a tap resolver rooted at prefix.
func NewResolver(prefix string) *Resolver {
	return &Resolver{prefix: prefix}
}

// Resolve returns the tap for a "user/repo" name. Names not in that form
// resolve to nil; a resolved tap is not necessarily installed.
func (r *Resolver) Resolve(name string) ports.Tap {
	user, repo, ok := strings.Cut(name, "/")
	if !ok || user == "" || repo == "" || strings.Contains(repo, "/") {
		return nil
	}
	return &Tap{name: name, path: domain.TapPath(r.prefix, name)}
}
