package ports

import "go.trai.ch/cask/internal/core/domain"

// Locator resolves declared dependency identifiers against the set of
// installed packages.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Locate resolves an identifier of a resolvable kind to the installed
	// package it names. It returns domain.ErrCaskNotFound or
	// domain.ErrFormulaNotFound when nothing matching is installed.
	Locate(kind domain.DependencyKind, id string) (domain.ResolvedDependency, error)
}
