// Package caskroom resolves dependency declarations against the local
// installation tree and enumerates what is installed.
package caskroom

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/zerr"
)

// Room is a view over the caskroom and cellar directories under one
// installation prefix. It implements ports.Locator and ports.Caskroom.
type Room struct {
	prefix string
}

// New creates a caskroom view rooted at the given installation prefix.
func New(prefix string) *Room {
	return &Room{prefix: prefix}
}

// Locate resolves a declared dependency identifier to the newest installed
// version of the package it names.
func (r *Room) Locate(kind domain.DependencyKind, id string) (domain.ResolvedDependency, error) {
	switch kind {
	case domain.KindCask:
		return r.locateCask(id)
	case domain.KindFormula:
		return r.locateFormula(id)
	default:
		return domain.ResolvedDependency{}, zerr.With(domain.ErrInvalidDependency, "kind", string(kind))
	}
}

func (r *Room) locateCask(id string) (domain.ResolvedDependency, error) {
	versions, err := installedVersions(domain.RackPath(r.prefix, nameOf(id)), domain.ErrCaskroomReadFailed)
	if err != nil {
		return domain.ResolvedDependency{}, err
	}
	if len(versions) == 0 {
		return domain.ResolvedDependency{}, zerr.With(domain.ErrCaskNotFound, "token", id)
	}

	return domain.ResolvedDependency{
		FullName: id,
		Version:  versions[len(versions)-1],
	}, nil
}

func (r *Room) locateFormula(id string) (domain.ResolvedDependency, error) {
	rack := filepath.Join(domain.CellarPath(r.prefix), nameOf(id))
	versions, err := installedVersions(rack, domain.ErrCellarReadFailed)
	if err != nil {
		return domain.ResolvedDependency{}, err
	}
	if len(versions) == 0 {
		return domain.ResolvedDependency{}, zerr.With(domain.ErrFormulaNotFound, "name", id)
	}

	// Cellar directories are named after the full package version, e.g.
	// "2.0_1" for version 2.0 at revision 1.
	pkgVersion := versions[len(versions)-1]
	version, revision := splitRevision(pkgVersion)
	return domain.ResolvedDependency{
		FullName:   id,
		Version:    version,
		Revision:   &revision,
		PkgVersion: pkgVersion,
	}, nil
}

// Root returns the caskroom directory.
func (r *Room) Root() string {
	return domain.CaskroomPath(r.prefix)
}

// Tokens lists the cask tokens with at least one installed version.
func (r *Room) Tokens() ([]string, error) {
	entries, err := os.ReadDir(domain.CaskroomPath(r.prefix))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCaskroomReadFailed.Error())
	}

	tokens := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		versions, err := r.Versions(entry.Name())
		if err != nil || len(versions) == 0 {
			continue
		}
		tokens = append(tokens, entry.Name())
	}
	slices.Sort(tokens)
	return tokens, nil
}

// Versions lists the installed versions of a cask, oldest first.
func (r *Room) Versions(token string) ([]string, error) {
	versions, err := installedVersions(domain.RackPath(r.prefix, token), domain.ErrCaskroomReadFailed)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, zerr.With(domain.ErrNoVersionsInstalled, "token", token)
	}
	return versions, nil
}

// ReceiptPath returns the canonical receipt path for one installed version.
func (r *Room) ReceiptPath(token, version string) string {
	return domain.ReceiptPath(r.prefix, token, version)
}

// installedVersions lists the version directories under dir, oldest first.
// A missing dir means nothing is installed there.
func installedVersions(dir string, sentinel error) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.Wrap(err, sentinel.Error())
	}

	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		versions = append(versions, entry.Name())
	}
	slices.SortFunc(versions, comparePkgVersions)
	return versions, nil
}

// comparePkgVersions orders package version strings semantically when
// possible, splitting off the "_<revision>" suffix so that "2.0_10" sorts
// after "2.0_2".
func comparePkgVersions(a, b string) int {
	av, ar := splitRevision(a)
	bv, br := splitRevision(b)
	if c := compareVersions(av, bv); c != 0 {
		return c
	}
	return cmp.Compare(ar, br)
}

func compareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return va.Compare(vb)
}

// splitRevision splits a package version like "2.0_1" into its version and
// revision parts. Versions without a numeric "_" suffix have revision zero.
func splitRevision(pkgVersion string) (string, int64) {
	i := strings.LastIndex(pkgVersion, "_")
	if i < 0 {
		return pkgVersion, 0
	}
	revision, err := strconv.ParseInt(pkgVersion[i+1:], 10, 64)
	if err != nil || revision < 0 {
		return pkgVersion, 0
	}
	return pkgVersion[:i], revision
}

// nameOf strips any tap qualifier from a full name, e.g. "acme/tap/bar"
// names the cellar entry "bar".
func nameOf(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
