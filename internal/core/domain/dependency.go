package domain

import "strconv"

// DependencyKind identifies a class of dependency a cask can declare, such as
// other casks, formulae, or host requirements.
type DependencyKind string

const (
	// KindCask is the dependency kind for other casks.
	KindCask DependencyKind = "cask"

	// KindFormula is the dependency kind for formulae.
	KindFormula DependencyKind = "formula"

	// KindMacOS is the dependency kind for host OS version requirements.
	KindMacOS DependencyKind = "macos"

	// KindArch is the dependency kind for host architecture requirements.
	KindArch DependencyKind = "arch"
)

// Resolvable reports whether declarations of this kind name installed packages
// that are looked up and recorded as structured records. All other kinds are
// copied into the snapshot verbatim.
func (k DependencyKind) Resolvable() bool {
	return k == KindCask || k == KindFormula
}

// DependencyRecord is the persisted form of one resolved dependency.
// Revision and PkgVersion are populated only for formula dependencies.
type DependencyRecord struct {
	FullName         string
	Version          string
	Revision         *int64
	PkgVersion       string
	DeclaredDirectly bool
}

// DependencyEntry is one element of a dependency snapshot sequence. Exactly
// one of Record or Raw is set: Record for resolvable kinds, Raw for verbatim
// declarations of every other kind.
type DependencyEntry struct {
	Record *DependencyRecord
	Raw    any
}

// RecordEntry returns a DependencyEntry wrapping a resolved record.
func RecordEntry(rec *DependencyRecord) DependencyEntry {
	return DependencyEntry{Record: rec}
}

// RawEntry returns a DependencyEntry carrying a verbatim declaration.
func RawEntry(v any) DependencyEntry {
	return DependencyEntry{Raw: v}
}

// DependencySnapshot maps each dependency kind to its recorded entries, in
// declaration order. A nil snapshot means no dependencies were recorded.
type DependencySnapshot map[DependencyKind][]DependencyEntry

// Records returns the structured records for a kind, skipping raw entries.
func (s DependencySnapshot) Records(kind DependencyKind) []DependencyRecord {
	entries, ok := s[kind]
	if !ok {
		return nil
	}
	records := make([]DependencyRecord, 0, len(entries))
	for _, e := range entries {
		if e.Record != nil {
			records = append(records, *e.Record)
		}
	}
	return records
}

// ResolvedDependency is the result of locating one declared dependency on the
// host. Revision and PkgVersion carry formula packaging metadata and are left
// unset for casks.
type ResolvedDependency struct {
	FullName   string
	Version    string
	Revision   *int64
	PkgVersion string
}

// PkgVersionString formats a formula version together with its package
// revision, e.g. "2.0" with revision 1 becomes "2.0_1". A zero revision
// leaves the version unchanged.
func PkgVersionString(version string, revision int64) string {
	if revision <= 0 {
		return version
	}
	return version + "_" + strconv.FormatInt(revision, 10)
}
