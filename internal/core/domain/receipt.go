package domain

import (
	"strings"
	"time"
)

// Source records where a cask was installed from: the definition file, the
// tap it came from, the tap's revision at install time, and the cask version.
// Empty string fields mean the value was not known at install time.
type Source struct {
	Path       string
	Tap        string
	TapGitHead string
	Version    string
}

// Receipt is the install receipt for one installed cask version. It captures
// what was installed, when, why, and from where, and is persisted next to the
// installed cask as INSTALL_RECEIPT.json.
//
// Path is the location the receipt was loaded from or should be written to.
// It is not part of the persisted document and is empty for receipts that
// were synthesized but never written.
type Receipt struct {
	ToolVersion           string
	LoadedFromAPI         bool
	InstalledAsDependency bool
	InstalledOnRequest    bool
	Time                  *int64
	Dependencies          DependencySnapshot
	Arch                  string
	Source                Source
	BuildEnvironment      map[string]string
	Artifacts             []any
	Path                  string
}

// InstalledAt returns the install timestamp as local time. The second return
// is false when the receipt carries no timestamp.
func (r *Receipt) InstalledAt() (time.Time, bool) {
	if r.Time == nil {
		return time.Time{}, false
	}
	return time.Unix(*r.Time, 0), true
}

// Records returns the structured dependency records for a kind.
func (r *Receipt) Records(kind DependencyKind) []DependencyRecord {
	return r.Dependencies.Records(kind)
}

// Summary renders a one-line human readable description of the install, e.g.
// "Installed using the API on 2024-03-01 at 10:30:00".
func (r *Receipt) Summary() string {
	parts := []string{"Installed"}
	if r.LoadedFromAPI {
		parts = append(parts, "using the API")
	}
	if at, ok := r.InstalledAt(); ok {
		parts = append(parts, at.Format("on 2006-01-02 at 15:04:05"))
	}
	return strings.Join(parts, " ")
}
