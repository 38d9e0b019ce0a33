package store

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/cask/internal/core/domain"
)

// receiptJSON is the persisted form of an install receipt. Field order is the
// on-disk key order, so it must not be rearranged.
type receiptJSON struct {
	ToolVersion           string            `json:"homebrew_version"`
	LoadedFromAPI         bool              `json:"loaded_from_api"`
	InstalledAsDependency bool              `json:"installed_as_dependency"`
	InstalledOnRequest    bool              `json:"installed_on_request"`
	Time                  *int64            `json:"time"`
	Dependencies          *snapshotJSON     `json:"dependencies"`
	Arch                  *string           `json:"arch"`
	Source                sourceJSON        `json:"source"`
	BuildEnvironment      map[string]string `json:"installed_on"`
	Artifacts             []any             `json:"artifacts"`
}

type sourceJSON struct {
	Path       *string `json:"path"`
	Tap        *string `json:"tap"`
	TapGitHead *string `json:"tap_git_head"`
	Version    *string `json:"version"`
}

type recordJSON struct {
	FullName         string `json:"full_name"`
	Version          string `json:"version"`
	Revision         *int64 `json:"revision,omitempty"`
	PkgVersion       string `json:"pkg_version,omitempty"`
	DeclaredDirectly bool   `json:"declared_directly"`
}

// snapshotJSON carries the dependency snapshot across the JSON boundary.
// Entries of resolvable kinds are structured records; entries of every other
// kind round-trip as raw values.
type snapshotJSON struct {
	snapshot domain.DependencySnapshot
}

func (s snapshotJSON) MarshalJSON() ([]byte, error) {
	kinds := make(map[string][]any, len(s.snapshot))
	for kind, entries := range s.snapshot {
		values := make([]any, 0, len(entries))
		for _, entry := range entries {
			if entry.Record != nil {
				values = append(values, recordFromDomain(entry.Record))
				continue
			}
			values = append(values, entry.Raw)
		}
		kinds[string(kind)] = values
	}
	return json.Marshal(kinds)
}

func (s *snapshotJSON) UnmarshalJSON(data []byte) error {
	var kinds map[string][]json.RawMessage
	if err := json.Unmarshal(data, &kinds); err != nil {
		return err
	}

	snapshot := make(domain.DependencySnapshot, len(kinds))
	for name, rawEntries := range kinds {
		kind := domain.DependencyKind(name)
		entries := make([]domain.DependencyEntry, 0, len(rawEntries))
		for _, raw := range rawEntries {
			if kind.Resolvable() {
				var rec recordJSON
				if err := json.Unmarshal(raw, &rec); err != nil {
					return err
				}
				entries = append(entries, domain.RecordEntry(recordToDomain(rec)))
				continue
			}

			value, err := decodeRaw(raw)
			if err != nil {
				return err
			}
			entries = append(entries, domain.RawEntry(value))
		}
		snapshot[kind] = entries
	}

	s.snapshot = snapshot
	return nil
}

// decodeRaw parses an arbitrary JSON value with number fidelity preserved, so
// re-encoding does not reformat numeric literals.
func decodeRaw(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

func recordFromDomain(rec *domain.DependencyRecord) recordJSON {
	return recordJSON{
		FullName:         rec.FullName,
		Version:          rec.Version,
		Revision:         rec.Revision,
		PkgVersion:       rec.PkgVersion,
		DeclaredDirectly: rec.DeclaredDirectly,
	}
}

func recordToDomain(rec recordJSON) *domain.DependencyRecord {
	return &domain.DependencyRecord{
		FullName:         rec.FullName,
		Version:          rec.Version,
		Revision:         rec.Revision,
		PkgVersion:       rec.PkgVersion,
		DeclaredDirectly: rec.DeclaredDirectly,
	}
}

func toWire(r *domain.Receipt) receiptJSON {
	w := receiptJSON{
		ToolVersion:           r.ToolVersion,
		LoadedFromAPI:         r.LoadedFromAPI,
		InstalledAsDependency: r.InstalledAsDependency,
		InstalledOnRequest:    r.InstalledOnRequest,
		Time:                  r.Time,
		Arch:                  optString(r.Arch),
		Source: sourceJSON{
			Path:       optString(r.Source.Path),
			Tap:        optString(r.Source.Tap),
			TapGitHead: optString(r.Source.TapGitHead),
			Version:    optString(r.Source.Version),
		},
		BuildEnvironment: r.BuildEnvironment,
		Artifacts:        r.Artifacts,
	}
	if r.Dependencies != nil {
		w.Dependencies = &snapshotJSON{snapshot: r.Dependencies}
	}
	return w
}

func fromWire(w receiptJSON, path string) *domain.Receipt {
	r := &domain.Receipt{
		ToolVersion:           w.ToolVersion,
		LoadedFromAPI:         w.LoadedFromAPI,
		InstalledAsDependency: w.InstalledAsDependency,
		InstalledOnRequest:    w.InstalledOnRequest,
		Time:                  w.Time,
		Arch:                  strValue(w.Arch),
		Source: domain.Source{
			Path:       strValue(w.Source.Path),
			Tap:        strValue(w.Source.Tap),
			TapGitHead: strValue(w.Source.TapGitHead),
			Version:    strValue(w.Source.Version),
		},
		BuildEnvironment: w.BuildEnvironment,
		Artifacts:        w.Artifacts,
		Path:             path,
	}
	if w.Dependencies != nil {
		r.Dependencies = w.Dependencies.snapshot
	}
	return r
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
