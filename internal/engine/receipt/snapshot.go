package receipt

import (
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
)

// Snapshot resolves declared dependencies into the records persisted in a
// receipt. declared may hold more identifiers than the cask's own direct
// declarations, e.g. transitive runtime dependencies supplied by an
// installer; DeclaredDirectly is computed against the cask's declarations
// only. Sequence order within each kind is preserved. A declaration of a
// resolvable kind that names nothing installed aborts the whole snapshot.
func (f *Factory) Snapshot(cask ports.Cask, declared map[domain.DependencyKind][]any) (domain.DependencySnapshot, error) {
	if len(declared) == 0 {
		return nil, nil
	}

	direct := cask.DependsOn()
	snapshot := make(domain.DependencySnapshot, len(declared))
	for kind, values := range declared {
		entries, err := f.resolveKind(kind, values, directSet(direct[kind]))
		if err != nil {
			return nil, err
		}
		snapshot[kind] = entries
	}
	return snapshot, nil
}

func (f *Factory) resolveKind(
	kind domain.DependencyKind,
	values []any,
	direct map[string]struct{},
) ([]domain.DependencyEntry, error) {
	entries := make([]domain.DependencyEntry, 0, len(values))
	for _, value := range values {
		if !kind.Resolvable() {
			entries = append(entries, domain.RawEntry(value))
			continue
		}

		id, ok := value.(string)
		if !ok {
			return nil, zerr.With(domain.ErrInvalidDependency, "kind", string(kind))
		}

		resolved, err := f.locator.Locate(kind, id)
		if err != nil {
			return nil, err
		}

		record := &domain.DependencyRecord{
			FullName: resolved.FullName,
			Version:  resolved.Version,
		}
		_, record.DeclaredDirectly = direct[id]

		// Formula records always carry packaging metadata, defaulting to
		// revision zero when the locator reports none.
		if kind == domain.KindFormula {
			record.Revision = resolved.Revision
			if record.Revision == nil {
				zero := int64(0)
				record.Revision = &zero
			}
			record.PkgVersion = resolved.PkgVersion
			if record.PkgVersion == "" {
				record.PkgVersion = domain.PkgVersionString(resolved.Version, *record.Revision)
			}
		}

		entries = append(entries, domain.RecordEntry(record))
	}
	return entries, nil
}

func directSet(values []any) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		if id, ok := value.(string); ok {
			set[id] = struct{}{}
		}
	}
	return set
}
