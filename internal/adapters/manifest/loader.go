// Package manifest loads cask definitions from YAML manifest files.
package manifest

import (
	"os"
	"path/filepath"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.CaskLoader using YAML cask definition files.
type Loader struct {
	taps   ports.TapResolver
	prefix string
}

// NewLoader creates a cask loader. Metadata directories of loaded casks are
// computed against prefix.
func NewLoader(taps ports.TapResolver, prefix string) *Loader {
	return &Loader{taps: taps, prefix: prefix}
}

// Load reads the cask definition at the given path.
func (l *Loader) Load(path string) (ports.Cask, error) {
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		readErr := zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
		return nil, zerr.With(readErr, "path", path)
	}

	var file Caskfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
		return nil, zerr.With(parseErr, "path", path)
	}

	if file.Token == "" {
		return nil, zerr.With(domain.ErrManifestTokenMissing, "path", path)
	}
	if file.Version == "" {
		versionErr := zerr.With(domain.ErrManifestVersionMissing, "token", file.Token)
		return nil, zerr.With(versionErr, "path", path)
	}

	sourcePath, err := filepath.Abs(path)
	if err != nil {
		sourcePath = path
	}

	cask := &Cask{
		token:       file.Token,
		version:     file.Version,
		sourcePath:  sourcePath,
		metadataDir: domain.MetadataPath(l.prefix, file.Token, file.Version),
		fromAPI:     file.FromAPI,
		dependsOn:   dependencyKinds(file.DependsOn),
		artifacts:   file.Artifacts,
	}
	if file.Tap != "" {
		cask.tap = l.taps.Resolve(file.Tap)
	}

	return cask, nil
}

func dependencyKinds(raw map[string][]any) map[domain.DependencyKind][]any {
	if len(raw) == 0 {
		return nil
	}

	kinds := make(map[domain.DependencyKind][]any, len(raw))
	for kind, values := range raw {
		kinds[domain.DependencyKind(kind)] = values
	}
	return kinds
}
