// Package receipt implements install receipt construction.
package receipt

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
)

// Factory builds install receipts for casks. Receipts it returns are detached
// from any file until a store write persists them.
type Factory struct {
	store   ports.ReceiptStore
	host    ports.HostInfo
	locator ports.Locator
	logger  ports.Logger

	toolVersion string
	now         func() time.Time
}

// NewFactory creates a receipt factory. toolVersion is stamped into every
// receipt the factory builds.
func NewFactory(
	store ports.ReceiptStore,
	host ports.HostInfo,
	locator ports.Locator,
	log ports.Logger,
	toolVersion string,
) *Factory {
	return &Factory{
		store:       store,
		host:        host,
		locator:     locator,
		logger:      log,
		toolVersion: toolVersion,
		now:         time.Now,
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func (f *Factory) WithClock(now func() time.Time) *Factory {
	f.now = now
	return f
}

// Create builds the receipt recorded at install time: the dependency
// snapshot resolved against the installed packages, the install timestamp,
// host details, and the cask's source coordinates. The install-reason flags
// start out false; the installer sets them before writing.
func (f *Factory) Create(ctx context.Context, cask ports.Cask) (*domain.Receipt, error) {
	snapshot, err := f.Snapshot(cask, cask.DependsOn())
	if err != nil {
		return nil, err
	}

	src := sourceOf(cask)
	src.TapGitHead = f.tapHead(ctx, cask.Tap())

	ts := f.now().Unix()
	return &domain.Receipt{
		ToolVersion:      f.toolVersion,
		LoadedFromAPI:    cask.LoadedFromAPI(),
		Time:             &ts,
		Dependencies:     snapshot,
		Arch:             f.host.Arch(),
		Source:           src,
		BuildEnvironment: f.host.BuildEnvironment(),
		Artifacts:        artifactsOf(cask),
		Path:             ReceiptPath(cask),
	}, nil
}

// Empty returns a receipt carrying no install information beyond the generic
// build environment.
func (f *Factory) Empty() *domain.Receipt {
	return &domain.Receipt{
		ToolVersion:      f.toolVersion,
		BuildEnvironment: f.host.GenericBuildEnvironment(),
		Artifacts:        []any{},
	}
}

// ForCask returns the installed cask's receipt when one exists on disk.
// Otherwise it synthesizes an empty receipt with the cask's source and
// artifact declarations filled in, so callers always have something to
// inspect. The synthesized receipt carries no path and no tap revision.
func (f *Factory) ForCask(cask ports.Cask) (*domain.Receipt, error) {
	path := ReceiptPath(cask)
	if f.store.Exists(path) {
		return f.store.Load(path)
	}

	receipt := f.Empty()
	receipt.Source = sourceOf(cask)
	receipt.Artifacts = artifactsOf(cask)
	return receipt, nil
}

// ReceiptPath returns the canonical receipt location for a cask.
func ReceiptPath(cask ports.Cask) string {
	return filepath.Join(cask.MetadataDir(), domain.ReceiptFileName)
}

// TapOf resolves the tap a receipt records as its source. It returns nil when
// the receipt names no tap or the tap is not known.
func TapOf(receipt *domain.Receipt, taps ports.TapResolver) ports.Tap {
	if receipt.Source.Tap == "" {
		return nil
	}
	return taps.Resolve(receipt.Source.Tap)
}

func sourceOf(cask ports.Cask) domain.Source {
	src := domain.Source{
		Path:    cask.SourcePath(),
		Version: cask.Version(),
	}
	if tap := cask.Tap(); tap != nil {
		src.Tap = tap.Name()
	}
	return src
}

// tapHead resolves the tap revision best-effort. A missing or unreadable tap
// yields an empty head rather than an error.
func (f *Factory) tapHead(ctx context.Context, tap ports.Tap) string {
	if tap == nil || !tap.Installed() {
		return ""
	}

	head, err := tap.GitHead(ctx)
	if err != nil {
		f.logger.Warn("could not read tap revision for " + tap.Name())
		return ""
	}
	return head
}

func artifactsOf(cask ports.Cask) []any {
	artifacts := slices.Clone(cask.Artifacts())
	if artifacts == nil {
		artifacts = []any{}
	}
	return artifacts
}
