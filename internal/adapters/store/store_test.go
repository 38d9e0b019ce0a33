package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cask/internal/adapters/store"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	ctrl := gomock.NewController(t)
	host := mocks.NewMockHostInfo(ctrl)
	host.EXPECT().GenericBuildEnvironment().Return(map[string]string{
		"os":         "Macintosh",
		"os_version": "",
		"cpu_family": "arm64",
	}).AnyTimes()

	return store.NewStore(host, "4.1.0")
}

// fullReceipt builds a receipt exercising every persisted field: structured
// records for both resolvable kinds, a verbatim host requirement, and nested
// artifact declarations.
func fullReceipt(path string) *domain.Receipt {
	ts := int64(1709285400)
	revision := int64(0)

	return &domain.Receipt{
		ToolVersion:        "4.1.0",
		LoadedFromAPI:      true,
		InstalledOnRequest: true,
		Time:               &ts,
		Dependencies: domain.DependencySnapshot{
			domain.KindCask: {
				domain.RecordEntry(&domain.DependencyRecord{
					FullName:         "helper",
					Version:          "0.9.1",
					DeclaredDirectly: true,
				}),
			},
			domain.KindFormula: {
				domain.RecordEntry(&domain.DependencyRecord{
					FullName:         "bar",
					Version:          "2.0",
					Revision:         &revision,
					PkgVersion:       "2.0",
					DeclaredDirectly: true,
				}),
			},
			domain.KindMacOS: {
				domain.RawEntry(">= 12"),
			},
		},
		Arch: "arm64",
		Source: domain.Source{
			Path:       "/opt/pkg/taps/acme/Casks/pkgfoo.yaml",
			Tap:        "acme/tap",
			TapGitHead: "0123456789abcdef0123456789abcdef01234567",
			Version:    "1.2.0",
		},
		BuildEnvironment: map[string]string{
			"os":         "Macintosh",
			"os_version": "macOS 14",
			"cpu_family": "arm64",
		},
		Artifacts: []any{
			map[string]any{"app": []any{"PkgFoo.app"}},
			map[string]any{"binary": []any{"bin/pkgfoo", "docs & extras"}},
		},
		Path: path,
	}
}

func TestStore_WriteThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ReceiptFileName)
	receipt := fullReceipt(path)

	require.NoError(t, newTestStore(t).Write(receipt))

	// A fresh store has a cold cache, so this parses the file from disk.
	loaded, err := newTestStore(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, receipt.ToolVersion, loaded.ToolVersion)
	assert.Equal(t, receipt.LoadedFromAPI, loaded.LoadedFromAPI)
	assert.Equal(t, receipt.InstalledAsDependency, loaded.InstalledAsDependency)
	assert.Equal(t, receipt.InstalledOnRequest, loaded.InstalledOnRequest)
	assert.Equal(t, receipt.Time, loaded.Time)
	assert.Equal(t, receipt.Dependencies, loaded.Dependencies)
	assert.Equal(t, receipt.Arch, loaded.Arch)
	assert.Equal(t, receipt.Source, loaded.Source)
	assert.Equal(t, receipt.BuildEnvironment, loaded.BuildEnvironment)
	assert.Equal(t, path, loaded.Path)
}

func TestStore_LoadCachesEntity(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ReceiptFileName)
	s := newTestStore(t)
	require.NoError(t, s.Write(fullReceipt(path)))

	first, err := s.Load(path)
	require.NoError(t, err)
	second, err := s.Load(path)
	require.NoError(t, err)

	assert.Same(t, first, second, "repeated loads must return the same entity")
}

func TestStore_LoadBlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ReceiptFileName)
	require.NoError(t, os.WriteFile(path, []byte("  \n\t"), 0o644))

	s := newTestStore(t)
	receipt, err := s.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "4.1.0", receipt.ToolVersion)
	assert.Nil(t, receipt.Time)
	assert.Nil(t, receipt.Dependencies)
	assert.Empty(t, receipt.Arch)
	assert.NotNil(t, receipt.Artifacts)
	assert.Empty(t, receipt.Artifacts)
	assert.Equal(t, "", receipt.BuildEnvironment["os_version"])
	assert.Empty(t, receipt.Path, "synthesized receipts carry no path")

	t.Run("not cached", func(t *testing.T) {
		again, loadErr := s.Load(path)
		require.NoError(t, loadErr)
		assert.NotSame(t, receipt, again)

		// A write that replaces the blank file is visible to the next load.
		require.NoError(t, s.Write(fullReceipt(path)))
		replaced, loadErr := s.Load(path)
		require.NoError(t, loadErr)
		assert.Equal(t, "1.2.0", replaced.Source.Version)
	})
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ReceiptFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := newTestStore(t).Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse install receipt")
}

func TestStore_LoadMissing(t *testing.T) {
	_, err := newTestStore(t).Load(filepath.Join(t.TempDir(), domain.ReceiptFileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read install receipt")
}

func TestStore_Exists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ReceiptFileName)
	s := newTestStore(t)

	assert.False(t, s.Exists(path))
	assert.False(t, s.Exists(dir), "directories do not count as receipts")

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	assert.True(t, s.Exists(path))
}

func TestStore_LoadRawBypassesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ReceiptFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"homebrew_version":"1.0.0"}`), 0o644))

	s := newTestStore(t)
	raw, err := s.LoadRaw(path, []byte(`{"homebrew_version":"9.9.9"}`))
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", raw.ToolVersion)

	// The raw parse neither consulted nor populated the cache.
	loaded, err := s.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", loaded.ToolVersion)
}

func TestStore_LoadRawBlank(t *testing.T) {
	s := newTestStore(t)

	first, err := s.LoadRaw("unused", nil)
	require.NoError(t, err)
	second, err := s.LoadRaw("unused", []byte("   "))
	require.NoError(t, err)

	assert.Equal(t, "4.1.0", first.ToolVersion)
	assert.NotSame(t, first, second)
}

func TestStore_LoadRawMalformed(t *testing.T) {
	_, err := newTestStore(t).LoadRaw("receipt.json", []byte("[oops"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse install receipt")
}

func TestStore_WriteRefreshesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ReceiptFileName)
	s := newTestStore(t)

	receipt := fullReceipt(path)
	require.NoError(t, s.Write(receipt))

	loaded, err := s.Load(path)
	require.NoError(t, err)
	assert.Same(t, receipt, loaded, "a load after a write must observe the written entity")
}

func TestStore_WriteReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ReceiptFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"homebrew_version":"0.0.1"}`), 0o644))

	require.NoError(t, newTestStore(t).Write(fullReceipt(path)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files may be left behind")
	assert.Equal(t, domain.ReceiptFileName, entries[0].Name())

	loaded, err := newTestStore(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4.1.0", loaded.ToolVersion)
}

func TestStore_WriteFailureLeavesNoTrace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ReceiptFileName)
	// Occupying the receipt path with a directory makes the final rename fail.
	require.NoError(t, os.MkdirAll(path, 0o750))

	s := newTestStore(t)
	err := s.Write(fullReceipt(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write install receipt")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "failed writes must remove their temp file")

	_, err = s.Load(path)
	require.Error(t, err, "a failed write must not populate the cache")
}

func TestStore_WriteCreatesMetadataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pkgfoo", "1.2.0", domain.MetadataDirName, domain.ReceiptFileName)

	require.NoError(t, newTestStore(t).Write(fullReceipt(path)))
	assert.FileExists(t, path)
}

func TestStore_WriteWithoutPath(t *testing.T) {
	receipt := fullReceipt("")
	err := newTestStore(t).Write(receipt)
	require.ErrorIs(t, err, domain.ErrReceiptPathMissing)
}

func TestStore_CanonicalDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ReceiptFileName)
	require.NoError(t, newTestStore(t).Write(fullReceipt(path)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "receipt_full", data)
}

func TestStore_CanonicalMinimalDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ReceiptFileName)
	ts := int64(1709285400)

	// A definition-only install: no tap, no dependencies.
	receipt := &domain.Receipt{
		ToolVersion:        "4.1.0",
		InstalledOnRequest: true,
		Time:               &ts,
		Arch:               "arm64",
		Source: domain.Source{
			Path:    "/opt/pkg/definitions/pkgbar.yaml",
			Version: "0.3.0",
		},
		BuildEnvironment: map[string]string{
			"os":         "Macintosh",
			"os_version": "macOS 14",
			"cpu_family": "arm64",
		},
		Artifacts: []any{
			map[string]any{"app": []any{"PkgBar.app"}},
		},
		Path: path,
	}
	require.NoError(t, newTestStore(t).Write(receipt))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "receipt_minimal", data)
}

func TestStore_CanonicalEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	blank := filepath.Join(dir, "blank.json")
	require.NoError(t, os.WriteFile(blank, nil, 0o644))

	s := newTestStore(t)
	receipt, err := s.Load(blank)
	require.NoError(t, err)

	receipt.Path = filepath.Join(dir, domain.ReceiptFileName)
	require.NoError(t, s.Write(receipt))

	data, err := os.ReadFile(receipt.Path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "receipt_empty", data)
}

func TestStore_RoundTripPreservesRawDeclarations(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ReceiptFileName)
	doc := `{
  "dependencies": {
    "macos": [">= 12"],
    "x11": [{"min_version": 1.20, "optional": true}]
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s := newTestStore(t)
	receipt, err := s.Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(receipt))

	reloaded, err := newTestStore(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, receipt.Dependencies, reloaded.Dependencies)

	// Numeric literals survive re-encoding untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1.20")
}
