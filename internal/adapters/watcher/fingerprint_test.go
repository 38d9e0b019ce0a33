package watcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cask/internal/adapters/watcher"
	"go.trai.ch/cask/internal/core/domain"
)

func writeReceiptFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, domain.ReceiptFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFingerprintCache_Changed_FirstSight(t *testing.T) {
	t.Parallel()

	cache := watcher.NewFingerprintCache()
	path := writeReceiptFile(t, t.TempDir(), `{"version":"1.0"}`)

	changed, err := cache.Changed(path)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestFingerprintCache_Changed_UnchangedContent(t *testing.T) {
	t.Parallel()

	cache := watcher.NewFingerprintCache()
	dir := t.TempDir()
	path := writeReceiptFile(t, dir, `{"version":"1.0"}`)

	changed, err := cache.Changed(path)
	require.NoError(t, err)
	require.True(t, changed)

	// Rewriting identical bytes must not count as a change.
	writeReceiptFile(t, dir, `{"version":"1.0"}`)

	changed, err = cache.Changed(path)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestFingerprintCache_Changed_ModifiedContent(t *testing.T) {
	t.Parallel()

	cache := watcher.NewFingerprintCache()
	dir := t.TempDir()
	path := writeReceiptFile(t, dir, `{"version":"1.0"}`)

	changed, err := cache.Changed(path)
	require.NoError(t, err)
	require.True(t, changed)

	writeReceiptFile(t, dir, `{"version":"2.0"}`)

	changed, err = cache.Changed(path)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestFingerprintCache_Forget(t *testing.T) {
	t.Parallel()

	cache := watcher.NewFingerprintCache()
	path := writeReceiptFile(t, t.TempDir(), `{"version":"1.0"}`)

	changed, err := cache.Changed(path)
	require.NoError(t, err)
	require.True(t, changed)

	cache.Forget(path)

	// With the digest dropped, the same content reads as changed again.
	changed, err = cache.Changed(path)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestFingerprintCache_Changed_MissingFile(t *testing.T) {
	t.Parallel()

	cache := watcher.NewFingerprintCache()

	_, err := cache.Changed(filepath.Join(t.TempDir(), domain.ReceiptFileName))
	require.Error(t, err)
	// String check rather than ErrorIs: zerr carries the sentinel text, not the sentinel value.
	assert.Contains(t, err.Error(), domain.ErrReceiptReadFailed.Error())
}
