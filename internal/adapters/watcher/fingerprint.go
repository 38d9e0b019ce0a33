package watcher

import (
	"io"
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*FingerprintCache)(nil)

// FingerprintCache remembers content digests of receipt files so rewrites
// with identical content do not trigger reloads.
type FingerprintCache struct {
	mu      sync.Mutex
	digests map[unique.Handle[string]]uint64
}

// NewFingerprintCache creates an empty fingerprint cache.
func NewFingerprintCache() *FingerprintCache {
	return &FingerprintCache{
		digests: make(map[unique.Handle[string]]uint64),
	}
}

// Changed reports whether the content at path differs from the last recorded
// digest, recording the new digest as a side effect.
func (c *FingerprintCache) Changed(path string) (bool, error) {
	sum, err := c.fingerprint(path)
	if err != nil {
		return false, err
	}

	handle := unique.Make(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.digests[handle]; ok && prev == sum {
		return false, nil
	}
	c.digests[handle] = sum

	return true, nil
}

// Forget drops the recorded digest for path.
func (c *FingerprintCache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.digests, unique.Make(path))
}

// fingerprint computes the XXHash of the file content at path.
func (c *FingerprintCache) fingerprint(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from watch events under the caskroom
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrReceiptReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrReceiptReadFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}
