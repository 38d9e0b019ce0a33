package store

import (
	"path/filepath"

	"go.trai.ch/cask/internal/core/domain"
)

// Cache memoizes loaded receipts by canonical path so repeated loads of the
// same receipt observe the same entity, including in-process mutations that
// have not been written back yet.
//
// It is not safe for concurrent use. Receipt loading and writing run on a
// single goroutine; callers that fan out must serialize parse and cache
// access themselves.
type Cache struct {
	entries map[string]*domain.Receipt
}

// NewCache creates an empty receipt cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*domain.Receipt)}
}

// Get returns the cached receipt for path, if any.
func (c *Cache) Get(path string) (*domain.Receipt, bool) {
	receipt, ok := c.entries[filepath.Clean(path)]
	return receipt, ok
}

// Put stores the receipt under the canonical form of path.
func (c *Cache) Put(path string, receipt *domain.Receipt) {
	c.entries[filepath.Clean(path)] = receipt
}

// Len returns the number of cached receipts.
func (c *Cache) Len() int {
	return len(c.entries)
}
