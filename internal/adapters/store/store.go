// Package store implements install receipt persistence with an in-process
// read cache.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ReceiptStore using pretty-printed JSON files.
type Store struct {
	cache       *Cache
	host        ports.HostInfo
	toolVersion string
}

// NewStore creates a receipt store. toolVersion is stamped into the receipts
// it synthesizes for blank files.
func NewStore(host ports.HostInfo, toolVersion string) *Store {
	return &Store{
		cache:       NewCache(),
		host:        host,
		toolVersion: toolVersion,
	}
}

// Exists reports whether a receipt file is present at path.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Load returns the receipt stored at path. Repeated loads of the same path
// return the cached entity. A blank file yields a fresh empty receipt that is
// deliberately not cached, so a write that happens later is visible to the
// next load.
func (s *Store) Load(path string) (*domain.Receipt, error) {
	if cached, ok := s.cache.Get(path); ok {
		return cached, nil
	}

	//nolint:gosec // Path is derived from the caskroom layout
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReceiptReadFailed.Error()), "path", path)
	}

	if isBlank(data) {
		return s.emptyReceipt(), nil
	}

	receipt, err := s.parse(path, data)
	if err != nil {
		return nil, err
	}

	s.cache.Put(path, receipt)
	return receipt, nil
}

// LoadRaw parses receipt text as if it had been read from path, bypassing the
// cache in both directions.
func (s *Store) LoadRaw(path string, text []byte) (*domain.Receipt, error) {
	if isBlank(text) {
		return s.emptyReceipt(), nil
	}
	return s.parse(path, text)
}

// Write persists the receipt to its path, replacing any previous file in a
// single step. Readers racing a write observe either the old or the new
// document, never a partial one. The cache is refreshed only after the file
// is durably in place.
func (s *Store) Write(receipt *domain.Receipt) error {
	if receipt.Path == "" {
		return domain.ErrReceiptPathMissing
	}

	data, err := Encode(receipt)
	if err != nil {
		return zerr.Wrap(err, domain.ErrReceiptEncodeFailed.Error())
	}

	path := filepath.Clean(receipt.Path)
	if err := writeFileAtomic(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReceiptWriteFailed.Error()), "path", path)
	}

	s.cache.Put(path, receipt)
	return nil
}

func (s *Store) parse(path string, data []byte) (*domain.Receipt, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var wire receiptJSON
	if err := dec.Decode(&wire); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReceiptParseFailed.Error()), "path", path)
	}

	return fromWire(wire, filepath.Clean(path)), nil
}

// emptyReceipt builds the receipt handed out when no parseable document
// exists. It carries no path so it can never be written back accidentally.
func (s *Store) emptyReceipt() *domain.Receipt {
	return &domain.Receipt{
		ToolVersion:      s.toolVersion,
		BuildEnvironment: s.host.GenericBuildEnvironment(),
		Artifacts:        []any{},
	}
}

// Encode renders the canonical receipt document: two-space indented JSON with
// a fixed top-level key order and a trailing newline.
func Encode(receipt *domain.Receipt) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toWire(receipt)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}
