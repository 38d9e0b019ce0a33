package ports

import "go.trai.ch/cask/internal/core/domain"

// ReceiptStore loads and persists install receipts.
//
//go:generate go run go.uber.org/mock/mockgen -source=receipt_store.go -destination=mocks/mock_receipt_store.go -package=mocks
type ReceiptStore interface {
	// Exists reports whether a receipt file is present at path.
	Exists(path string) bool

	// Load returns the receipt stored at path. Repeated loads of the same
	// path return the cached entity.
	Load(path string) (*domain.Receipt, error)

	// LoadRaw parses receipt text as if it had been read from path, without
	// consulting or populating the cache.
	LoadRaw(path string, text []byte) (*domain.Receipt, error)

	// Write persists the receipt to its path, replacing any previous file.
	Write(receipt *domain.Receipt) error
}
