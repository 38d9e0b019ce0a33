package ports

// CaskLoader defines the interface for loading cask definitions.
//
//go:generate mockgen -source=cask_loader.go -destination=mocks/mock_cask_loader.go -package=mocks
type CaskLoader interface {
	// Load reads the cask definition at the given path.
	Load(path string) (Cask, error)
}
