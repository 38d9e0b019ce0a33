package ports

// Caskroom enumerates the local caskroom.
//
//go:generate mockgen -source=caskroom.go -destination=mocks/mock_caskroom.go -package=mocks
type Caskroom interface {
	// Root returns the caskroom directory.
	Root() string

	// Tokens lists the cask tokens with at least one installed version, in
	// lexical order.
	Tokens() ([]string, error)

	// Versions lists the installed versions of a cask, oldest first.
	// It returns domain.ErrNoVersionsInstalled when the rack is empty or
	// missing.
	Versions(token string) ([]string, error)

	// ReceiptPath returns the canonical receipt path for one installed
	// version of a cask.
	ReceiptPath(token, version string) string
}
