package domain

import "path/filepath"

const (
	// CaskroomDirName is the name of the directory that holds installed casks.
	CaskroomDirName = "Caskroom"

	// CellarDirName is the name of the directory that holds installed formulae.
	CellarDirName = "Cellar"

	// TapsDirName is the name of the directory that holds tap clones.
	TapsDirName = "Taps"

	// MetadataDirName is the name of the per-version metadata directory inside a cask rack.
	MetadataDirName = ".metadata"

	// ReceiptFileName is the name of the install receipt file.
	ReceiptFileName = "INSTALL_RECEIPT.json"

	// ManifestFileName is the name of the cask definition file inside a tap.
	ManifestFileName = "cask.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// CaskroomPath returns the caskroom directory under the given prefix.
func CaskroomPath(prefix string) string {
	return filepath.Join(prefix, CaskroomDirName)
}

// CellarPath returns the cellar directory under the given prefix.
func CellarPath(prefix string) string {
	return filepath.Join(prefix, CellarDirName)
}

// RackPath returns the rack directory for a cask token.
// It joins the caskroom and the token.
func RackPath(prefix, token string) string {
	return filepath.Join(prefix, CaskroomDirName, token)
}

// MetadataPath returns the metadata directory for an installed cask version.
// It joins the rack, the version, and .metadata.
func MetadataPath(prefix, token, version string) string {
	return filepath.Join(prefix, CaskroomDirName, token, version, MetadataDirName)
}

// ReceiptPath returns the install receipt path for an installed cask version.
// It joins the metadata directory and INSTALL_RECEIPT.json.
func ReceiptPath(prefix, token, version string) string {
	return filepath.Join(MetadataPath(prefix, token, version), ReceiptFileName)
}

// KegPath returns the keg directory for an installed formula version.
// It joins the cellar, the name, and the version.
func KegPath(prefix, name, version string) string {
	return filepath.Join(prefix, CellarDirName, name, version)
}

// TapPath returns the clone directory for a tap name under the given prefix.
func TapPath(prefix, name string) string {
	return filepath.Join(prefix, TapsDirName, name)
}
