package domain

import "go.trai.ch/zerr"

var (
	// ErrCaskNotFound is returned when a cask token cannot be resolved to an installed cask.
	ErrCaskNotFound = zerr.New("cask not found")

	// ErrFormulaNotFound is returned when a formula name cannot be resolved to an installed keg.
	ErrFormulaNotFound = zerr.New("formula not found")

	// ErrInvalidDependency is returned when a resolvable dependency declaration is not an identifier.
	ErrInvalidDependency = zerr.New("invalid dependency declaration")

	// ErrReceiptReadFailed is returned when the install receipt cannot be read.
	ErrReceiptReadFailed = zerr.New("failed to read install receipt")

	// ErrReceiptParseFailed is returned when the install receipt cannot be parsed.
	ErrReceiptParseFailed = zerr.New("failed to parse install receipt")

	// ErrReceiptEncodeFailed is returned when the install receipt cannot be serialized.
	ErrReceiptEncodeFailed = zerr.New("failed to encode install receipt")

	// ErrReceiptWriteFailed is returned when the install receipt cannot be written.
	ErrReceiptWriteFailed = zerr.New("failed to write install receipt")

	// ErrReceiptPathMissing is returned when writing a receipt that has no path set.
	ErrReceiptPathMissing = zerr.New("install receipt has no path")

	// ErrManifestReadFailed is returned when a cask definition file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read cask definition")

	// ErrManifestParseFailed is returned when a cask definition file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse cask definition")

	// ErrManifestTokenMissing is returned when a cask definition has no token.
	ErrManifestTokenMissing = zerr.New("cask definition is missing a token")

	// ErrManifestVersionMissing is returned when a cask definition has no version.
	ErrManifestVersionMissing = zerr.New("cask definition is missing a version")

	// ErrCaskroomReadFailed is returned when the caskroom directory cannot be listed.
	ErrCaskroomReadFailed = zerr.New("failed to read caskroom")

	// ErrCellarReadFailed is returned when the cellar directory cannot be listed.
	ErrCellarReadFailed = zerr.New("failed to read cellar")

	// ErrNoVersionsInstalled is returned when a rack or keg exists but contains no version directories.
	ErrNoVersionsInstalled = zerr.New("no versions installed")

	// ErrTapRevisionFailed is returned when the tap revision cannot be determined.
	ErrTapRevisionFailed = zerr.New("failed to read tap revision")

	// ErrNoTokensSpecified is returned when a command that requires cask tokens receives none.
	ErrNoTokensSpecified = zerr.New("no cask tokens specified")
)
