package ports

// Fingerprinter tracks content digests of receipt files so repeated writes
// with identical content can be recognized.
//
//go:generate mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type Fingerprinter interface {
	// Changed reports whether the content at path differs from the last
	// recorded digest, recording the new digest as a side effect.
	Changed(path string) (bool, error)
	// Forget drops the recorded digest for path.
	Forget(path string)
}
