package ports

// HostInfo provides details about the machine receipts are recorded on.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type HostInfo interface {
	// Arch returns the host CPU architecture, e.g. "arm64".
	Arch() string

	// BuildEnvironment returns the host details captured into new receipts.
	BuildEnvironment() map[string]string

	// GenericBuildEnvironment returns placeholder host details used for
	// receipts synthesized without host introspection.
	GenericBuildEnvironment() map[string]string

	// Prefix returns the installation prefix casks are installed under.
	Prefix() string
}
