// Package host provides host introspection for receipt recording.
package host

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvPrefix is the environment variable that overrides the installation
// prefix.
const EnvPrefix = "CASK_PREFIX"

// Info implements ports.HostInfo from the running machine.
type Info struct{}

// New creates a host info adapter.
func New() *Info {
	return &Info{}
}

// Arch returns the host CPU architecture in receipt notation.
func (i *Info) Arch() string {
	return archName(runtime.GOARCH)
}

// BuildEnvironment returns the host details captured into new receipts.
func (i *Info) BuildEnvironment() map[string]string {
	return map[string]string{
		"os":         osName(),
		"os_version": osVersion(),
		"cpu_family": archName(runtime.GOARCH),
	}
}

// GenericBuildEnvironment returns placeholder host details for receipts
// synthesized without host introspection.
func (i *Info) GenericBuildEnvironment() map[string]string {
	return map[string]string{
		"os":         osName(),
		"os_version": "",
		"cpu_family": archName(runtime.GOARCH),
	}
}

// Prefix returns the installation prefix casks are installed under. It honors
// CASK_PREFIX and falls back to ~/.cask.
func (i *Info) Prefix() string {
	if p := os.Getenv(EnvPrefix); p != "" {
		return filepath.Clean(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cask"
	}
	return filepath.Join(home, ".cask")
}

func archName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i386"
	default:
		return goarch
	}
}

func osName() string {
	switch runtime.GOOS {
	case "darwin":
		return "Macintosh"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}
