//go:build !linux && !darwin

package host

func osVersion() string {
	return ""
}
