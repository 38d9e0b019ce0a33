//go:build linux || darwin

package host

import "golang.org/x/sys/unix"

// osVersion returns the kernel release reported by uname, or an empty string
// if the syscall fails.
func osVersion() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Release[:])
}
