// Package output provides utilities for creating termenv.Output with
// consistent color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile to use for interactive terminals.
// It checks if NO_COLOR is set, returning Ascii if so. Otherwise, it detects
// the terminal's capabilities automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the color profile for CI and other non-interactive
// environments. It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it returns ANSI for broad compatibility.
func ColorProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a new termenv.Output with the interactive profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return newOutput(w, ColorProfile, opts)
}

// NewPlain creates a new termenv.Output with the non-interactive profile
// logic.
func NewPlain(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return newOutput(w, ColorProfileANSI, opts)
}

func newOutput(w io.Writer, profileFn func() termenv.Profile, opts []termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
