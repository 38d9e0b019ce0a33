// Package tap resolves tap names to local clones and reads their git state.
package tap

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/zerr"
)

// Tap is a locally cloned cask source repository.
type Tap struct {
	name string
	path string
}

// Name returns the tap name, e.g. "acme/tap".
func (t *Tap) Name() string {
	return t.name
}

// Installed reports whether the tap clone exists on disk.
func (t *Tap) Installed() bool {
	info, err := os.Stat(t.path)
	return err == nil && info.IsDir()
}

// GitHead returns the tap's current git revision.
func (t *Tap) GitHead(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", t.path, "rev-parse", "HEAD")

	output, err := cmd.Output()
	if err != nil {
		// Handle exit errors to capture stderr for debugging
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))

			gitErr := zerr.Wrap(exitErr, domain.ErrTapRevisionFailed.Error())
			gitErr = zerr.With(gitErr, "tap", t.name)
			return "", zerr.With(gitErr, "stderr", stderr)
		}

		gitErr := zerr.Wrap(err, domain.ErrTapRevisionFailed.Error())
		return "", zerr.With(gitErr, "tap", t.name)
	}

	return strings.TrimSpace(string(output)), nil
}
