//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var caskBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "cask-e2e-*")
	if err != nil {
		panic(err)
	}

	caskBinary = filepath.Join(tmpDir, "cask")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", caskBinary, "./cmd/cask")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build cask binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(caskBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	// Each script gets its own installation prefix.
	prefix := filepath.Join(env.WorkDir, ".cask")
	if err := os.MkdirAll(prefix, 0o750); err != nil {
		return err
	}
	env.Setenv("CASK_PREFIX", prefix)

	return nil
}
