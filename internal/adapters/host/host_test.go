package host_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cask/internal/adapters/host"
)

func TestInfo_Arch(t *testing.T) {
	arch := host.New().Arch()
	require.NotEmpty(t, arch)
	// Receipt notation, not Go notation.
	assert.NotEqual(t, "amd64", arch)
	assert.NotEqual(t, "386", arch)
}

func TestInfo_BuildEnvironment(t *testing.T) {
	env := host.New().BuildEnvironment()
	assert.Contains(t, env, "os")
	assert.Contains(t, env, "os_version")
	assert.Contains(t, env, "cpu_family")
	assert.NotEmpty(t, env["os"])
}

func TestInfo_GenericBuildEnvironment(t *testing.T) {
	env := host.New().GenericBuildEnvironment()
	assert.Contains(t, env, "os")
	assert.Contains(t, env, "cpu_family")
	assert.Empty(t, env["os_version"], "generic environment must not leak host details")
}

func TestInfo_Prefix(t *testing.T) {
	t.Run("honors environment override", func(t *testing.T) {
		t.Setenv(host.EnvPrefix, "/opt/pkg/")
		assert.Equal(t, filepath.Clean("/opt/pkg"), host.New().Prefix())
	})

	t.Run("falls back to home", func(t *testing.T) {
		t.Setenv(host.EnvPrefix, "")
		assert.Contains(t, host.New().Prefix(), ".cask")
	})
}
