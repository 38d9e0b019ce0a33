package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	prefix := t.TempDir()
	t.Setenv("CASK_PREFIX", prefix)

	definition := filepath.Join(prefix, "pkgfoo.yaml")
	definitionContent := `token: pkgfoo
name: PkgFoo
version: "1.2.0"
artifacts:
  - app: PkgFoo.app
`
	require.NoError(t, os.WriteFile(definition, []byte(definitionContent), 0o600))

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "List with empty caskroom",
			args:         []string{"cask", "list"},
			expectedExit: 0,
		},
		{
			name:         "Record a receipt",
			args:         []string{"cask", "record", definition},
			expectedExit: 0,
		},
		{
			name:         "Show the recorded receipt",
			args:         []string{"cask", "show", "pkgfoo"},
			expectedExit: 0,
		},
		{
			name:         "Error with missing definition",
			args:         []string{"cask", "record", filepath.Join(prefix, "nonexistent.yaml")},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
