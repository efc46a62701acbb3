package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command against dir with prompts disabled and
// the external-tool steps skipped.
func execute(t *testing.T, dir string) error {
	t.Helper()
	rootCmd.SetArgs([]string{dir, "--yes", "--skip-install", "--skip-hooks"})
	defer rootCmd.SetArgs(nil)
	return rootCmd.Execute()
}

func TestRoot_FullSetup(t *testing.T) {
	dir := t.TempDir()
	manifest := `{"dependencies":{"vue":"^3.0.0"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0644))

	require.NoError(t, execute(t, dir))

	for _, name := range []string{".prettierrc", ".prettierignore", ".eslintrc.json", "package.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "%s missing after setup", name)
	}
}

func TestRoot_MissingManifest(t *testing.T) {
	err := execute(t, t.TempDir())
	assert.ErrorContains(t, err, "package.json")
}

func TestRoot_MissingDirectory(t *testing.T) {
	err := execute(t, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
