package iofs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdverse/mddx/internal/iofs"
	"github.com/mdverse/mddx/pkg/config"
)

func TestEnsureDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(tempHome))

	for _, dir := range []string{
		config.ConfigDir(tempHome),
		config.CacheDir(tempHome),
		config.LogDir(tempHome),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// Second run is a no-op.
	require.NoError(t, iofs.EnsureDirs(tempHome))
}

func TestEnsureConfigFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(tempHome))
	require.NoError(t, iofs.EnsureConfigFile(tempHome))

	path := config.ConfigFilePath(tempHome)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, iofs.ConfigYAML, string(content))

	// An existing file is never overwritten.
	custom := []byte("export:\n  prefix: custom\n")
	require.NoError(t, os.WriteFile(path, custom, 0644))
	require.NoError(t, iofs.EnsureConfigFile(tempHome))

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, content)
}

func TestModTimeDate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	path := filepath.Join(t.TempDir(), "MDD_v2.2_6815species.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,sciName\n"), 0644))

	date, err := iofs.ModTimeDate(path)
	require.NoError(t, err)
	// Format like "September 1, 2025".
	assert.Regexp(t, `^[A-Z][a-z]+ \d{1,2}, \d{4}$`, date)

	_, err = iofs.ModTimeDate(filepath.Join(t.TempDir(), "none.csv"))
	assert.Error(t, err)
}
