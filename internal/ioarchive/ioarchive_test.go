package ioarchive_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdverse/mddx/internal/ioarchive"
	"github.com/mdverse/mddx/pkg/errcode"
)

// writeZip creates a ZIP file with the given entry name/content pairs.
func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "MDD.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestScan(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	path := writeZip(t, map[string]string{
		"MDD/MDD_v2.2_6815species.csv": "id,sciName\n",
		"MDD/Species_Syn_v2.2.csv":     "MDD_syn_id,root_name\n",
		"MDD/release.toml":             "[metadata]\nversion = \"2.2\"\n",
	})

	assets, err := ioarchive.Scan(path)
	require.NoError(t, err)

	assert.Equal(t, "MDD_v2.2_6815species.csv", assets.SpeciesName)
	assert.Equal(t, "id,sciName\n", string(assets.Species))
	assert.Equal(t, "Species_Syn_v2.2.csv", assets.SynonymName)
	assert.Equal(t, "MDD_syn_id,root_name\n", string(assets.Synonyms))
	assert.Equal(t, "release.toml", assets.DescriptorName)
	assert.Contains(t, string(assets.Descriptor), "version")
}

// The descriptor is optional; both CSV entries are not.
func TestScanNoDescriptor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	path := writeZip(t, map[string]string{
		"MDD_v2.0_6533species.csv": "id,sciName\n",
		"Species_Syn_v2.0.csv":     "MDD_syn_id,root_name\n",
	})

	assets, err := ioarchive.Scan(path)
	require.NoError(t, err)
	assert.Nil(t, assets.Descriptor)
	assert.Empty(t, assets.DescriptorName)
}

func TestScanMissingEntries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tests := []struct {
		msg     string
		entries map[string]string
	}{
		{
			msg: "no species CSV",
			entries: map[string]string{
				"Species_Syn_v2.2.csv": "MDD_syn_id,root_name\n",
			},
		},
		{
			msg: "no synonym CSV",
			entries: map[string]string{
				"MDD_v2.2_6815species.csv": "id,sciName\n",
			},
		},
		{
			msg: "unrelated entries only",
			entries: map[string]string{
				"readme.txt": "hello",
			},
		},
	}

	for _, v := range tests {
		path := writeZip(t, v.entries)
		_, err := ioarchive.Scan(path)
		require.Error(t, err, v.msg)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr, v.msg)
		assert.Equal(t,
			errcode.ArchiveEntryNotFoundError, gnErr.Code, v.msg)
	}
}

func TestScanBadArchive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	path := filepath.Join(t.TempDir(), "not.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, err := ioarchive.Scan(path)
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.ArchiveOpenError, gnErr.Code)
}
