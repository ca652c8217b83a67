package release_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdverse/mddx/pkg/errcode"
	"github.com/mdverse/mddx/pkg/release"
)

const descriptorTOML = `
[metadata]
name = "MDD"
version = "2.2.1"
release_date = "2025-09-01"
mdd_file = "MDD_v2.2_6815species.csv"
synonym_file = "Species_Syn_v2.2.csv"
doi = "https://doi.org/10.5281/zenodo.17033774"
remarks = "This is a sample release."
`

func TestParse(t *testing.T) {
	meta, err := release.Parse([]byte(descriptorTOML))
	require.NoError(t, err)

	assert.Equal(t, "MDD", meta.Name)
	assert.Equal(t, "2.2.1", meta.Version)
	assert.Equal(t, "2025-09-01", meta.ReleaseDate)
	assert.Equal(t, "MDD_v2.2_6815species.csv", meta.MddFile)
	assert.Equal(t, "Species_Syn_v2.2.csv", meta.SynonymFile)
	require.NotNil(t, meta.DOI)
	assert.Equal(t, "https://doi.org/10.5281/zenodo.17033774", *meta.DOI)
	require.NotNil(t, meta.Remarks)
}

func TestParseOptionalKeysAbsent(t *testing.T) {
	doc := `
[metadata]
version = "2.2"
release_date = "2025-09-01"
`
	meta, err := release.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Nil(t, meta.DOI)
	assert.Nil(t, meta.Remarks)
}

func TestParseMissingMetadata(t *testing.T) {
	tests := []struct {
		msg, doc string
	}{
		{"no version", "[metadata]\nrelease_date = \"2025-09-01\"\n"},
		{"no release_date", "[metadata]\nversion = \"2.2\"\n"},
		{"no metadata table", "name = \"MDD\"\n"},
		{"empty", ""},
	}

	for _, v := range tests {
		_, err := release.Parse([]byte(v.doc))
		require.Error(t, err, v.msg)

		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr, v.msg)
		assert.Equal(t,
			errcode.ReleaseMissingMetadataError, gnErr.Code, v.msg)
	}
}

func TestParseMalformedTOML(t *testing.T) {
	_, err := release.Parse([]byte("[metadata\nversion"))
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.ReleaseParseError, gnErr.Code)
}

func TestFromFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	path := filepath.Join(t.TempDir(), "release.toml")
	err := os.WriteFile(path, []byte(descriptorTOML), 0644)
	require.NoError(t, err)

	meta, err := release.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2.2.1", meta.Version)

	_, err = release.FromFile(filepath.Join(t.TempDir(), "none.toml"))
	require.Error(t, err)
}

func TestVersionFromFilename(t *testing.T) {
	tests := []struct {
		msg, name, res string
	}{
		{"two segments", "MDD_v2.2_6815species.csv", "2.2"},
		{"three segments", "MDD_v1.12.1_6718species.csv", "1.12.1"},
		{"no version", "species.csv", "unknown"},
		{"synonym file", "Species_Syn_v2.2.csv", "unknown"},
		{"empty", "", "unknown"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, release.VersionFromFilename(v.name), v.msg)
	}
}
