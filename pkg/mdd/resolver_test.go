package mdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdverse/mddx/pkg/mdd"
)

func intPtr(i int) *int { return &i }

func TestResolve(t *testing.T) {
	species := []mdd.Species{
		{ID: 1, SciName: "Panthera leo"},
		{ID: 2, SciName: "Mus musculus"},
	}
	synonyms := []mdd.Synonym{
		{ID: 10, SpeciesID: intPtr(1), RootName: "nubica"},
		{ID: 11, SpeciesID: intPtr(1), RootName: "senegalensis"},
		{ID: 12, SpeciesID: nil, RootName: "orphaned"},
		{ID: 13, SpeciesID: intPtr(999), RootName: "dangling"},
		{ID: 14, SpeciesID: intPtr(2), RootName: "domesticus"},
	}

	res := mdd.Resolve(species, synonyms)

	// Every synonym lands in exactly one place.
	assert.Equal(t, len(synonyms), res.ResolvedCount()+len(res.Orphans))

	require.Len(t, res.Groups[1], 2)
	require.Len(t, res.Groups[2], 1)
	assert.Equal(t, 3, res.ResolvedCount())

	// Input order is preserved inside a group.
	assert.Equal(t, "nubica", res.Groups[1][0].RootName)
	assert.Equal(t, "senegalensis", res.Groups[1][1].RootName)

	// Missing and dangling identifiers both orphan the record.
	require.Len(t, res.Orphans, 2)
	assert.Equal(t, 12, res.Orphans[0].ID)
	assert.Equal(t, 13, res.Orphans[1].ID)
}

func TestResolveEmpty(t *testing.T) {
	res := mdd.Resolve(nil, nil)
	assert.Empty(t, res.Groups)
	assert.Empty(t, res.Orphans)
	assert.Zero(t, res.ResolvedCount())
}

func TestResolveNoSpecies(t *testing.T) {
	synonyms := []mdd.Synonym{{ID: 1, SpeciesID: intPtr(5)}}
	res := mdd.Resolve(nil, synonyms)
	assert.Zero(t, res.ResolvedCount())
	assert.Len(t, res.Orphans, 1)
}
