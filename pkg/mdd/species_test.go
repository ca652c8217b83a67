package mdd_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdverse/mddx/pkg/errcode"
	"github.com/mdverse/mddx/pkg/mdd"
)

// speciesCSV builds a species CSV document from sparse cell maps keyed by
// raw column name. Unset cells stay empty.
func speciesCSV(t *testing.T, rows ...map[string]string) string {
	t.Helper()
	header := mdd.SpeciesHeader()
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}

	var b bytes.Buffer
	w := csv.NewWriter(&b)
	require.NoError(t, w.Write(header))
	for _, cells := range rows {
		rec := make([]string, len(header))
		for k, v := range cells {
			i, ok := idx[k]
			require.True(t, ok, "unknown column %s", k)
			rec[i] = v
		}
		require.NoError(t, w.Write(rec))
	}
	w.Flush()
	require.NoError(t, w.Error())
	return b.String()
}

func TestParseSpecies(t *testing.T) {
	doc := speciesCSV(t,
		map[string]string{
			"id":                     "1005",
			"sciName":                "Panthera leo",
			"mainCommonName":         "Lion",
			"order":                  "Carnivora",
			"family":                 "Felidae",
			"genus":                  "Panthera",
			"authoritySpeciesAuthor": "Linnaeus",
			"authoritySpeciesYear":   "1758",
			"authorityParentheses":   "1",
			"countryDistribution":    "Kenya|Tanzania|India",
			"iucnStatus":             "VU",
			"extinct":                "0",
		},
		map[string]string{
			"id":      "1006",
			"sciName": "Mus musculus",
			"order":   "Rodentia",
		},
	)

	species, bad, err := mdd.ParseSpecies(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, bad)
	require.Len(t, species, 2)

	sp := species[0]
	assert.Equal(t, 1005, sp.ID)
	assert.Equal(t, "Panthera leo", sp.SciName)
	assert.Equal(t, "Lion", sp.MainCommonName)
	assert.Equal(t, "Carnivora", sp.TaxonOrder)
	assert.Equal(t, "Felidae", sp.Family)
	assert.Equal(t, 1758, sp.AuthoritySpeciesYear)
	assert.Equal(t, 1, sp.AuthorityParentheses)
	assert.Equal(t, "VU", sp.IUCNStatus)

	// Empty cells stay empty, they are not invented.
	assert.Equal(t, "", species[1].MainCommonName)
	assert.Equal(t, "", species[1].CountryDistribution)
	assert.Equal(t, 0, species[1].AuthoritySpeciesYear)
}

func TestParseSpeciesMalformedRows(t *testing.T) {
	// Second data row has two cells instead of fifty.
	doc := speciesCSV(t,
		map[string]string{"id": "1", "sciName": "Panthera leo"},
	) + "2,Mus musculus\n"

	species, bad, err := mdd.ParseSpecies(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, species, 1)
	require.Len(t, bad, 1)

	assert.Equal(t, 2, bad[0].Row)
	assert.Equal(t, 2, bad[0].Got)
	assert.Equal(t, 50, bad[0].Want)
	assert.Contains(t, bad[0].String(), "row 2")
}

func TestParseSpeciesMissingSchema(t *testing.T) {
	doc := "foo,bar\n1,Panthera leo\n"

	_, _, err := mdd.ParseSpecies(strings.NewReader(doc))
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.CSVMissingSchemaError, gnErr.Code)
}

func TestSpeciesCountries(t *testing.T) {
	tests := []struct {
		msg, distribution string
		res               []string
	}{
		{"plain list", "Kenya|Tanzania", []string{"Kenya", "Tanzania"}},
		{"predicted marker kept", "Kenya|Tanzania?",
			[]string{"Kenya", "Tanzania?"}},
		{"spaces trimmed", " Kenya | Tanzania ",
			[]string{"Kenya", "Tanzania"}},
		{"empty tokens dropped", "Kenya||Tanzania",
			[]string{"Kenya", "Tanzania"}},
		{"textual label", "domesticated", []string{"domesticated"}},
		{"empty", "", nil},
	}

	for _, v := range tests {
		sp := mdd.Species{CountryDistribution: v.distribution}
		assert.Equal(t, v.res, sp.Countries(), v.msg)
	}
}

func TestSpeciesAuthority(t *testing.T) {
	tests := []struct {
		msg, author string
		year, paren int
		res         string
	}{
		{"plain", "Linnaeus", 1758, 0, "Linnaeus, 1758"},
		{"parenthesized", "Linnaeus", 1758, 1, "(Linnaeus, 1758)"},
		{"no year", "Linnaeus", 0, 0, "Linnaeus"},
		{"no author", "", 1758, 0, ""},
	}

	for _, v := range tests {
		sp := mdd.Species{
			AuthoritySpeciesAuthor: v.author,
			AuthoritySpeciesYear:   v.year,
			AuthorityParentheses:   v.paren,
		}
		assert.Equal(t, v.res, sp.Authority(), v.msg)
	}
}

// Row output must line up with the header so a re-exported CSV parses back.
func TestSpeciesRowRoundTrip(t *testing.T) {
	doc := speciesCSV(t, map[string]string{
		"id":                  "42",
		"sciName":             "Panthera leo",
		"order":               "Carnivora",
		"countryDistribution": "Kenya|Tanzania",
		"CMW_sciName":         "Panthera leo",
		"MSW3_matchtype":      "exact",
	})
	species, _, err := mdd.ParseSpecies(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, species, 1)
	assert.Equal(t, "Panthera leo", species[0].CMWSciName)
	assert.Equal(t, "exact", species[0].MSW3MatchType)

	row := species[0].Row()
	require.Len(t, row, len(mdd.SpeciesHeader()))

	var b bytes.Buffer
	w := csv.NewWriter(&b)
	require.NoError(t, w.Write(mdd.SpeciesHeader()))
	require.NoError(t, w.Write(row))
	w.Flush()

	again, bad, err := mdd.ParseSpecies(&b)
	require.NoError(t, err)
	assert.Empty(t, bad)
	require.Len(t, again, 1)
	assert.Equal(t, species[0], again[0])
}
