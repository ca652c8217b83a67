package mdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdverse/mddx/pkg/mdd"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		msg, header, res string
	}{
		{"prefix and snake", "MDD_syn_id", "synId"},
		{"snake", "species_id", "speciesId"},
		{"snake multi", "unchecked_authority_page_link",
			"uncheckedAuthorityPageLink"},
		{"already camel", "sciName", "sciName"},
		{"single word", "order", "order"},
		{"upper acronym tail", "typeVoucherURIs", "typeVoucherURIs"},
		{"leading upper", "Species_id", "speciesId"},
		{"acronym head", "MSW3_matchtype", "msw3Matchtype"},
		{"prefix only strip", "MDD_sciName", "sciName"},
		{"surrounding space", " root_name ", "rootName"},
		{"empty", "", ""},
		{"lone underscore", "_", ""},
	}

	for _, v := range tests {
		res := mdd.NormalizeHeader(v.header)
		assert.Equal(t, v.res, res, v.msg)
	}
}

// Normalizing an already normalized header must change nothing.
func TestNormalizeHeaderIdempotent(t *testing.T) {
	headers := []string{
		"MDD_syn_id", "species_id", "sciName", "countryDistribution",
		"type_subregion2", "CMW_sciName", "order",
	}
	for _, h := range headers {
		once := mdd.NormalizeHeader(h)
		twice := mdd.NormalizeHeader(once)
		assert.Equal(t, once, twice, h)
	}
}

func TestNormalizeHeaders(t *testing.T) {
	res := mdd.NormalizeHeaders([]string{"MDD_syn_id", "root_name"})
	assert.Equal(t, []string{"synId", "rootName"}, res)
}
