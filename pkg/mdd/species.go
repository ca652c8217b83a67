// Package mdd parses Mammal Diversity Database (MDD) release CSV files into
// typed records and links synonym records to their accepted species.
//
// The package is pure: it operates on readers and in-memory sequences and
// performs no file or network I/O. Text fields are preserved verbatim; the
// only normalization applied is the header rewrite (see NormalizeHeader).
package mdd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Species is a single species row from the MDD species CSV export.
//
// Field names follow the original column headings so downstream JSON can be
// matched to the source data. Most fields stay text because the raw CSV
// frequently contains empty values, free-form text, mixed formatting,
// uncertain markers (e.g. trailing `?`), or ranges that would otherwise
// require lossy normalization. Consumers can add typed layers on top.
type Species struct {
	// ID is the unique numeric identifier of the species record.
	ID int `json:"id"`
	// SciName is the full scientific binomial as used in MDD.
	SciName        string `json:"sciName"`
	MainCommonName string `json:"mainCommonName"`
	// OtherCommonNames keeps alternate common names verbatim
	// (pipe or comma separated in source).
	OtherCommonNames string `json:"otherCommonNames"`
	// Phylosort is the phylogenetic sort index supplied by MDD.
	Phylosort  int    `json:"phylosort"`
	Subclass   string `json:"subclass"`
	Infraclass string `json:"infraclass"`
	Magnorder  string `json:"magnorder"`
	Superorder string `json:"superorder"`
	// TaxonOrder is the taxonomic order. The JSON name stays `order`,
	// matching the source column.
	TaxonOrder      string `json:"order"`
	Suborder        string `json:"suborder"`
	Infraorder      string `json:"infraorder"`
	Parvorder       string `json:"parvorder"`
	Superfamily     string `json:"superfamily"`
	Family          string `json:"family"`
	Subfamily       string `json:"subfamily"`
	Tribe           string `json:"tribe"`
	Genus           string `json:"genus"`
	Subgenus        string `json:"subgenus"`
	SpecificEpithet string `json:"specificEpithet"`
	// AuthoritySpeciesAuthor holds author(s) of the original description,
	// verbatim formatting.
	AuthoritySpeciesAuthor string `json:"authoritySpeciesAuthor"`
	// AuthoritySpeciesYear is 0 when unknown or missing.
	AuthoritySpeciesYear int `json:"authoritySpeciesYear"`
	// AuthorityParentheses is 1 if author and year are presented in
	// parentheses (the original combination differs), else 0.
	AuthorityParentheses     int    `json:"authorityParentheses"`
	OriginalNameCombination  string `json:"originalNameCombination"`
	AuthoritySpeciesCitation string `json:"authoritySpeciesCitation"`
	AuthoritySpeciesLink     string `json:"authoritySpeciesLink"`
	TypeVoucher              string `json:"typeVoucher"`
	TypeKind                 string `json:"typeKind"`
	TypeVoucherURIs          string `json:"typeVoucherURIs"`
	TypeLocality             string `json:"typeLocality"`
	// Coordinates stay textual: the source may contain composite,
	// approximate, or blank entries.
	TypeLocalityLatitude      string `json:"typeLocalityLatitude"`
	TypeLocalityLongitude     string `json:"typeLocalityLongitude"`
	NominalNames              string `json:"nominalNames"`
	TaxonomyNotes             string `json:"taxonomyNotes"`
	TaxonomyNotesCitation     string `json:"taxonomyNotesCitation"`
	DistributionNotes         string `json:"distributionNotes"`
	DistributionNotesCitation string `json:"distributionNotesCitation"`
	SubregionDistribution     string `json:"subregionDistribution"`
	// CountryDistribution is a pipe separated country list, or a textual
	// label like "domesticated" / "NA".
	CountryDistribution   string `json:"countryDistribution"`
	ContinentDistribution string `json:"continentDistribution"`
	BiogeographicRealm    string `json:"biogeographicRealm"`
	IUCNStatus            string `json:"iucnStatus"`
	// Extinct is 1 for recently extinct species, else 0.
	Extinct int `json:"extinct"`
	// Domestic is 1 for domestic/domesticated forms, else 0.
	Domestic int `json:"domestic"`
	Flagged  int `json:"flagged"`
	// Cross-references to prior reference taxonomies (CMW and MSW3).
	CMWSciName    string `json:"CMW_sciName"`
	DiffSinceCMW  int    `json:"diffSinceCMW"`
	MSW3MatchType string `json:"MSW3_matchtype"`
	MSW3SciName   string `json:"MSW3_sciName"`
	DiffSinceMSW3 string `json:"diffSinceMSW3"`
}

// speciesColumns is the fixed species CSV schema, raw header spellings in
// column order.
var speciesColumns = []string{
	"id", "sciName", "mainCommonName", "otherCommonNames", "phylosort",
	"subclass", "infraclass", "magnorder", "superorder", "order",
	"suborder", "infraorder", "parvorder", "superfamily", "family",
	"subfamily", "tribe", "genus", "subgenus", "specificEpithet",
	"authoritySpeciesAuthor", "authoritySpeciesYear", "authorityParentheses",
	"originalNameCombination", "authoritySpeciesCitation",
	"authoritySpeciesLink", "typeVoucher", "typeKind", "typeVoucherURIs",
	"typeLocality", "typeLocalityLatitude", "typeLocalityLongitude",
	"nominalNames", "taxonomyNotes", "taxonomyNotesCitation",
	"distributionNotes", "distributionNotesCitation",
	"subregionDistribution", "countryDistribution", "continentDistribution",
	"biogeographicRealm", "iucnStatus", "extinct", "domestic", "flagged",
	"CMW_sciName", "diffSinceCMW", "MSW3_matchtype", "MSW3_sciName",
	"diffSinceMSW3",
}

// SpeciesHeader returns the species CSV header row with the original
// column spellings. The returned slice is a copy.
func SpeciesHeader() []string {
	res := make([]string, len(speciesColumns))
	copy(res, speciesColumns)
	return res
}

// RowError describes a data row rejected during parsing. Rejected rows
// never abort the parse; they are collected so the caller can count and
// inspect them.
type RowError struct {
	// Row is the 1-based ordinal of the data row (header excluded).
	Row int
	// Got and Want are the actual and expected column counts for
	// column-count mismatches.
	Got  int
	Want int
	// Err carries the underlying CSV error when the row could not be
	// tokenized at all.
	Err error
}

func (e RowError) String() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf(
		"row %d: %d columns instead of %d", e.Row, e.Got, e.Want,
	)
}

// ParseSpecies reads the species CSV and returns typed records in input row
// order. Rows whose column count does not match the header are skipped and
// reported in the second return value. The error return is reserved for
// fatal conditions: an unreadable stream or a header lacking the identity
// columns (id, sciName).
func ParseSpecies(r io.Reader) ([]Species, []RowError, error) {
	var res []Species
	bad, err := parseTable(r, []string{"id", "sciName"},
		func(rw row) {
			res = append(res, speciesFromRow(rw))
		})
	if err != nil {
		return nil, nil, err
	}
	return res, bad, nil
}

// row is a single data row paired with the normalized-header column index.
type row struct {
	cols map[string]int
	data []string
}

// field returns the verbatim cell value for a normalized column name, or
// the empty string when the column is absent.
func (r row) field(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.data) {
		return ""
	}
	return r.data[i]
}

// fieldInt parses a numeric cell. Empty or non-numeric cells yield 0; the
// source data uses 0 for unknown values already.
func (r row) fieldInt(name string) int {
	v := strings.TrimSpace(r.field(name))
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// fieldIntPtr parses an optional numeric cell. An empty cell is absence
// (nil), not zero.
func (r row) fieldIntPtr(name string) *int {
	v := strings.TrimSpace(r.field(name))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// parseTable reads a header row, verifies required identity columns, and
// feeds every well-formed data row to fn. Malformed rows are collected.
func parseTable(
	r io.Reader,
	required []string,
	fn func(row),
) ([]RowError, error) {
	cr := csv.NewReader(r)
	// Column counts are checked here, not by the csv reader, so rejected
	// rows can be reported instead of aborting the parse.
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, CSVReadError(err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[NormalizeHeader(h)] = i
	}

	var missing []string
	for _, req := range required {
		if _, ok := cols[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, MissingSchemaError(missing)
	}

	var bad []RowError
	var num int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		num++
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			bad = append(bad, RowError{Row: num, Err: err})
			continue
		}
		if err != nil {
			return bad, CSVReadError(err)
		}
		if len(rec) != len(header) {
			bad = append(bad, RowError{
				Row: num, Got: len(rec), Want: len(header),
			})
			continue
		}
		fn(row{cols: cols, data: rec})
	}
	return bad, nil
}

func speciesFromRow(r row) Species {
	return Species{
		ID:                        r.fieldInt("id"),
		SciName:                   r.field("sciName"),
		MainCommonName:            r.field("mainCommonName"),
		OtherCommonNames:          r.field("otherCommonNames"),
		Phylosort:                 r.fieldInt("phylosort"),
		Subclass:                  r.field("subclass"),
		Infraclass:                r.field("infraclass"),
		Magnorder:                 r.field("magnorder"),
		Superorder:                r.field("superorder"),
		TaxonOrder:                r.field("order"),
		Suborder:                  r.field("suborder"),
		Infraorder:                r.field("infraorder"),
		Parvorder:                 r.field("parvorder"),
		Superfamily:               r.field("superfamily"),
		Family:                    r.field("family"),
		Subfamily:                 r.field("subfamily"),
		Tribe:                     r.field("tribe"),
		Genus:                     r.field("genus"),
		Subgenus:                  r.field("subgenus"),
		SpecificEpithet:           r.field("specificEpithet"),
		AuthoritySpeciesAuthor:    r.field("authoritySpeciesAuthor"),
		AuthoritySpeciesYear:      r.fieldInt("authoritySpeciesYear"),
		AuthorityParentheses:      r.fieldInt("authorityParentheses"),
		OriginalNameCombination:   r.field("originalNameCombination"),
		AuthoritySpeciesCitation:  r.field("authoritySpeciesCitation"),
		AuthoritySpeciesLink:      r.field("authoritySpeciesLink"),
		TypeVoucher:               r.field("typeVoucher"),
		TypeKind:                  r.field("typeKind"),
		TypeVoucherURIs:           r.field("typeVoucherURIs"),
		TypeLocality:              r.field("typeLocality"),
		TypeLocalityLatitude:      r.field("typeLocalityLatitude"),
		TypeLocalityLongitude:     r.field("typeLocalityLongitude"),
		NominalNames:              r.field("nominalNames"),
		TaxonomyNotes:             r.field("taxonomyNotes"),
		TaxonomyNotesCitation:     r.field("taxonomyNotesCitation"),
		DistributionNotes:         r.field("distributionNotes"),
		DistributionNotesCitation: r.field("distributionNotesCitation"),
		SubregionDistribution:     r.field("subregionDistribution"),
		CountryDistribution:       r.field("countryDistribution"),
		ContinentDistribution:     r.field("continentDistribution"),
		BiogeographicRealm:        r.field("biogeographicRealm"),
		IUCNStatus:                r.field("iucnStatus"),
		Extinct:                   r.fieldInt("extinct"),
		Domestic:                  r.fieldInt("domestic"),
		Flagged:                   r.fieldInt("flagged"),
		CMWSciName:                r.field("cmwSciName"),
		DiffSinceCMW:              r.fieldInt("diffSinceCMW"),
		MSW3MatchType:             r.field("msw3Matchtype"),
		MSW3SciName:               r.field("msw3SciName"),
		DiffSinceMSW3:             r.field("diffSinceMSW3"),
	}
}

// Countries splits the pipe-delimited country distribution field. Tokens
// are trimmed; empty tokens are dropped. Textual labels like "domesticated"
// come back as a single token.
func (sp Species) Countries() []string {
	var res []string
	for tok := range strings.SplitSeq(sp.CountryDistribution, "|") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		res = append(res, tok)
	}
	return res
}

// Authority formats the authority citation in zoological style:
// "Linnaeus, 1758", parenthesized when the original combination differs.
func (sp Species) Authority() string {
	if sp.AuthoritySpeciesAuthor == "" {
		return ""
	}
	res := sp.AuthoritySpeciesAuthor
	if sp.AuthoritySpeciesYear > 0 {
		res = fmt.Sprintf("%s, %d", res, sp.AuthoritySpeciesYear)
	}
	if sp.AuthorityParentheses == 1 {
		res = "(" + res + ")"
	}
	return res
}

// Row returns the record's cells in species CSV schema order, for CSV
// re-export.
func (sp Species) Row() []string {
	return []string{
		strconv.Itoa(sp.ID), sp.SciName, sp.MainCommonName,
		sp.OtherCommonNames, strconv.Itoa(sp.Phylosort), sp.Subclass,
		sp.Infraclass, sp.Magnorder, sp.Superorder, sp.TaxonOrder,
		sp.Suborder, sp.Infraorder, sp.Parvorder, sp.Superfamily,
		sp.Family, sp.Subfamily, sp.Tribe, sp.Genus, sp.Subgenus,
		sp.SpecificEpithet, sp.AuthoritySpeciesAuthor,
		strconv.Itoa(sp.AuthoritySpeciesYear),
		strconv.Itoa(sp.AuthorityParentheses),
		sp.OriginalNameCombination, sp.AuthoritySpeciesCitation,
		sp.AuthoritySpeciesLink, sp.TypeVoucher, sp.TypeKind,
		sp.TypeVoucherURIs, sp.TypeLocality, sp.TypeLocalityLatitude,
		sp.TypeLocalityLongitude, sp.NominalNames, sp.TaxonomyNotes,
		sp.TaxonomyNotesCitation, sp.DistributionNotes,
		sp.DistributionNotesCitation, sp.SubregionDistribution,
		sp.CountryDistribution, sp.ContinentDistribution,
		sp.BiogeographicRealm, sp.IUCNStatus, strconv.Itoa(sp.Extinct),
		strconv.Itoa(sp.Domestic), strconv.Itoa(sp.Flagged),
		sp.CMWSciName, strconv.Itoa(sp.DiffSinceCMW), sp.MSW3MatchType,
		sp.MSW3SciName, sp.DiffSinceMSW3,
	}
}
