package mdd

import (
	"io"
)

// Synonym is a single row from the MDD synonym CSV export.
//
// A synonym normally points at its accepted species through SpeciesID.
// Synonym-only rows (an empty species_id cell) are legal input: the linkage
// is simply absent and the record is later classified as an orphan. Absence
// is modeled as a nil pointer, not a sentinel value.
type Synonym struct {
	// ID is the unique synonym identifier (MDD_syn_id column).
	ID int `json:"synId"`
	// HespID is the identifier of the record in the Hesperomys database.
	HespID int `json:"hespId"`
	// SpeciesID is the accepted species identifier; nil for synonym-only
	// rows.
	SpeciesID *int `json:"speciesId,omitempty"`
	// Species is the accepted species name as spelled in the synonym table.
	Species string `json:"species"`
	// RootName is the root (epithet) portion of the synonym name.
	RootName string `json:"rootName"`
	Author   string `json:"author"`
	// Year stays textual: the source contains ranges and uncertain markers.
	Year                 string `json:"year"`
	AuthorityParentheses string `json:"authorityParentheses"`
	NomenclatureStatus   string `json:"nomenclatureStatus"`
	Validity             string `json:"validity"`
	OriginalCombination  string `json:"originalCombination"`
	OriginalRank         string `json:"originalRank"`
	AuthorityCitation    string `json:"authorityCitation"`
	// UncheckedAuthorityCitation and friends hold citations that MDD
	// editors have not verified yet.
	UncheckedAuthorityCitation  string `json:"uncheckedAuthorityCitation"`
	SourcedUnverifiedCitations  string `json:"sourcedUnverifiedCitations"`
	CitationGroup               string `json:"citationGroup"`
	CitationKind                string `json:"citationKind"`
	AuthorityPage               string `json:"authorityPage"`
	AuthorityLink               string `json:"authorityLink"`
	AuthorityPageLink           string `json:"authorityPageLink"`
	UncheckedAuthorityPageLink  string `json:"uncheckedAuthorityPageLink"`
	OldTypeLocality             string `json:"oldTypeLocality"`
	OriginalTypeLocality        string `json:"originalTypeLocality"`
	UncheckedTypeLocality       string `json:"uncheckedTypeLocality"`
	EmendedTypeLocality         string `json:"emendedTypeLocality"`
	TypeLatitude                string `json:"typeLatitude"`
	TypeLongitude               string `json:"typeLongitude"`
	TypeCountry                 string `json:"typeCountry"`
	TypeSubregion               string `json:"typeSubregion"`
	TypeSubregion2              string `json:"typeSubregion2"`
	Holotype                    string `json:"holotype"`
	TypeKind                    string `json:"typeKind"`
	TypeSpecimenLink            string `json:"typeSpecimenLink"`
	TaxonOrder                  string `json:"order"`
	Family                      string `json:"family"`
	Genus                       string `json:"genus"`
	SpecificEpithet             string `json:"specificEpithet"`
	SubspecificEpithet          string `json:"subspecificEpithet"`
	VariantOf                   string `json:"variantOf"`
	SeniorHomonym               string `json:"seniorHomonym"`
	VariantNameCitations        string `json:"variantNameCitations"`
	NameUsages                  string `json:"nameUsages"`
	Comments                    string `json:"comments"`
}

// ParseSynonyms reads the synonym CSV and returns typed records in input
// row order. The accepted-species-identifier column is optional content: an
// empty cell yields an absent linkage, never a parse error. Row and schema
// failure semantics match ParseSpecies; the identity column here is the
// synonym id.
func ParseSynonyms(r io.Reader) ([]Synonym, []RowError, error) {
	var res []Synonym
	bad, err := parseTable(r, []string{"synId", "rootName"},
		func(rw row) {
			res = append(res, synonymFromRow(rw))
		})
	if err != nil {
		return nil, nil, err
	}
	return res, bad, nil
}

func synonymFromRow(r row) Synonym {
	return Synonym{
		ID:                         r.fieldInt("synId"),
		HespID:                     r.fieldInt("hespId"),
		SpeciesID:                  r.fieldIntPtr("speciesId"),
		Species:                    r.field("species"),
		RootName:                   r.field("rootName"),
		Author:                     r.field("author"),
		Year:                       r.field("year"),
		AuthorityParentheses:       r.field("authorityParentheses"),
		NomenclatureStatus:         r.field("nomenclatureStatus"),
		Validity:                   r.field("validity"),
		OriginalCombination:        r.field("originalCombination"),
		OriginalRank:               r.field("originalRank"),
		AuthorityCitation:          r.field("authorityCitation"),
		UncheckedAuthorityCitation: r.field("uncheckedAuthorityCitation"),
		SourcedUnverifiedCitations: r.field("sourcedUnverifiedCitations"),
		CitationGroup:              r.field("citationGroup"),
		CitationKind:               r.field("citationKind"),
		AuthorityPage:              r.field("authorityPage"),
		AuthorityLink:              r.field("authorityLink"),
		AuthorityPageLink:          r.field("authorityPageLink"),
		UncheckedAuthorityPageLink: r.field("uncheckedAuthorityPageLink"),
		OldTypeLocality:            r.field("oldTypeLocality"),
		OriginalTypeLocality:       r.field("originalTypeLocality"),
		UncheckedTypeLocality:      r.field("uncheckedTypeLocality"),
		EmendedTypeLocality:        r.field("emendedTypeLocality"),
		TypeLatitude:               r.field("typeLatitude"),
		TypeLongitude:              r.field("typeLongitude"),
		TypeCountry:                r.field("typeCountry"),
		TypeSubregion:              r.field("typeSubregion"),
		TypeSubregion2:             r.field("typeSubregion2"),
		Holotype:                   r.field("holotype"),
		TypeKind:                   r.field("typeKind"),
		TypeSpecimenLink:           r.field("typeSpecimenLink"),
		TaxonOrder:                 r.field("order"),
		Family:                     r.field("family"),
		Genus:                      r.field("genus"),
		SpecificEpithet:            r.field("specificEpithet"),
		SubspecificEpithet:         r.field("subspecificEpithet"),
		VariantOf:                  r.field("variantOf"),
		SeniorHomonym:              r.field("seniorHomonym"),
		VariantNameCitations:       r.field("variantNameCitations"),
		NameUsages:                 r.field("nameUsages"),
		Comments:                   r.field("comments"),
	}
}

// synonymColumns is the fixed synonym CSV schema, raw header spellings in
// column order.
var synonymColumns = []string{
	"MDD_syn_id", "hesp_id", "species_id", "species", "root_name",
	"author", "year", "authority_parentheses", "nomenclature_status",
	"validity", "original_combination", "original_rank",
	"authority_citation", "unchecked_authority_citation",
	"sourced_unverified_citations", "citation_group", "citation_kind",
	"authority_page", "authority_link", "authority_page_link",
	"unchecked_authority_page_link", "old_type_locality",
	"original_type_locality", "unchecked_type_locality",
	"emended_type_locality", "type_latitude", "type_longitude",
	"type_country", "type_subregion", "type_subregion2", "holotype",
	"type_kind", "type_specimen_link", "order", "family", "genus",
	"specific_epithet", "subspecific_epithet", "variant_of",
	"senior_homonym", "variant_name_citations", "name_usages", "comments",
}

// SynonymHeader returns the synonym CSV header row with the original
// column spellings. The returned slice is a copy.
func SynonymHeader() []string {
	res := make([]string, len(synonymColumns))
	copy(res, synonymColumns)
	return res
}
