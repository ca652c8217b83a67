// Package bundle composes parsed MDD records into the two output shapes:
// the unfiltered full bundle and the filtered released bundle.
package bundle

import (
	"context"

	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"

	"github.com/mdverse/mddx/pkg/country"
	"github.com/mdverse/mddx/pkg/mdd"
	"github.com/mdverse/mddx/pkg/parserpool"
)

// Full is the unfiltered bundle: all species plus all synonym records,
// orphans included. It requires no release metadata.
type Full struct {
	Species  []mdd.Species `json:"data"`
	Synonyms []mdd.Synonym `json:"synonyms"`
}

// NewFull pairs species and synonym sequences without filtering.
func NewFull(species []mdd.Species, synonyms []mdd.Synonym) *Full {
	return &Full{Species: species, Synonyms: synonyms}
}

// Summary carries aggregate counts for a released bundle.
type Summary struct {
	SpeciesCount int `json:"speciesCount"`
	SynonymCount int `json:"synonymCount"`
	CountryCount int `json:"countryCount"`
}

// SpeciesView is the simplified species projection used in released
// bundles: identity, names, the taxonomic core, distribution and status,
// plus the resolved synonyms attached to the species.
type SpeciesView struct {
	ID int `json:"id"`
	// RecordUUID is the deterministic UUID v5 of the scientific name,
	// following the GlobalNames name-string identity convention.
	RecordUUID string `json:"recordUuid"`
	SciName    string `json:"sciName"`
	// CanonicalName is filled by EnrichNames when a parser pool is
	// available.
	CanonicalName       string        `json:"canonicalName,omitempty"`
	Authority           string        `json:"authority,omitempty"`
	MainCommonName      string        `json:"mainCommonName"`
	TaxonOrder          string        `json:"order"`
	Family              string        `json:"family"`
	Genus               string        `json:"genus"`
	CountryDistribution string        `json:"countryDistribution"`
	IUCNStatus          string        `json:"iucnStatus"`
	Extinct             int           `json:"extinct"`
	Synonyms            []mdd.Synonym `json:"synonyms"`
}

// Released is the filtered bundle: species projections with only their
// resolved synonyms, plus release metadata and a computed summary.
type Released struct {
	Version     string        `json:"version"`
	ReleaseDate string        `json:"releaseDate"`
	DOI         string        `json:"doi,omitempty"`
	Summary     Summary       `json:"summary"`
	Species     []SpeciesView `json:"data"`
}

// Option modifies released-bundle construction.
type Option func(*builder)

type builder struct {
	doi   string
	stats *country.Stats
}

// OptDOI attaches a DOI to the released bundle.
func OptDOI(s string) Option {
	return func(b *builder) {
		b.doi = s
	}
}

// OptStats supplies precomputed country statistics so the builder does not
// aggregate a second time.
func OptStats(st *country.Stats) Option {
	return func(b *builder) {
		b.stats = st
	}
}

// NewReleased builds the released bundle. It resolves synonyms against the
// species sequence, attaches only resolved groups (orphans stay out of the
// bundle; the Resolve result keeps them countable), and computes the
// summary from the country aggregation. Empty version or date is an
// invalid-metadata error.
func NewReleased(
	species []mdd.Species,
	synonyms []mdd.Synonym,
	version, date string,
	opts ...Option,
) (*Released, error) {
	if version == "" || date == "" {
		return nil, InvalidMetadataError(version, date)
	}

	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	if b.stats == nil {
		lookup, err := country.NewLookup()
		if err != nil {
			return nil, err
		}
		b.stats = lookup.Aggregate(species)
	}

	resolution := mdd.Resolve(species, synonyms)

	views := make([]SpeciesView, len(species))
	for i, sp := range species {
		views[i] = SpeciesView{
			ID:                  sp.ID,
			RecordUUID:          gnuuid.New(sp.SciName).String(),
			SciName:             sp.SciName,
			Authority:           sp.Authority(),
			MainCommonName:      sp.MainCommonName,
			TaxonOrder:          sp.TaxonOrder,
			Family:              sp.Family,
			Genus:               sp.Genus,
			CountryDistribution: sp.CountryDistribution,
			IUCNStatus:          sp.IUCNStatus,
			Extinct:             sp.Extinct,
			Synonyms:            resolution.Groups[sp.ID],
		}
	}

	res := &Released{
		Version:     version,
		ReleaseDate: date,
		DOI:         b.doi,
		Summary: Summary{
			SpeciesCount: len(species),
			SynonymCount: resolution.ResolvedCount(),
			CountryCount: b.stats.TotalCountries,
		},
		Species: views,
	}
	return res, nil
}

// EnrichNames fills CanonicalName for every species view by parsing the
// scientific name. Work is spread over jobsNum workers; rows are
// independent, so order of completion does not matter. The optional tick
// callback fires once per processed record (progress reporting).
func (r *Released) EnrichNames(
	pool parserpool.Pool,
	jobsNum int,
	tick func(),
) error {
	if jobsNum < 1 {
		jobsNum = 1
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(jobsNum)

	for i := range r.Species {
		g.Go(func() error {
			parsed := pool.Parse(r.Species[i].SciName)
			if parsed.Parsed && parsed.Canonical != nil {
				r.Species[i].CanonicalName = parsed.Canonical.Simple
			}
			if tick != nil {
				tick()
			}
			return nil
		})
	}
	return g.Wait()
}
