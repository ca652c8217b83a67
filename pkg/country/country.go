package country

import (
	"log/slog"
	"strings"

	"github.com/mdverse/mddx/pkg/mdd"
)

// predictedMarker suffixes a country token when the occurrence is inferred
// rather than confirmed (e.g. "Kenya?").
const predictedMarker = "?"

// Textual countryDistribution labels that exclude a species from country
// statistics.
const (
	labelDomesticated = "domesticated"
	labelUnknown      = "NA"
)

// Stat accumulates per-country species counts. Confirmed and predicted
// occurrences are tracked separately, together with the species identifiers
// that contributed to each count.
type Stat struct {
	Country          string `json:"country"`
	Confirmed        int    `json:"confirmed"`
	Predicted        int    `json:"predicted"`
	ConfirmedSpecies []int  `json:"confirmedSpecies"`
	PredictedSpecies []int  `json:"predictedSpecies"`
}

// Stats is the aggregation result over a species sequence.
type Stats struct {
	// Countries maps canonical (or verbatim-if-unrecognized) country names
	// to their statistics.
	Countries map[string]*Stat `json:"countries"`
	// TotalCountries is the number of distinct country names seen.
	TotalCountries int `json:"totalCountries"`
	// Domesticated collects species excluded for a "domesticated"
	// distribution label.
	Domesticated []int `json:"domesticated"`
	// Widespread collects species excluded for an unknown ("NA")
	// distribution.
	Widespread []int `json:"widespread"`
	// Unrecognized lists verbatim names that missed the lookup table.
	Unrecognized []string `json:"unrecognized,omitempty"`
}

// Aggregate builds per-country statistics from species records.
//
// Species labeled "domesticated" or "NA" (case-insensitive) are excluded
// from all country statistics and land in the Domesticated/Widespread
// buckets instead. A trailing "?" marks a predicted occurrence. Duplicate
// tokens within one species' own list increment counts each occurrence:
// the source field is authoritative per-entry.
func (l *Lookup) Aggregate(species []mdd.Species) *Stats {
	res := &Stats{Countries: make(map[string]*Stat)}
	seenMiss := make(map[string]struct{})

	for _, sp := range species {
		dist := strings.TrimSpace(sp.CountryDistribution)
		if strings.EqualFold(dist, labelDomesticated) {
			res.Domesticated = append(res.Domesticated, sp.ID)
			continue
		}
		if strings.EqualFold(dist, labelUnknown) {
			res.Widespread = append(res.Widespread, sp.ID)
			continue
		}

		for _, tok := range sp.Countries() {
			predicted := strings.HasSuffix(tok, predictedMarker)
			name := strings.TrimSpace(strings.TrimSuffix(tok, predictedMarker))
			if name == "" {
				continue
			}

			canon, ok := l.Canonical(name)
			if !ok {
				if _, dup := seenMiss[name]; !dup {
					seenMiss[name] = struct{}{}
					res.Unrecognized = append(res.Unrecognized, name)
					slog.Warn("Unrecognized country name, keeping verbatim",
						"country", name, "species_id", sp.ID)
				}
			}

			st, exists := res.Countries[canon]
			if !exists {
				st = &Stat{Country: canon}
				res.Countries[canon] = st
			}
			if predicted {
				st.Predicted++
				st.PredictedSpecies = append(st.PredictedSpecies, sp.ID)
			} else {
				st.Confirmed++
				st.ConfirmedSpecies = append(st.ConfirmedSpecies, sp.ID)
			}
		}
	}

	res.TotalCountries = len(res.Countries)
	return res
}

// Excluded reports whether a species identifier was excluded from country
// statistics (domesticated or unknown distribution).
func (s *Stats) Excluded(speciesID int) bool {
	for _, id := range s.Domesticated {
		if id == speciesID {
			return true
		}
	}
	for _, id := range s.Widespread {
		if id == speciesID {
			return true
		}
	}
	return false
}
