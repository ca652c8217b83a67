// Package country aggregates per-country species distribution statistics
// from MDD species records.
//
// Country names in the source data are inconsistent, so aggregation runs
// through a lookup table: a partial function from verbatim spellings to
// canonical names. Unrecognized names are valid, expected input; they pass
// through verbatim and are reported as warnings, never as failures.
package country

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gnames/gn"
	"github.com/mdverse/mddx/pkg/errcode"
)

//go:embed countries.yaml
var countriesYAML []byte

// RegionCode links a canonical country name with its ISO 3166 alpha-2 code
// and continental region.
type RegionCode struct {
	Name   string `yaml:"name" json:"name"`
	Code   string `yaml:"code" json:"code"`
	Region string `yaml:"region" json:"region"`
}

// Lookup normalizes country names. It is immutable after creation; build it
// once at process start and pass it by reference into the aggregator.
type Lookup struct {
	known   map[string]struct{}
	aliases map[string]string
	regions []RegionCode
}

type lookupData struct {
	Countries []RegionCode      `yaml:"countries"`
	Aliases   map[string]string `yaml:"aliases"`
}

// NewLookup builds the lookup from the embedded tables.
func NewLookup() (*Lookup, error) {
	var data lookupData
	if err := yaml.Unmarshal(countriesYAML, &data); err != nil {
		return nil, lookupDataError(err)
	}

	res := &Lookup{
		known:   make(map[string]struct{}, len(data.Countries)),
		aliases: data.Aliases,
		regions: data.Countries,
	}
	for _, c := range data.Countries {
		res.known[c.Name] = struct{}{}
	}
	return res, nil
}

// Canonical maps a verbatim country name to its canonical form. The second
// return value reports whether the name was recognized; unrecognized names
// come back verbatim.
func (l *Lookup) Canonical(name string) (string, bool) {
	if canon, ok := l.aliases[name]; ok {
		return canon, true
	}
	if _, ok := l.known[name]; ok {
		return name, true
	}
	return name, false
}

// Regions returns the country/region-code table in its embedded order.
func (l *Lookup) Regions() []RegionCode {
	res := make([]RegionCode, len(l.regions))
	copy(res, l.regions)
	return res
}

func lookupDataError(err error) error {
	msg := "Embedded country lookup table is not valid YAML"

	return &gn.Error{
		Code: errcode.CountryLookupError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot parse countries.yaml: %w", err),
	}
}
