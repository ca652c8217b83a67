// Package release parses MDD release descriptors.
//
// A descriptor is a TOML file shipped with a release archive:
//
//	[metadata]
//	name = "MDD"
//	version = "2.2.1"
//	release_date = "2024-06-01"
//	mdd_file = "MDD_v2.2_6815species.csv"
//	synonym_file = "Species_Syn_v2.2.csv"
//	doi = "10.5281/zenodo.17033774"
//	remarks = "This is a sample release."
//
// version and release_date are required; doi and remarks are optional and
// stay absent (nil) when not provided. The descriptor is parsed once and
// attached read-only to a released bundle.
package release

import (
	"log/slog"
	"os"
	"regexp"

	"github.com/gnames/gnlib"
	"github.com/pelletier/go-toml/v2"

	"github.com/mdverse/mddx/pkg/config"
)

// Metadata describes one MDD release.
type Metadata struct {
	// Name of the dataset, normally "MDD".
	Name string `toml:"name" json:"name,omitempty"`
	// Version of the release.
	Version string `toml:"version" json:"version"`
	// ReleaseDate is an ISO-like date string.
	ReleaseDate string `toml:"release_date" json:"releaseDate"`
	// MddFile is the species CSV file of this release.
	MddFile string `toml:"mdd_file" json:"mddFile,omitempty"`
	// SynonymFile is the synonym CSV file of this release.
	SynonymFile string `toml:"synonym_file" json:"synonymFile,omitempty"`
	// DOI of the release, if minted.
	DOI *string `toml:"doi" json:"doi,omitempty"`
	// Remarks holds an optional free-form description.
	Remarks *string `toml:"remarks" json:"remarks,omitempty"`
}

// descriptor wraps Metadata under the [metadata] TOML table.
type descriptor struct {
	Metadata Metadata `toml:"metadata"`
}

// Parse reads a release descriptor from TOML bytes. It fails when the
// required keys (version, release_date) are absent; optional keys default
// to absent without error.
func Parse(data []byte) (*Metadata, error) {
	var d descriptor
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, ParseError(err)
	}

	var missing []string
	if d.Metadata.Version == "" {
		missing = append(missing, "version")
	}
	if d.Metadata.ReleaseDate == "" {
		missing = append(missing, "release_date")
	}
	if len(missing) > 0 {
		return nil, MissingMetadataError(missing)
	}

	checkVersion(d.Metadata.Version)
	return &d.Metadata, nil
}

// FromFile reads and parses a release descriptor from disk.
func FromFile(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	return Parse(data)
}

// checkVersion warns about descriptor versions that do not look like
// semantic versions or predate the current CSV column layout. Both
// conditions are advisory only.
func checkVersion(version string) {
	if !gnlib.IsVersion(version) {
		slog.Warn("Release version is not semantic", "version", version)
		return
	}
	if gnlib.CmpVersion(version, config.MinVersionMDD) < 0 {
		slog.Warn("Release predates the current MDD column layout",
			"version", version, "min_version", config.MinVersionMDD)
	}
}

// versionRe captures the release version from a species file name such as
// MDD_v2.2_6815species.csv.
var versionRe = regexp.MustCompile(`MDD_v(\d+\.\d+(?:\.\d+)?)`)

// VersionFromFilename infers the release version from the species file
// name. Returns "unknown" when the name carries no version.
func VersionFromFilename(name string) string {
	caps := versionRe.FindStringSubmatch(name)
	if caps == nil {
		return "unknown"
	}
	return caps[1]
}
