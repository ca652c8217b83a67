// Package ioarchive reads MDD release archives. A release ZIP carries a
// species CSV (MDD_v*.csv), a synonym CSV (Species_Syn_v*.csv) and,
// starting with recent releases, a release.toml descriptor.
package ioarchive

import (
	"archive/zip"
	"io"
	"path"
	"strings"
)

// Assets holds the raw contents of the recognized archive entries.
// Descriptor is nil when the archive carries no release.toml.
type Assets struct {
	SpeciesName string
	Species     []byte

	SynonymName string
	Synonyms    []byte

	DescriptorName string
	Descriptor     []byte
}

// Scan opens a release archive and extracts the species CSV, the synonym
// CSV and the optional release.toml descriptor. Entries are matched by
// base name, so archives with a top-level directory work too. Both CSV
// files must be present.
func Scan(zipPath string) (*Assets, error) {
	rc, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, OpenError(zipPath, err)
	}
	defer rc.Close()

	res := &Assets{}
	for _, f := range rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		base := path.Base(f.Name)
		switch {
		case isSpeciesEntry(base):
			res.SpeciesName = base
			res.Species, err = readEntry(f)
		case isSynonymEntry(base):
			res.SynonymName = base
			res.Synonyms, err = readEntry(f)
		case strings.HasSuffix(base, "release.toml"):
			res.DescriptorName = base
			res.Descriptor, err = readEntry(f)
		}
		if err != nil {
			return nil, EntryReadError(f.Name, err)
		}
	}

	if res.Species == nil {
		return nil, EntryNotFoundError(zipPath, "MDD_v*.csv")
	}
	if res.Synonyms == nil {
		return nil, EntryNotFoundError(zipPath, "Species_Syn_v*.csv")
	}
	return res, nil
}

func isSpeciesEntry(base string) bool {
	return strings.HasPrefix(base, "MDD_v") &&
		strings.HasSuffix(base, ".csv")
}

func isSynonymEntry(base string) bool {
	return strings.HasPrefix(base, "Species_Syn_v") &&
		strings.HasSuffix(base, ".csv")
}

func readEntry(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
