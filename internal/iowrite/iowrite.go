// Package iowrite serializes bundles and country statistics to disk:
// plain JSON, gzip-compressed JSON and the species CSV re-export.
package iowrite

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnfmt"

	"github.com/mdverse/mddx/pkg/bundle"
	"github.com/mdverse/mddx/pkg/mdd"
)

const (
	jsonExt = ".json"
	gzExt   = ".json.gz"
)

// JSON writes v as indented JSON to path.
func JSON(path string, v any) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(v)
	if err != nil {
		return EncodeError(path, err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return WriteError(path, err)
	}
	return nil
}

// GzipJSON writes v as compact JSON, gzip-compressed, to path.
func GzipJSON(path string, v any) error {
	enc := gnfmt.GNjson{}
	data, err := enc.Encode(v)
	if err != nil {
		return EncodeError(path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if _, err = zw.Write(data); err != nil {
		return WriteError(path, err)
	}
	if err = zw.Close(); err != nil {
		return WriteError(path, err)
	}
	return nil
}

// Bundle writes v under dir as <prefix>.json.gz and, when plainText is
// set, <prefix>.json as well. It returns the paths written.
func Bundle(dir, prefix string, plainText bool, v any) ([]string, error) {
	var res []string

	gzPath := filepath.Join(dir, prefix+gzExt)
	if err := GzipJSON(gzPath, v); err != nil {
		return nil, err
	}
	res = append(res, gzPath)

	if plainText {
		jsonPath := filepath.Join(dir, prefix+jsonExt)
		if err := JSON(jsonPath, v); err != nil {
			return nil, err
		}
		res = append(res, jsonPath)
	}
	return res, nil
}

// SpeciesCSV re-exports species records as CSV with the original MDD
// column headings.
func SpeciesCSV(path string, species []mdd.Species) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(mdd.SpeciesHeader()); err != nil {
		return WriteError(path, err)
	}
	for _, sp := range species {
		if err = w.Write(sp.Row()); err != nil {
			return WriteError(path, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return WriteError(path, err)
	}
	return nil
}

// ReadFullBundle loads a full bundle previously written by Bundle. Gzip
// input is detected by the .gz extension.
func ReadFullBundle(path string) (*bundle.Full, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, ReadError(path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ReadError(path, err)
	}

	enc := gnfmt.GNjson{}
	var res bundle.Full
	if err = enc.Decode(data, &res); err != nil {
		return nil, DecodeError(path, err)
	}
	return &res, nil
}
