/*
Copyright © 2025 The mddx authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"

	"github.com/mdverse/mddx/internal/iofs"
	"github.com/mdverse/mddx/internal/iowrite"
	"github.com/mdverse/mddx/pkg/bundle"
	"github.com/mdverse/mddx/pkg/config"
	"github.com/mdverse/mddx/pkg/country"
	"github.com/mdverse/mddx/pkg/mdd"
	"github.com/mdverse/mddx/pkg/parserpool"
	"github.com/mdverse/mddx/pkg/release"
)

const (
	countryStatsFile  = "country_stats.json"
	countryRegionFile = "country_region_code.json"
)

// getJSONCmd returns the json command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getJSONCmd() *cobra.Command {
	var (
		input, synonym, output string
		plainText, withFull    bool
		mddVersion, date       string
		prefix                 string
		limit                  int
	)

	jsonCmd := &cobra.Command{
		Use:   "json",
		Short: "Parse and export MDD data to JSON",
		Long: `Parse MDD species and synonym CSV files and export the released
JSON bundle, per-country diversity statistics and the country
region-code table.

The release version comes from --mdd, or from the species file name
(MDD_v2.2_6815species.csv yields 2.2). The release date comes from
--date, or from the species file modification time.

Examples:
  mddx json -i MDD_v2.2_6815species.csv -s Species_Syn_v2.2.csv -o ./out
  mddx json -i data.csv -s synonyms.csv --mdd=2.2 --date 2025-08-05
  mddx json -i data.csv -s synonyms.csv --limit 100 --prefix sample`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if cmd.Flags().Changed("plain-text") {
				opts = append(opts, config.OptExportPlainText(plainText))
			}
			if prefix != "" {
				opts = append(opts, config.OptExportPrefix(prefix))
			}
			if mddVersion != "" {
				opts = append(opts, config.OptExportVersion(mddVersion))
			}
			if date != "" {
				opts = append(opts, config.OptExportReleaseDate(date))
			}
			if limit > 0 {
				opts = append(opts, config.OptExportLimit(limit))
			}
			if withFull {
				opts = append(opts, config.OptExportWithFull(true))
			}
			cfg.Update(opts)

			return runJSON(input, synonym, output)
		},
	}

	jsonCmd.Flags().StringVarP(&input, "input", "i", "data.csv",
		"input MDD species CSV file")
	jsonCmd.Flags().StringVarP(&synonym, "synonym", "s", "synonyms.csv",
		"input synonyms CSV file")
	jsonCmd.Flags().StringVarP(&output, "output", "o", ".",
		"output directory")
	jsonCmd.Flags().BoolVarP(&plainText, "plain-text", "p", true,
		"also export uncompressed JSON")
	jsonCmd.Flags().StringVar(&mddVersion, "mdd", "",
		"MDD data version")
	jsonCmd.Flags().StringVar(&date, "date", "",
		"MDD release date (YYYY-MM-DD)")
	jsonCmd.Flags().IntVar(&limit, "limit", 0,
		"limit number of records")
	jsonCmd.Flags().StringVar(&prefix, "prefix", "",
		"add prefix to output files")
	jsonCmd.Flags().BoolVar(&withFull, "full", false,
		"also export the unfiltered full bundle")

	return jsonCmd
}

func runJSON(input, synonym, output string) error {
	speciesData, err := os.ReadFile(input)
	if err != nil {
		err = iofs.ReadFileError(input, err)
		gn.PrintErrorMessage(err)
		return err
	}
	synonymData, err := os.ReadFile(synonym)
	if err != nil {
		err = iofs.ReadFileError(synonym, err)
		gn.PrintErrorMessage(err)
		return err
	}

	exp := exportInput{
		speciesData: speciesData,
		speciesName: filepath.Base(input),
		synonymData: synonymData,
		synonymName: filepath.Base(synonym),
		datePath:    input,
		outDir:      output,
	}
	if err = exportBundle(exp); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}

// exportInput carries everything the export pipeline needs; the json and
// zip commands both feed it.
type exportInput struct {
	speciesData []byte
	speciesName string
	synonymData []byte
	synonymName string
	// datePath is the file whose modification time becomes the release
	// date when no descriptor or override supplies one.
	datePath string
	outDir   string
	// meta is the release descriptor, nil when absent.
	meta *release.Metadata
}

// exportBundle runs the shared export pipeline: parse both CSV files,
// aggregate country statistics, infer release metadata, build the
// released bundle, enrich it with canonical name forms and write all
// outputs.
func exportBundle(exp exportInput) error {
	start := time.Now()

	gn.Info("Parsing species data from <em>%s</em>", exp.speciesName)
	species, badSpecies, err := mdd.ParseSpecies(bytes.NewReader(exp.speciesData))
	if err != nil {
		return err
	}
	reportSkippedRows(exp.speciesName, badSpecies)
	gn.Info("Found %s species records", humanize.Comma(int64(len(species))))

	gn.Info("Parsing synonym data from <em>%s</em>", exp.synonymName)
	synonyms, badSynonyms, err := mdd.ParseSynonyms(bytes.NewReader(exp.synonymData))
	if err != nil {
		return err
	}
	reportSkippedRows(exp.synonymName, badSynonyms)
	gn.Info("Found %s synonym records", humanize.Comma(int64(len(synonyms))))
	if len(synonyms) == 0 {
		gn.Warn("No synonym data found")
	}

	lookup, err := country.NewLookup()
	if err != nil {
		return err
	}
	stats := lookup.Aggregate(species)
	gn.Info(
		"Total countries and regions: %d, domesticated species: %d, "+
			"widespread species: %d",
		stats.TotalCountries, len(stats.Domesticated), len(stats.Widespread),
	)

	if limit := cfg.Export.Limit; limit > 0 {
		if limit < len(species) {
			species = species[:limit]
		}
		if limit < len(synonyms) {
			synonyms = synonyms[:limit]
		}
		gn.Info("Truncated input to %d records", limit)
	}

	version, date, err := releaseData(exp)
	if err != nil {
		return err
	}
	gn.Info("Using MDD version %s, released %s", version, date)

	opts := []bundle.Option{bundle.OptStats(stats)}
	if exp.meta != nil && exp.meta.DOI != nil {
		opts = append(opts, bundle.OptDOI(*exp.meta.DOI))
	}
	rel, err := bundle.NewReleased(species, synonyms, version, date, opts...)
	if err != nil {
		return err
	}
	orphans := len(synonyms) - rel.Summary.SynonymCount
	slog.Info("Resolved synonyms",
		"resolved", rel.Summary.SynonymCount, "orphans", orphans)

	pool := parserpool.NewPool(cfg.JobsNumber)
	defer pool.Close()
	bar := iowrite.NewProgressBar(len(rel.Species), "canonical names ")
	err = rel.EnrichNames(pool, cfg.JobsNumber, func() { bar.Increment() })
	bar.Finish()
	if err != nil {
		return err
	}

	if err = os.MkdirAll(exp.outDir, 0755); err != nil {
		return iofs.CreateDirError(exp.outDir, err)
	}

	paths, err := iowrite.Bundle(
		exp.outDir, cfg.Export.Prefix, cfg.Export.PlainText, rel,
	)
	if err != nil {
		return err
	}
	if cfg.Export.WithFull {
		full := bundle.NewFull(species, synonyms)
		fullPaths, err := iowrite.Bundle(
			exp.outDir, cfg.Export.Prefix+"_full", cfg.Export.PlainText, full,
		)
		if err != nil {
			return err
		}
		paths = append(paths, fullPaths...)
	}

	statsPath := filepath.Join(exp.outDir, countryStatsFile)
	if err = iowrite.JSON(statsPath, stats); err != nil {
		return err
	}
	regionPath := filepath.Join(exp.outDir, countryRegionFile)
	if err = iowrite.JSON(regionPath, lookup.Regions()); err != nil {
		return err
	}
	paths = append(paths, statsPath, regionPath)

	for _, p := range paths {
		gn.Info("Wrote <em>%s</em>", p)
	}
	gn.Info("Export finished in %s",
		gnfmt.TimeString(time.Since(start).Seconds()))
	return nil
}

// releaseData resolves the bundle version and release date. Precedence:
// CLI override, release descriptor, inference from the species file name
// and modification time.
func releaseData(exp exportInput) (string, string, error) {
	version := cfg.Export.Version
	if version == "" && exp.meta != nil {
		version = exp.meta.Version
	}
	if version == "" {
		version = release.VersionFromFilename(exp.speciesName)
	}

	date := cfg.Export.ReleaseDate
	if date == "" && exp.meta != nil {
		date = exp.meta.ReleaseDate
	}
	if date == "" {
		var err error
		date, err = iofs.ModTimeDate(exp.datePath)
		if err != nil {
			return "", "", err
		}
	}
	return version, date, nil
}

func reportSkippedRows(file string, bad []mdd.RowError) {
	if len(bad) == 0 {
		return
	}
	for _, re := range bad {
		slog.Warn("Skipped malformed row", "file", file, "row", re.String())
	}
	gn.PrintErrorMessage(mdd.MalformedRowsError(file, bad))
}
