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
	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/mdverse/mddx/internal/ioarchive"
	"github.com/mdverse/mddx/pkg/config"
	"github.com/mdverse/mddx/pkg/release"
)

// getZipCmd returns the zip command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getZipCmd() *cobra.Command {
	var (
		input, output string
		plainText     bool
		prefix        string
		withFull      bool
	)

	zipCmd := &cobra.Command{
		Use:   "zip",
		Short: "Parse and export MDD data from a release ZIP archive",
		Long: `Open an MDD release archive, locate the species CSV (MDD_v*.csv),
the synonym CSV (Species_Syn_v*.csv) and the optional release.toml
descriptor, and run the JSON export pipeline on them.

When the archive carries release.toml, its version and release date
become the bundle metadata; otherwise both are inferred from the
species file name and the archive modification time.

Examples:
  mddx zip -i MDD.zip -o ./out
  mddx zip -i MDD_2025_1.zip -o ./out --prefix mdd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if cmd.Flags().Changed("plain-text") {
				opts = append(opts, config.OptExportPlainText(plainText))
			}
			if prefix != "" {
				opts = append(opts, config.OptExportPrefix(prefix))
			}
			if withFull {
				opts = append(opts, config.OptExportWithFull(true))
			}
			cfg.Update(opts)

			return runZip(input, output)
		},
	}

	zipCmd.Flags().StringVarP(&input, "input", "i", "MDD.zip",
		"input MDD ZIP file")
	zipCmd.Flags().StringVarP(&output, "output", "o", ".",
		"output directory")
	zipCmd.Flags().BoolVarP(&plainText, "plain-text", "p", true,
		"also export uncompressed JSON")
	zipCmd.Flags().StringVar(&prefix, "prefix", "",
		"add prefix to output files")
	zipCmd.Flags().BoolVar(&withFull, "full", false,
		"also export the unfiltered full bundle")

	return zipCmd
}

func runZip(input, output string) error {
	gn.Info("Scanning archive <em>%s</em>", input)
	assets, err := ioarchive.Scan(input)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var meta *release.Metadata
	if assets.Descriptor != nil {
		if meta, err = release.Parse(assets.Descriptor); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("Found release descriptor <em>%s</em>", assets.DescriptorName)
	} else {
		gn.Info("No release.toml found, inferring release metadata")
	}

	exp := exportInput{
		speciesData: assets.Species,
		speciesName: assets.SpeciesName,
		synonymData: assets.Synonyms,
		synonymName: assets.SynonymName,
		datePath:    input,
		outDir:      output,
		meta:        meta,
	}
	if err = exportBundle(exp); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
