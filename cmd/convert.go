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
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/mdverse/mddx/internal/iofs"
	"github.com/mdverse/mddx/internal/iowrite"
	"github.com/mdverse/mddx/pkg/config"
)

// getConvertCmd returns the convert command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getConvertCmd() *cobra.Command {
	var (
		input, output string
		format        string
		prefix        string
	)

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-emit a full bundle as JSON or species CSV",
		Long: `Read a full bundle previously produced with 'json --full' or
'zip --full' (plain .json or .json.gz) and re-emit it either as
indented JSON or as a species CSV with the original MDD column
headings.

Examples:
  mddx convert -i mdd_full.json.gz -o ./out
  mddx convert -i mdd_full.json -o ./out --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prefix != "" {
				cfg.Update([]config.Option{config.OptExportPrefix(prefix)})
			}
			return runConvert(input, output, format)
		},
	}

	convertCmd.Flags().StringVarP(&input, "input", "i", "mdd_full.json.gz",
		"input bundle file (.json or .json.gz)")
	convertCmd.Flags().StringVarP(&output, "output", "o", ".",
		"output directory")
	convertCmd.Flags().StringVarP(&format, "format", "f", "json",
		"output format: json or csv")
	convertCmd.Flags().StringVar(&prefix, "prefix", "",
		"add prefix to output files")

	return convertCmd
}

func runConvert(input, output, format string) error {
	full, err := iowrite.ReadFullBundle(input)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Read %s species and %s synonym records from <em>%s</em>",
		humanize.Comma(int64(len(full.Species))),
		humanize.Comma(int64(len(full.Synonyms))),
		input,
	)

	if err = os.MkdirAll(output, 0755); err != nil {
		err = iofs.CreateDirError(output, err)
		gn.PrintErrorMessage(err)
		return err
	}

	var path string
	switch format {
	case "csv":
		path = filepath.Join(output, cfg.Export.Prefix+".csv")
		err = iowrite.SpeciesCSV(path, full.Species)
	default:
		path = filepath.Join(output, cfg.Export.Prefix+".json")
		err = iowrite.JSON(path, full)
	}
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Wrote <em>%s</em>", path)
	return nil
}
