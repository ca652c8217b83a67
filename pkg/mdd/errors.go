package mdd

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/mdverse/mddx/pkg/errcode"
)

// CSVReadError creates an error for an unreadable CSV stream.
func CSVReadError(err error) error {
	msg := "Cannot read CSV data"

	return &gn.Error{
		Code: errcode.CSVReadError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot read csv: %w", err),
	}
}

// MissingSchemaError creates an error for a header row that lacks required
// identity columns. This aborts the whole parse.
func MissingSchemaError(columns []string) error {
	msg := `CSV header is missing required columns

<em>Missing columns:</em> %s

<em>Possible causes:</em>
  - The file is not an MDD release CSV
  - Species and synonym files are swapped

<em>How to fix:</em>
  1. Check the file against the published MDD column set
  2. Verify the species/synonym file arguments`

	vars := []any{strings.Join(columns, ", ")}

	return &gn.Error{
		Code: errcode.CSVMissingSchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"header lacks required columns: %s",
			strings.Join(columns, ", "),
		),
	}
}

// MalformedRowsError creates an aggregate error describing rows rejected
// during a parse. It is informational: parsing already succeeded for the
// remaining rows.
func MalformedRowsError(file string, bad []RowError) error {
	msg := `Skipped %d malformed row(s) in <em>%s</em>

Rows whose column count differs from the header are rejected;
the rest of the file was parsed normally.`

	vars := []any{len(bad), file}

	details := make([]string, len(bad))
	for i, b := range bad {
		details[i] = b.String()
	}

	return &gn.Error{
		Code: errcode.CSVMalformedRowError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("malformed rows in %s: %s",
			file, strings.Join(details, "; ")),
	}
}
