package release

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/mdverse/mddx/pkg/errcode"
)

// ParseError creates an error for a descriptor that is not valid TOML.
func ParseError(err error) error {
	msg := `Release descriptor is not valid TOML

<em>How to fix:</em>
  1. Check the descriptor against the release.toml format
  2. Verify the [metadata] table exists`

	return &gn.Error{
		Code: errcode.ReleaseParseError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot parse release descriptor: %w", err),
	}
}

// MissingMetadataError creates an error for a descriptor that lacks
// required keys.
func MissingMetadataError(keys []string) error {
	msg := `Release descriptor is missing required keys

<em>Missing keys:</em> %s

<em>How to fix:</em>
  1. Add the keys to the [metadata] table
  2. Or pass --mdd and --date overrides instead of a descriptor`

	vars := []any{strings.Join(keys, ", ")}

	return &gn.Error{
		Code: errcode.ReleaseMissingMetadataError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("descriptor lacks required keys: %s",
			strings.Join(keys, ", ")),
	}
}

// ReadError creates an error for an unreadable descriptor file.
func ReadError(path string, err error) error {
	msg := "Cannot read release descriptor <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}
