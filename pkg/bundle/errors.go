package bundle

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/mdverse/mddx/pkg/errcode"
)

// InvalidMetadataError creates an error for a released bundle built without
// the required version or date.
func InvalidMetadataError(version, date string) error {
	msg := `Released bundle requires a non-empty version and date

<em>Version:</em> %q
<em>Date:</em> %q

<em>How to fix:</em>
  1. Pass --mdd and --date overrides
  2. Or ship a release.toml descriptor with the archive`

	vars := []any{version, date}

	return &gn.Error{
		Code: errcode.BundleInvalidMetadataError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"invalid release metadata: version=%q date=%q", version, date,
		),
	}
}
