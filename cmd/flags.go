package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mddx "github.com/mdverse/mddx/pkg"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", mddx.Version, mddx.Build)
		os.Exit(0)
	}
}
