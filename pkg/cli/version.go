package cli

import (
	"fmt"

	"github.com/replicatedhq/treesize/pkg/version"
	"github.com/spf13/cobra"
)

// Version prints the build information
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of treesize",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
