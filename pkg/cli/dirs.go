package cli

import (
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/replicatedhq/treesize/pkg/treesize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Dirs lists directories by aggregated size
func Dirs(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirs [TRANSCRIPT]",
		Short: "List directories whose total size lies within a range",
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			_ = v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(v, args, (*treesize.App).Dirs)
		},
	}

	cmd.Flags().Int64(constants.MinSizeFlag, 0, "Smallest size listed")
	cmd.Flags().Int64(constants.MaxSizeFlag, -1, "Largest size listed, negative for no limit")
	cmd.Flags().Bool(constants.IncludeRootFlag, true, "List the root directory too")

	return cmd
}
