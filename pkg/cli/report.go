package cli

import (
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/replicatedhq/treesize/pkg/treesize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Report prints the bounded-sum and minimum-to-free reports
func Report(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [TRANSCRIPT]",
		Short: "Sum small directories and find the smallest directory to delete",
		Long: `report prints two numbers for the tree described by TRANSCRIPT:

- the total size of all directories of at most --threshold, where nested
  directories count at every level they qualify
- the size of the smallest directory whose deletion leaves --space-needed
  free on a device of --total-space
`,
		Args: cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			_ = v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(v, args, (*treesize.App).Report)
		},
	}

	cmd.Flags().Int64(constants.ThresholdFlag, constants.DefaultThreshold, "Largest directory size included in the sum")
	cmd.Flags().Int64(constants.TotalSpaceFlag, constants.DefaultTotalSpace, "Capacity of the device")
	cmd.Flags().Int64(constants.SpaceNeededFlag, constants.DefaultSpaceNeeded, "Free space required after deleting one directory")

	return cmd
}
