package cli

import (
	"github.com/replicatedhq/treesize/pkg/treesize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Tree prints the tree rebuilt from a transcript
func Tree(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [TRANSCRIPT]",
		Short: "Print the directory tree described by a transcript",
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			_ = v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(v, args, (*treesize.App).Tree)
		},
	}

	return cmd
}
