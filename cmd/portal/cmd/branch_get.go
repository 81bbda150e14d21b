package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var branchGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a branch descriptor",
	Long:  `Get the descriptor of a branch, including its state, owner and assigned reviewers.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		branch, err := stores.Branches.Get(ctx, portalFlags.branch.ID)
		if err != nil {
			wrapFatalln("get branch", err)
			return
		}
		print(cmd, branch)
	},
}

func init() {
	requiredFlags := []string{addBranchFlag(branchGetCmd)}
	addFormatFlag(branchGetCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := branchGetCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	branchCmd.AddCommand(branchGetCmd)
}
