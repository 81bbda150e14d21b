package cmd

import (
	"github.com/anishTP/echo-portal-sub004/pkg/lifecycle"
	"github.com/spf13/cobra"
)

var branchPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish an approved branch",
	Long:  `Publish an approved branch, making its content the new baseline.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBranchTransition(cmd, lifecycle.EventPublish)
	},
}

func init() {
	requiredFlags := []string{addBranchFlag(branchPublishCmd), addActorFlags(branchPublishCmd)}
	addReasonFlag(branchPublishCmd)
	addFormatFlag(branchPublishCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := branchPublishCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	branchCmd.AddCommand(branchPublishCmd)
}
