package cmd

import (
	"github.com/anishTP/echo-portal-sub004/pkg/lifecycle"
	"github.com/spf13/cobra"
)

var branchSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a draft branch for review",
	Long:  `Submit a draft branch for review. Only draft branches may be submitted.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBranchTransition(cmd, lifecycle.EventSubmit)
	},
}

func init() {
	requiredFlags := []string{addBranchFlag(branchSubmitCmd), addActorFlags(branchSubmitCmd)}
	addReasonFlag(branchSubmitCmd)
	addFormatFlag(branchSubmitCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := branchSubmitCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	branchCmd.AddCommand(branchSubmitCmd)
}
