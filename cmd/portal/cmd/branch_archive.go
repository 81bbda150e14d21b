package cmd

import (
	"github.com/anishTP/echo-portal-sub004/pkg/lifecycle"
	"github.com/spf13/cobra"
)

var branchArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive a branch",
	Long:  `Archive a branch. Archived branches accept no further edits or reviews.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBranchTransition(cmd, lifecycle.EventArchive)
	},
}

func init() {
	requiredFlags := []string{addBranchFlag(branchArchiveCmd), addActorFlags(branchArchiveCmd)}
	addReasonFlag(branchArchiveCmd)
	addFormatFlag(branchArchiveCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := branchArchiveCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	branchCmd.AddCommand(branchArchiveCmd)
}
