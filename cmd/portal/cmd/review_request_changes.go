package cmd

import (
	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/spf13/cobra"
)

var reviewRequestChangesCmd = &cobra.Command{
	Use:   "request-changes",
	Short: "Request changes on a review",
	Long: "Complete a review with a request for changes. " +
		"A single veto sends the branch back to draft and opens a new review cycle.",
	Run: func(cmd *cobra.Command, args []string) {
		runDecision(cmd, model.DecisionChangesRequested)
	},
}

func init() {
	requiredFlags := []string{
		addReviewFlag(reviewRequestChangesCmd),
		addActorFlags(reviewRequestChangesCmd),
	}
	addFormatFlag(reviewRequestChangesCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := reviewRequestChangesCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	reviewCmd.AddCommand(reviewRequestChangesCmd)
}
