package cmd

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/spf13/cobra"
)

var reviewApproveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve a review",
	Long: "Complete a review with an approval. " +
		"The branch advances once the approval quorum is reached, " +
		"never on automated approvals alone.",
	Run: func(cmd *cobra.Command, args []string) {
		runDecision(cmd, model.DecisionApproved)
	},
}

// runDecision completes the review named by the flags with a decision.
func runDecision(cmd *cobra.Command, decision model.ReviewDecision) {
	ctx := context.Background()
	actor, err := paramsToActor(portalFlags)
	if err != nil {
		wrapFatalln("resolve actor", err)
		return
	}
	stores := mustOpenStores()
	defer func() { _ = stores.Close() }()

	completed, err := newReviewEngine(stores).SubmitDecision(ctx,
		portalFlags.review.ID, decision, actor)
	if err != nil {
		wrapFatalln("submit decision", err)
		return
	}
	print(cmd, completed)
}

func init() {
	requiredFlags := []string{addReviewFlag(reviewApproveCmd), addActorFlags(reviewApproveCmd)}
	addFormatFlag(reviewApproveCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := reviewApproveCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	reviewCmd.AddCommand(reviewApproveCmd)
}
