package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var reviewerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Assign a reviewer to a branch",
	Long:  `Assign a reviewer to a branch, opening a pending review in the current cycle.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		actor, err := paramsToActor(portalFlags)
		if err != nil {
			wrapFatalln("resolve actor", err)
			return
		}
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		created, err := newReviewEngine(stores).AddReviewer(ctx,
			portalFlags.branch.ID, portalFlags.review.Reviewer, actor)
		if err != nil {
			wrapFatalln("add reviewer", err)
			return
		}
		print(cmd, created)
	},
}

func init() {
	requiredFlags := []string{
		addBranchFlag(reviewerAddCmd),
		addReviewerFlag(reviewerAddCmd),
		addActorFlags(reviewerAddCmd),
	}
	addFormatFlag(reviewerAddCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := reviewerAddCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	reviewerCmd.AddCommand(reviewerAddCmd)
}
