package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var reviewerRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a reviewer from a branch",
	Long: `Remove a reviewer from a branch. Their active reviews are cancelled;
completed reviews and comments are retained.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		actor, err := paramsToActor(portalFlags)
		if err != nil {
			wrapFatalln("resolve actor", err)
			return
		}
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		err = newReviewEngine(stores).RemoveReviewer(ctx,
			portalFlags.branch.ID, portalFlags.review.Reviewer, actor)
		if err != nil {
			wrapFatalln("remove reviewer", err)
			return
		}
		infoLogger.Println("removed", portalFlags.review.Reviewer)
	},
}

func init() {
	requiredFlags := []string{
		addBranchFlag(reviewerRemoveCmd),
		addReviewerFlag(reviewerRemoveCmd),
		addActorFlags(reviewerRemoveCmd),
	}

	for _, flag := range requiredFlags {
		if err := reviewerRemoveCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	reviewerCmd.AddCommand(reviewerRemoveCmd)
}
