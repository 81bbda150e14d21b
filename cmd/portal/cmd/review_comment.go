package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var reviewCommentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment on a review",
	Long: `Comment on an active review, optionally anchored to a diff hunk id.
Hunk ids are stable across diff recomputations of the same change.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		actor, err := paramsToActor(portalFlags)
		if err != nil {
			wrapFatalln("resolve actor", err)
			return
		}
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		commented, err := newReviewEngine(stores).AddComment(ctx,
			portalFlags.review.ID, actor, portalFlags.review.HunkID, portalFlags.review.Message)
		if err != nil {
			wrapFatalln("add comment", err)
			return
		}
		print(cmd, commented)
	},
}

func init() {
	requiredFlags := []string{addReviewFlag(reviewCommentCmd), addActorFlags(reviewCommentCmd)}
	flags := reviewCommentCmd.Flags()
	flags.StringVar(&portalFlags.review.HunkID, "hunk", "", "The diff hunk id to anchor the comment to")
	flags.StringVar(&portalFlags.review.Message, "message", "", "The comment text")
	requiredFlags = append(requiredFlags, "message")
	addFormatFlag(reviewCommentCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := reviewCommentCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	reviewCmd.AddCommand(reviewCommentCmd)
}
