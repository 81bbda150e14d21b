package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var reviewCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Request a review from a reviewer",
	Long: "Request a review from a reviewer on a branch in review. " +
		"Only the branch owner may request reviews, and never from themselves.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		actor, err := paramsToActor(portalFlags)
		if err != nil {
			wrapFatalln("resolve actor", err)
			return
		}
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		created, err := newReviewEngine(stores).Create(ctx,
			portalFlags.branch.ID, portalFlags.review.Reviewer, actor)
		if err != nil {
			wrapFatalln("create review", err)
			return
		}
		print(cmd, created)
	},
}

func init() {
	requiredFlags := []string{
		addBranchFlag(reviewCreateCmd),
		addReviewerFlag(reviewCreateCmd),
		addActorFlags(reviewCreateCmd),
	}
	addFormatFlag(reviewCreateCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := reviewCreateCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	reviewCmd.AddCommand(reviewCreateCmd)
}
