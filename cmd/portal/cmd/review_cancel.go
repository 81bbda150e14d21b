package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var reviewCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel an active review",
	Long: `Cancel an active review. The reviewer or the requester may cancel;
the record is retained for audit.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		actor, err := paramsToActor(portalFlags)
		if err != nil {
			wrapFatalln("resolve actor", err)
			return
		}
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		cancelled, err := newReviewEngine(stores).Cancel(ctx,
			portalFlags.review.ID, actor, portalFlags.review.Reason)
		if err != nil {
			wrapFatalln("cancel review", err)
			return
		}
		print(cmd, cancelled)
	},
}

func init() {
	requiredFlags := []string{addReviewFlag(reviewCancelCmd), addActorFlags(reviewCancelCmd)}
	addReasonFlag(reviewCancelCmd)
	addFormatFlag(reviewCancelCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := reviewCancelCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	reviewCmd.AddCommand(reviewCancelCmd)
}
