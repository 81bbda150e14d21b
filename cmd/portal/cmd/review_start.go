package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var reviewStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start working on a pending review",
	Long:  `Start working on a pending review. Only the assigned reviewer may start it.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		actor, err := paramsToActor(portalFlags)
		if err != nil {
			wrapFatalln("resolve actor", err)
			return
		}
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		started, err := newReviewEngine(stores).Start(ctx, portalFlags.review.ID, actor)
		if err != nil {
			wrapFatalln("start review", err)
			return
		}
		print(cmd, started)
	},
}

func init() {
	requiredFlags := []string{addReviewFlag(reviewStartCmd), addActorFlags(reviewStartCmd)}
	addFormatFlag(reviewStartCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := reviewStartCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	reviewCmd.AddCommand(reviewStartCmd)
}
