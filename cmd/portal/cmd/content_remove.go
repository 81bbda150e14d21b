package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var contentRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a content item from its branch",
	Long: `Remove a content item from its branch by archiving it. An archived
fork of a published item shows up as a deletion in the branch diff.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		if err := stores.Content.Archive(ctx, portalFlags.content.ID); err != nil {
			wrapFatalln("remove content", err)
			return
		}
		infoLogger.Println("archived", portalFlags.content.ID)
	},
}

func init() {
	requiredFlags := []string{addContentFlag(contentRemoveCmd)}

	for _, flag := range requiredFlags {
		if err := contentRemoveCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	contentCmd.AddCommand(contentRemoveCmd)
}
