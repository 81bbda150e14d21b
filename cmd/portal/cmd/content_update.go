package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var contentUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a content item",
	Long: `Update a content item in place. Only the flags passed are changed,
everything else is left as stored.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		item, err := stores.Content.Get(ctx, portalFlags.content.ID)
		if err != nil {
			wrapFatalln("get content", err)
			return
		}
		flags := cmd.Flags()
		if flags.Changed("title") {
			item.Title = portalFlags.content.Title
		}
		if flags.Changed("slug") {
			item.Slug = portalFlags.content.Slug
		}
		if flags.Changed("message") {
			item.Description = portalFlags.content.Description
		}
		if flags.Changed("category") {
			item.Category = portalFlags.content.Category
		}
		if flags.Changed("subcategory") {
			item.SubcategoryID = portalFlags.content.Subcategory
		}
		if flags.Changed("tag") {
			item.Tags = portalFlags.content.Tags
		}
		if flags.Changed("body") || flags.Changed("file") {
			body, err := readBody(portalFlags)
			if err != nil {
				wrapFatalln("read body", err)
				return
			}
			item.Body = body
		}
		item.UpdatedAt = time.Now().UTC()
		if err := stores.Content.Upsert(ctx, item); err != nil {
			wrapFatalln("update content", err)
			return
		}
		print(cmd, item)
	},
}

func init() {
	requiredFlags := []string{addContentFlag(contentUpdateCmd)}
	addContentMetadataFlags(contentUpdateCmd)
	addContentBodyFlags(contentUpdateCmd)
	addFormatFlag(contentUpdateCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := contentUpdateCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	contentCmd.AddCommand(contentUpdateCmd)
}
