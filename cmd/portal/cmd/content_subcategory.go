package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var contentSubcategoryCmd = &cobra.Command{
	Use:   "subcategory",
	Short: "Register a subcategory display name",
	Long: `Register the display name of a subcategory id. Diffs serialize the
display name into the metadata block, so renames show up as changes.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		err := stores.Content.PutSubcategory(ctx,
			portalFlags.subcategory.ID, portalFlags.subcategory.Name)
		if err != nil {
			wrapFatalln("register subcategory", err)
			return
		}
		infoLogger.Println("registered", portalFlags.subcategory.ID)
	},
}

func init() {
	flags := contentSubcategoryCmd.Flags()
	flags.StringVar(&portalFlags.subcategory.ID, "id", "", "The subcategory id")
	flags.StringVar(&portalFlags.subcategory.Name, "display-name", "", "The display name")

	for _, flag := range []string{"id", "display-name"} {
		if err := contentSubcategoryCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	contentCmd.AddCommand(contentSubcategoryCmd)
}
