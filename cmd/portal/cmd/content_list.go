package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the content items on a branch",
	Long:  `List the content items on a branch, archived items included.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		items, err := stores.Content.ListByBranch(ctx, portalFlags.branch.ID)
		if err != nil {
			wrapFatalln("list content", err)
			return
		}
		print(cmd, items)
	},
}

func contentListFormatter() FormatterFunc {
	return func(w io.Writer, data interface{}) error {
		items := data.([]model.ContentItem)
		for _, item := range items {
			marker := " "
			if item.Archived {
				marker = color.RedString("x")
			} else if item.IsFork() {
				marker = color.YellowString("~")
			}
			fmt.Fprintf(w, "%s %s , %s , %s\n", marker, item.ID, item.Slug, item.Title)
		}
		return nil
	}
}

func init() {
	requiredFlags := []string{addBranchFlag(contentListCmd)}
	addFormatFlag(contentListCmd, "list", map[string]Formatter{
		"list": contentListFormatter(),
	})

	for _, flag := range requiredFlags {
		if err := contentListCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	contentCmd.AddCommand(contentListCmd)
}
