package cmd

import (
	"github.com/spf13/cobra"
)

// contentCmd represents the content command namespace
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Commands to manage content items on a branch",
	Long: `Commands to manage content items on a branch.

A content item either is newly authored on its branch or was forked
from a published item, in which case diffs run against that source.`,
}

func init() {
	rootCmd.AddCommand(contentCmd)
}
