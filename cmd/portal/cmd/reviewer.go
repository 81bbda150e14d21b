package cmd

import (
	"github.com/spf13/cobra"
)

// reviewerCmd represents the reviewer command namespace
var reviewerCmd = &cobra.Command{
	Use:   "reviewer",
	Short: "Commands to manage the reviewers assigned to a branch",
	Long:  `Commands to manage the reviewers assigned to a branch. Owner only.`,
}

func init() {
	rootCmd.AddCommand(reviewerCmd)
}
