package cmd

import (
	"github.com/spf13/cobra"
)

// reviewCmd represents the review command namespace
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Commands to manage reviews on a branch",
	Long: `Commands to manage reviews on a branch.

Each review assigns one reviewer. A branch advances once the number of
approvals in the current cycle reaches the branch quorum, while a
single request for changes sends it back to draft immediately.`,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
