package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var diffStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a branch diff",
	Long: `Summarize a branch diff as file and line counts without computing
hunks. Cheaper than a full diff for branch listings.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		stats, err := newCompareEngine(stores).Stats(ctx, portalFlags.branch.ID)
		if err != nil {
			wrapFatalln("diff stats", err)
			return
		}
		print(cmd, stats)
	},
}

func init() {
	requiredFlags := []string{addBranchFlag(diffStatsCmd)}
	addFormatFlag(diffStatsCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := diffStatsCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	diffCmd.AddCommand(diffStatsCmd)
}
