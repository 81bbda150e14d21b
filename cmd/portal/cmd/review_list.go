package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the reviews on a branch",
	Long: `List the reviews on a branch together with the derived summary of
the current review cycle.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		listing, err := newReviewEngine(stores).List(ctx, portalFlags.branch.ID)
		if err != nil {
			wrapFatalln("list reviews", err)
			return
		}
		print(cmd, listing)
	},
}

func reviewStatusString(r model.Review) string {
	switch {
	case r.Status == model.ReviewCompleted && r.Decision == model.DecisionApproved:
		return color.GreenString("approved")
	case r.Status == model.ReviewCompleted:
		return color.RedString("changes requested")
	case r.Status == model.ReviewCancelled:
		return color.HiBlackString("cancelled")
	case r.Status == model.ReviewInProgress:
		return color.YellowString("in progress")
	default:
		return "pending"
	}
}

func reviewListFormatter() FormatterFunc {
	return func(w io.Writer, data interface{}) error {
		listing := data.(*model.ReviewListResult)
		for _, r := range listing.Reviews {
			fmt.Fprintf(w, "%s , cycle %d , %s , %s\n",
				r.ID, r.ReviewCycle, r.ReviewerID, reviewStatusString(r))
		}
		fmt.Fprintf(w, "cycle %d: %s (%d/%d approvals)\n",
			listing.Summary.Cycle, string(listing.Summary.Outcome),
			listing.Summary.Approvals, listing.Summary.Required)
		return nil
	}
}

func init() {
	requiredFlags := []string{addBranchFlag(reviewListCmd)}
	addFormatFlag(reviewListCmd, "list", map[string]Formatter{
		"list": reviewListFormatter(),
	})

	for _, flag := range requiredFlags {
		if err := reviewListCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	reviewCmd.AddCommand(reviewListCmd)
}
