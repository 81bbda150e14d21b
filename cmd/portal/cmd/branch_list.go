package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var branchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List branches",
	Long:  `List all known branches with their current state.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		branches, err := stores.Branches.List(ctx)
		if err != nil {
			wrapFatalln("list branches", err)
			return
		}
		print(cmd, branches)
	},
}

func stateString(state model.BranchState) string {
	switch state {
	case model.StatePublished:
		return color.GreenString(state.String())
	case model.StateReview:
		return color.YellowString(state.String())
	case model.StateArchived:
		return color.HiBlackString(state.String())
	default:
		return state.String()
	}
}

func branchListFormatter() FormatterFunc {
	return func(w io.Writer, data interface{}) error {
		branches := data.([]model.BranchDescriptor)
		for _, b := range branches {
			fmt.Fprintf(w, "%s , %s , %s , %s\n",
				b.ID, b.Name, b.OwnerID, stateString(b.State))
		}
		return nil
	}
}

func init() {
	addFormatFlag(branchListCmd, "list", map[string]Formatter{
		"list": branchListFormatter(),
	})
	branchCmd.AddCommand(branchListCmd)
}
