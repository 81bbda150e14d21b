package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Diff a branch against its published baseline",
	Long: `Diff a branch against its published baseline.

Each content item on the branch is compared to the published item it
was forked from. Metadata changes and body changes appear in the same
per-item diff, grouped into hunks with stable identifiers reviewers
can anchor comments to.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		comparison, err := newCompareEngine(stores).Comparison(ctx, portalFlags.branch.ID)
		if err != nil {
			wrapFatalln("diff branch", err)
			return
		}
		print(cmd, comparison)
	},
}

func patchFormatter() FormatterFunc {
	return func(w io.Writer, data interface{}) error {
		comparison := data.(*model.BranchComparison)
		for _, file := range comparison.Files {
			fmt.Fprintf(w, "%s %s (+%d -%d)\n",
				string(file.Status), file.Path, file.Additions, file.Deletions)
			for _, hunk := range file.Hunks {
				fmt.Fprintf(w, "@@ -%d,%d +%d,%d @@ %s\n",
					hunk.OldStart, hunk.OldLineCount, hunk.NewStart, hunk.NewLineCount, hunk.ID)
				for _, line := range hunk.Lines {
					switch line.Type {
					case model.LineAdded:
						fmt.Fprintln(w, color.GreenString("+%s", line.Content))
					case model.LineRemoved:
						fmt.Fprintln(w, color.RedString("-%s", line.Content))
					default:
						fmt.Fprintf(w, " %s\n", line.Content)
					}
				}
			}
		}
		fmt.Fprintf(w, "%d files changed, %d insertions(+), %d deletions(-)\n",
			comparison.Stats.FilesChanged, comparison.Stats.Additions, comparison.Stats.Deletions)
		return nil
	}
}

func init() {
	requiredFlags := []string{addBranchFlag(diffCmd)}
	addContextLinesFlag(diffCmd)
	addFormatFlag(diffCmd, "patch", map[string]Formatter{
		"patch": patchFormatter(),
	})

	for _, flag := range requiredFlags {
		if err := diffCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	rootCmd.AddCommand(diffCmd)
}
