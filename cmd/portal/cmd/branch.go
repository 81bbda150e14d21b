package cmd

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// branchCmd represents the branch command namespace
var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Commands to manage content branches",
	Long: `Commands to manage content branches.

A branch isolates a set of content edits from the published baseline
and moves through draft, review, approved, published and archived
states.`,
}

// runBranchTransition applies one lifecycle event to the branch named
// by the flags and prints the resulting descriptor.
func runBranchTransition(cmd *cobra.Command, event lifecycle.Event) {
	ctx := context.Background()
	actor, err := paramsToActor(portalFlags)
	if err != nil {
		wrapFatalln("resolve actor", err)
		return
	}
	stores := mustOpenStores()
	defer func() { _ = stores.Close() }()

	engine := newLifecycleEngine(stores)
	err = engine.Execute(ctx, lifecycle.TransitionRequest{
		BranchID:  portalFlags.branch.ID,
		Event:     event,
		ActorID:   actor.ID,
		ActorKind: actor.Kind,
		Reason:    portalFlags.review.Reason,
	})
	if err != nil {
		wrapFatalln("transition branch", err)
		return
	}
	branch, err := stores.Branches.Get(ctx, portalFlags.branch.ID)
	if err != nil {
		wrapFatalln("get branch", err)
		return
	}
	print(cmd, branch)
}

func init() {
	rootCmd.AddCommand(branchCmd)
}
