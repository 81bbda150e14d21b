package cmd

import (
	"context"
	"time"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

var branchCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a content branch",
	Long: "Create a content branch owned by the acting user. " +
		"New branches start in the draft state.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		actor, err := paramsToActor(portalFlags)
		if err != nil {
			wrapFatalln("resolve actor", err)
			return
		}
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		now := time.Now().UTC()
		branch := model.BranchDescriptor{
			ID:                ksuid.New().String(),
			Name:              portalFlags.branch.Name,
			Description:       portalFlags.branch.Description,
			OwnerID:           actor.ID,
			State:             model.StateDraft,
			RequiredApprovals: portalFlags.branch.RequiredApprovals,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := model.ValidateBranch(branch); err != nil {
			wrapFatalln("validate branch", err)
			return
		}
		if err := stores.Branches.Create(ctx, &branch); err != nil {
			wrapFatalln("create branch", err)
			return
		}
		print(cmd, branch)
	},
}

func init() {
	requiredFlags := []string{addBranchNameFlag(branchCreateCmd)}
	addBranchDescriptionFlag(branchCreateCmd)
	addRequiredApprovalsFlag(branchCreateCmd)
	addActorFlags(branchCreateCmd)
	requiredFlags = append(requiredFlags, "actor")
	addFormatFlag(branchCreateCmd, "yaml")

	for _, flag := range requiredFlags {
		if err := branchCreateCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	branchCmd.AddCommand(branchCreateCmd)
}
