package cmd

import (
	"github.com/anishTP/echo-portal-sub004/pkg/errors"
	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/spf13/cobra"
)

var errActorRequired = errors.New("an acting user is required, use --actor")

type flagsT struct {
	branch struct {
		ID                string
		Name              string
		Description       string
		RequiredApprovals int
	}
	content struct {
		ID          string
		Title       string
		Slug        string
		Description string
		Category    string
		Subcategory string
		Tags        []string
		SourceID    string
		Body        string
		BodyFile    string
	}
	subcategory struct {
		ID   string
		Name string
	}
	review struct {
		ID       string
		Reviewer string
		Reason   string
		HunkID   string
		Message  string
	}
	actor struct {
		ID    string
		Roles []string
	}
	diff struct {
		contextLines int
	}
	root struct {
		storePath string
		logLevel  string
		format    string
		tracing   bool
	}
}

var portalFlags = flagsT{}

func addStorePathFlag(cmd *cobra.Command) string {
	storePath := "store"
	cmd.PersistentFlags().StringVar(&portalFlags.root.storePath, storePath, "",
		"Path to the local store directory (default is .portal/data)")
	return storePath
}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := "loglevel"
	cmd.PersistentFlags().StringVar(&portalFlags.root.logLevel, logLevel, "info",
		"The logging level, one of: info, debug, none")
	return logLevel
}

func addTracingFlag(cmd *cobra.Command) string {
	tracing := "tracing"
	cmd.PersistentFlags().BoolVar(&portalFlags.root.tracing, tracing, false,
		"Trace store operations through the global tracer")
	return tracing
}

func addBranchFlag(cmd *cobra.Command) string {
	branchID := "branch"
	if cmd != nil {
		cmd.Flags().StringVar(&portalFlags.branch.ID, branchID, "", "The id of the branch")
	}
	return branchID
}

func addBranchNameFlag(cmd *cobra.Command) string {
	name := "name"
	if cmd != nil {
		cmd.Flags().StringVarP(&portalFlags.branch.Name, name, "n", "", "The name of the branch")
	}
	return name
}

func addBranchDescriptionFlag(cmd *cobra.Command) string {
	description := "description"
	if cmd != nil {
		cmd.Flags().StringVar(&portalFlags.branch.Description, description, "", "A description of the branch")
	}
	return description
}

func addRequiredApprovalsFlag(cmd *cobra.Command) string {
	requiredApprovals := "required-approvals"
	if cmd != nil {
		cmd.Flags().IntVar(&portalFlags.branch.RequiredApprovals, requiredApprovals, 1,
			"Number of approvals required before the branch may advance")
	}
	return requiredApprovals
}

func addContentFlag(cmd *cobra.Command) string {
	contentID := "content"
	if cmd != nil {
		cmd.Flags().StringVar(&portalFlags.content.ID, contentID, "", "The id of the content item")
	}
	return contentID
}

func addContentMetadataFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&portalFlags.content.Title, "title", "", "The title of the content item")
	flags.StringVar(&portalFlags.content.Slug, "slug", "", "The slug of the content item")
	flags.StringVar(&portalFlags.content.Description, "message", "", "A description of the content item")
	flags.StringVar(&portalFlags.content.Category, "category", "", "The category of the content item")
	flags.StringVar(&portalFlags.content.Subcategory, "subcategory", "", "The subcategory id of the content item")
	flags.StringSliceVar(&portalFlags.content.Tags, "tag", nil, "Tags on the content item, repeatable")
}

func addContentBodyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&portalFlags.content.Body, "body", "", "The body text of the content item")
	flags.StringVar(&portalFlags.content.BodyFile, "file", "", "Read the body text from this file instead of --body")
}

func addContentSourceFlag(cmd *cobra.Command) string {
	source := "source"
	if cmd != nil {
		cmd.Flags().StringVar(&portalFlags.content.SourceID, source, "",
			"The id of the published item this item was forked from")
	}
	return source
}

func addReviewFlag(cmd *cobra.Command) string {
	reviewID := "review"
	if cmd != nil {
		cmd.Flags().StringVar(&portalFlags.review.ID, reviewID, "", "The id of the review")
	}
	return reviewID
}

func addReviewerFlag(cmd *cobra.Command) string {
	reviewer := "reviewer"
	if cmd != nil {
		cmd.Flags().StringVar(&portalFlags.review.Reviewer, reviewer, "", "The id of the reviewer")
	}
	return reviewer
}

func addReasonFlag(cmd *cobra.Command) string {
	reason := "reason"
	if cmd != nil {
		cmd.Flags().StringVar(&portalFlags.review.Reason, reason, "", "A free-form reason recorded with the action")
	}
	return reason
}

func addActorFlags(cmd *cobra.Command) string {
	actor := "actor"
	flags := cmd.Flags()
	flags.StringVar(&portalFlags.actor.ID, actor, "", "The id of the acting user")
	flags.StringSliceVar(&portalFlags.actor.Roles, "role", nil,
		"Roles of the acting user, repeatable. Actors with only automation roles never satisfy a quorum alone")
	return actor
}

func addContextLinesFlag(cmd *cobra.Command) string {
	contextLines := "context"
	if cmd != nil {
		cmd.Flags().IntVar(&portalFlags.diff.contextLines, contextLines, 3,
			"Number of unchanged context lines around each hunk")
	}
	return contextLines
}

// paramsToActor builds the acting user from the actor flags.
func paramsToActor(flags flagsT) (model.Actor, error) {
	if flags.actor.ID == "" {
		return model.Actor{}, errActorRequired
	}
	return model.NewActor(flags.actor.ID, flags.actor.Roles...), nil
}
