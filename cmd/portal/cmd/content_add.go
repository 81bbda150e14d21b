package cmd

import (
	"context"
	"time"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/segmentio/ksuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// readBody resolves the content body from --body or --file.
func readBody(flags flagsT) (string, error) {
	if flags.content.BodyFile == "" {
		return flags.content.Body, nil
	}
	b, err := afero.ReadFile(afero.NewOsFs(), flags.content.BodyFile)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var contentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a content item to a branch",
	Long: "Add a content item to a branch. " +
		"Pass --source to fork a published item onto the branch instead of authoring a new one.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		stores := mustOpenStores()
		defer func() { _ = stores.Close() }()

		body, err := readBody(portalFlags)
		if err != nil {
			wrapFatalln("read body", err)
			return
		}
		now := time.Now().UTC()
		item := model.ContentItem{
			ID:              ksuid.New().String(),
			BranchID:        portalFlags.branch.ID,
			Title:           portalFlags.content.Title,
			Slug:            portalFlags.content.Slug,
			Description:     portalFlags.content.Description,
			Category:        portalFlags.content.Category,
			SubcategoryID:   portalFlags.content.Subcategory,
			Tags:            portalFlags.content.Tags,
			SourceContentID: portalFlags.content.SourceID,
			Body:            body,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := model.ValidateContent(item); err != nil {
			wrapFatalln("validate content", err)
			return
		}
		if err := stores.Content.Upsert(ctx, &item); err != nil {
			wrapFatalln("add content", err)
			return
		}
		print(cmd, item)
	},
}

func init() {
	requiredFlags := []string{addBranchFlag(contentAddCmd)}
	addContentMetadataFlags(contentAddCmd)
	addContentBodyFlags(contentAddCmd)
	addContentSourceFlag(contentAddCmd)
	addFormatFlag(contentAddCmd, "yaml")
	requiredFlags = append(requiredFlags, "title", "slug")

	for _, flag := range requiredFlags {
		if err := contentAddCmd.MarkFlagRequired(flag); err != nil {
			logFatalln(err)
		}
	}
	contentCmd.AddCommand(contentAddCmd)
}
