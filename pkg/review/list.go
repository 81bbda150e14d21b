package review

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
)

// List returns every review ever recorded for a branch, newest cycle
// included, together with the derived summary of the latest cycle.
// Cancelled and completed reviews are retained so historical feedback
// stays visible.
func (e *Engine) List(ctx context.Context, branchID string) (*model.ReviewListResult, error) {
	branch, err := e.getBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	reviews, err := e.reviews.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return &model.ReviewListResult{
		BranchID: branchID,
		Reviews:  reviews,
		Summary:  deriveSummary(branch, reviews),
	}, nil
}
