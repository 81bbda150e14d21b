package review

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/review/status"
)

// Start moves a pending review to in_progress. Only the assigned
// reviewer may pick a review up; any other status is rejected.
func (e *Engine) Start(ctx context.Context, id string, actor model.Actor) (*model.Review, error) {
	review, err := e.getReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.ID != review.ReviewerID {
		return nil, status.ErrForbidden.Wrap(errNotReviewer)
	}
	if review.Status != model.ReviewPending {
		return nil, status.ErrValidation.Wrap(errNotPending)
	}
	review.Status = model.ReviewInProgress
	if err := e.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	e.l.Info("review started", zapReview(review)...)
	return review, nil
}
