package review

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/review/status"
)

// AddComment attaches inline feedback to an active review, optionally
// anchored to a diff hunk by its stable id. The assigned reviewer and
// the requester may comment.
func (e *Engine) AddComment(ctx context.Context, id string, actor model.Actor, hunkID, body string) (*model.Review, error) {
	review, err := e.getReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.ID != review.ReviewerID && actor.ID != review.RequestedByID {
		return nil, status.ErrForbidden.Wrap(errNotParticipant)
	}
	if !review.Active() {
		return nil, status.ErrValidation.Wrap(errAlreadyDecided)
	}
	review.Comments = append(review.Comments, model.Comment{
		ID:        e.newID(),
		AuthorID:  actor.ID,
		HunkID:    hunkID,
		Body:      body,
		CreatedAt: e.now(),
	})
	if err := e.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
