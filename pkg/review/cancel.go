package review

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/notify"
	"github.com/anishTP/echo-portal-sub004/pkg/review/status"
)

// Cancel withdraws a review that has not been completed. The requester
// or the assigned reviewer may cancel. Cancelled reviews are retained
// for audit and excluded from active review counts.
func (e *Engine) Cancel(ctx context.Context, id string, actor model.Actor, reason string) (*model.Review, error) {
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
	review.Status = model.ReviewCancelled
	review.CancelReason = reason
	if err := e.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	e.l.Info("review cancelled", zapReview(review)...)
	return review, nil
}

// RemoveReviewer unassigns a reviewer from a branch. The reviewer's
// active reviews are cancelled; completed reviews and their feedback
// are preserved, never deleted. Owner-only.
func (e *Engine) RemoveReviewer(ctx context.Context, branchID, reviewerID string, actor model.Actor) error {
	unlock := e.locks.lock(branchID)
	defer unlock()

	branch, err := e.getBranch(ctx, branchID)
	if err != nil {
		return err
	}
	if actor.ID != branch.OwnerID {
		return status.ErrForbidden.Wrap(errNotOwner)
	}
	if !branch.HasReviewer(reviewerID) {
		return status.ErrValidation.Wrap(errNotAssigned)
	}

	kept := branch.Reviewers[:0]
	for _, r := range branch.Reviewers {
		if r != reviewerID {
			kept = append(kept, r)
		}
	}
	branch.Reviewers = kept
	if err := e.branches.Update(ctx, branch); err != nil {
		return err
	}

	reviews, err := e.reviews.ListByBranch(ctx, branchID)
	if err != nil {
		return err
	}
	for i := range reviews {
		r := reviews[i]
		if r.ReviewerID != reviewerID || !r.Active() {
			continue
		}
		r.Status = model.ReviewCancelled
		r.CancelReason = "reviewer removed from branch"
		if err := e.reviews.Update(ctx, &r); err != nil {
			return err
		}
	}

	e.emit(ctx, notify.Event{
		Kind:     notify.ReviewerRemoved,
		BranchID: branchID,
		ActorID:  actor.ID,
		UserIDs:  []string{reviewerID},
	})
	return nil
}
