package review

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/notify"
	"github.com/anishTP/echo-portal-sub004/pkg/review/status"
)

// Create assigns a reviewer to a branch and opens a pending review
// under the current cycle. Only the branch owner may request reviews,
// the owner cannot review their own branch, and a reviewer holds at
// most one active review per branch at a time.
func (e *Engine) Create(ctx context.Context, branchID, reviewerID string, requestedBy model.Actor) (*model.Review, error) {
	if reviewerID == "" {
		return nil, status.ErrValidation.Wrap(errEmptyReviewer)
	}
	unlock := e.locks.lock(branchID)
	defer unlock()

	branch, err := e.getBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if !branch.State.Reviewable() {
		return nil, status.ErrValidation.Wrap(errNotReviewable)
	}
	if requestedBy.ID != branch.OwnerID {
		return nil, status.ErrForbidden.Wrap(errNotOwner)
	}
	if reviewerID == requestedBy.ID {
		return nil, status.ErrValidation.Wrap(errSelfReview)
	}

	existing, err := e.reviews.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if r.ReviewerID == reviewerID && r.Active() {
			return nil, status.ErrConflict
		}
	}

	// assign the reviewer on the branch before inserting the review, so
	// a failed branch write never leaves a review RemoveReviewer cannot
	// reach
	if !branch.HasReviewer(reviewerID) {
		branch.Reviewers = append(branch.Reviewers, reviewerID)
		if err := e.branches.Update(ctx, branch); err != nil {
			return nil, err
		}
	}

	review := &model.Review{
		ID:            e.newID(),
		BranchID:      branchID,
		ReviewerID:    reviewerID,
		RequestedByID: requestedBy.ID,
		Status:        model.ReviewPending,
		ReviewCycle:   currentCycle(existing),
	}
	if err := e.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	e.emit(ctx, notify.Event{
		Kind:     notify.ReviewerAdded,
		BranchID: branchID,
		ActorID:  requestedBy.ID,
		UserIDs:  []string{reviewerID},
	})
	e.l.Info("review created",
		zapReview(review)...,
	)
	return review, nil
}

// AddReviewer is the owner-facing alias of Create: it assigns the
// reviewer and opens a pending review under the current cycle.
func (e *Engine) AddReviewer(ctx context.Context, branchID, reviewerID string, actor model.Actor) (*model.Review, error) {
	return e.Create(ctx, branchID, reviewerID, actor)
}
