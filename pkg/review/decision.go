package review

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/lifecycle"
	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/notify"
	"github.com/anishTP/echo-portal-sub004/pkg/review/status"
	"go.uber.org/zap"
)

// SubmitDecision completes a review with an approval or a veto and
// applies the consensus rules:
//
//   - changes_requested always requests a REQUEST_CHANGES transition;
//     a single veto is sufficient to send the branch back.
//   - approved only requests an APPROVE transition once the number of
//     approvals reaches the branch's quorum, and never on the strength
//     of automated approvals alone: an automated actor's approval with
//     no human approval on record is stored but triggers nothing.
//
// The decision itself is persisted before the transition is attempted.
// When the downstream transition fails, the review is flagged
// TransitionPending and the failure is reported to the caller; the
// decision is never rolled back.
func (e *Engine) SubmitDecision(ctx context.Context, id string, decision model.ReviewDecision, actor model.Actor) (*model.Review, error) {
	if decision != model.DecisionApproved && decision != model.DecisionChangesRequested {
		return nil, status.ErrValidation.Wrap(errUnknownDecision)
	}

	head, err := e.getReview(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock := e.locks.lock(head.BranchID)
	defer unlock()

	// re-read under the branch lock
	review, err := e.getReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.ID != review.ReviewerID {
		return nil, status.ErrForbidden.Wrap(errNotReviewer)
	}
	if !review.Active() {
		return nil, status.ErrValidation.Wrap(errAlreadyDecided)
	}
	branch, err := e.getBranch(ctx, review.BranchID)
	if err != nil {
		return nil, err
	}

	completedAt := e.now()
	review.Status = model.ReviewCompleted
	review.Decision = decision
	review.DecidedBy = actor.Kind
	review.CompletedAt = &completedAt
	if err := e.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	if decision == model.DecisionChangesRequested {
		return e.afterVeto(ctx, review, branch, actor)
	}
	return e.afterApproval(ctx, review, branch, actor)
}

func (e *Engine) afterVeto(ctx context.Context, review *model.Review, branch *model.BranchDescriptor, actor model.Actor) (*model.Review, error) {
	e.emit(ctx, notify.Event{
		Kind:     notify.ChangesRequested,
		BranchID: branch.ID,
		ActorID:  actor.ID,
		UserIDs:  []string{branch.OwnerID},
	})
	err := e.transitions.Execute(ctx, lifecycle.TransitionRequest{
		BranchID:  branch.ID,
		Event:     lifecycle.EventRequestChanges,
		ActorID:   actor.ID,
		ActorKind: actor.Kind,
		Reason:    "changes requested by reviewer",
	})
	if err != nil {
		return e.flagTransitionPending(ctx, review, err)
	}
	e.l.Info("changes requested", zapReview(review)...)
	return review, nil
}

func (e *Engine) afterApproval(ctx context.Context, review *model.Review, branch *model.BranchDescriptor, actor model.Actor) (*model.Review, error) {
	e.emit(ctx, notify.Event{
		Kind:     notify.ReviewApproved,
		BranchID: branch.ID,
		ActorID:  actor.ID,
		UserIDs:  []string{branch.OwnerID},
	})

	all, err := e.reviews.ListByBranch(ctx, branch.ID)
	if err != nil {
		return nil, err
	}
	// only approvals from the same cycle count toward the quorum
	approvals, humanApprovals := 0, 0
	for _, r := range all {
		if r.ReviewCycle != review.ReviewCycle || !r.Approved() {
			continue
		}
		approvals++
		if r.DecidedBy != model.ActorAutomated {
			humanApprovals++
		}
	}

	if actor.Kind == model.ActorAutomated && humanApprovals == 0 {
		// an automated approval alone never advances the branch
		e.l.Info("automated approval recorded, awaiting human approval",
			zapReview(review)...)
		return review, nil
	}

	if approvals < branch.RequiredApprovals {
		e.l.Info("approval recorded below quorum",
			append(zapReview(review),
				zap.Int("approvals", approvals),
				zap.Int("required", branch.RequiredApprovals))...)
		return review, nil
	}
	if branch.State != model.StateReview {
		// quorum already consumed by an earlier approval
		return review, nil
	}

	err = e.transitions.Execute(ctx, lifecycle.TransitionRequest{
		BranchID:  branch.ID,
		Event:     lifecycle.EventApprove,
		ActorID:   actor.ID,
		ActorKind: actor.Kind,
		Reason:    "approval quorum reached",
	})
	if err != nil {
		return e.flagTransitionPending(ctx, review, err)
	}
	e.l.Info("branch approved", zapReview(review)...)
	return review, nil
}

// flagTransitionPending records that the decision stands while its
// branch-level consequence did not apply, and surfaces the failure.
func (e *Engine) flagTransitionPending(ctx context.Context, review *model.Review, cause error) (*model.Review, error) {
	review.TransitionPending = true
	if err := e.reviews.Update(ctx, review); err != nil {
		e.l.Error("failed to flag pending transition",
			append(zapReview(review), zap.Error(err))...)
	}
	return review, status.ErrTransitionFailed.Wrap(cause)
}
