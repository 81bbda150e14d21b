package review

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
)

// CycleSummary derives the sub-state of the branch's latest review
// cycle. Precedence: a single veto wins outright; then quorum-met
// approval; then withdrawal when every review in the cycle was
// cancelled; then discussion when any review started or carries
// comments; otherwise pending.
func (e *Engine) CycleSummary(ctx context.Context, branchID string) (*model.ReviewCycleSummary, error) {
	branch, err := e.getBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	reviews, err := e.reviews.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	summary := deriveSummary(branch, reviews)
	return &summary, nil
}

func deriveSummary(branch *model.BranchDescriptor, reviews []model.Review) model.ReviewCycleSummary {
	cycle := latestCycle(reviews)
	summary := model.ReviewCycleSummary{
		BranchID: branch.ID,
		Cycle:    cycle,
		Required: branch.RequiredApprovals,
	}

	var (
		inCycle    int
		cancelled  int
		discussing bool
	)
	for _, r := range reviews {
		if r.ReviewCycle != cycle {
			continue
		}
		inCycle++
		if r.Status == model.ReviewCancelled {
			cancelled++
			continue
		}
		summary.Reviews++
		if r.Status == model.ReviewInProgress || len(r.Comments) > 0 {
			discussing = true
		}
		if r.Status != model.ReviewCompleted {
			continue
		}
		switch r.Decision {
		case model.DecisionApproved:
			summary.Approvals++
		case model.DecisionChangesRequested:
			summary.ChangesRequested++
		}
	}

	switch {
	case summary.ChangesRequested > 0:
		summary.Outcome = model.OutcomeChangesRequested
	case summary.Approvals >= branch.RequiredApprovals:
		summary.Outcome = model.OutcomeApproved
	case inCycle > 0 && cancelled == inCycle:
		summary.Outcome = model.OutcomeWithdrawn
	case discussing:
		summary.Outcome = model.OutcomeInDiscussion
	default:
		summary.Outcome = model.OutcomePending
	}
	return summary
}
