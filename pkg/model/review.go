package model

import (
	"fmt"
	"time"
)

// ReviewStatus is the lifecycle status of a single reviewer assignment.
type ReviewStatus string

const (
	// ReviewPending awaits the reviewer picking the review up
	ReviewPending ReviewStatus = "pending"
	// ReviewInProgress is actively being looked at
	ReviewInProgress ReviewStatus = "in_progress"
	// ReviewCompleted carries a decision and is terminal
	ReviewCompleted ReviewStatus = "completed"
	// ReviewCancelled is terminal, retained for audit
	ReviewCancelled ReviewStatus = "cancelled"
)

// ReviewDecision is the outcome recorded by a completed review.
type ReviewDecision string

const (
	// DecisionApproved counts toward the branch quorum
	DecisionApproved ReviewDecision = "approved"
	// DecisionChangesRequested sends the branch back on its own
	DecisionChangesRequested ReviewDecision = "changes_requested"
)

// Comment is reviewer feedback anchored to a diff hunk.
type Comment struct {
	ID        string    `json:"id" yaml:"id"`
	AuthorID  string    `json:"authorId" yaml:"authorId"`
	HunkID    string    `json:"hunkId,omitempty" yaml:"hunkId,omitempty"`
	Body      string    `json:"body" yaml:"body"`
	CreatedAt time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	_         struct{}
}

// Review records one reviewer assignment on a branch. Reviews are
// never deleted: cancellation and completion are terminal states kept
// for audit and feedback visibility.
type Review struct {
	ID            string         `json:"id" yaml:"id"`
	BranchID      string         `json:"branchId" yaml:"branchId"`
	ReviewerID    string         `json:"reviewerId" yaml:"reviewerId"`
	RequestedByID string         `json:"requestedById" yaml:"requestedById"`
	Status        ReviewStatus   `json:"status" yaml:"status"`
	Decision      ReviewDecision `json:"decision,omitempty" yaml:"decision,omitempty"`
	DecidedBy     ActorKind      `json:"decidedBy,omitempty" yaml:"decidedBy,omitempty"`
	ReviewCycle   int            `json:"reviewCycle" yaml:"reviewCycle"`
	Comments      []Comment      `json:"comments,omitempty" yaml:"comments,omitempty"`
	CancelReason  string         `json:"cancelReason,omitempty" yaml:"cancelReason,omitempty"`
	// TransitionPending flags a completed decision whose branch-level
	// consequence failed downstream and still needs reconciliation.
	TransitionPending bool       `json:"transitionPending,omitempty" yaml:"transitionPending,omitempty"`
	CreatedAt         time.Time  `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt         time.Time  `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	_                 struct{}
}

// Active tells whether the review still expects reviewer action.
func (r *Review) Active() bool {
	return r.Status == ReviewPending || r.Status == ReviewInProgress
}

// Approved tells whether the review completed with an approval.
func (r *Review) Approved() bool {
	return r.Status == ReviewCompleted && r.Decision == DecisionApproved
}

// ValidateReview checks the invariants a review record must satisfy
// before it may be persisted.
func ValidateReview(r Review) error {
	if r.ID == "" {
		return fmt.Errorf("empty field: review id is empty")
	}
	if r.BranchID == "" {
		return fmt.Errorf("empty field: review branch is empty")
	}
	if r.ReviewerID == "" {
		return fmt.Errorf("empty field: reviewer is empty")
	}
	if r.ReviewCycle < 1 {
		return fmt.Errorf("invalid cycle: reviewCycle must be >= 1, got %d", r.ReviewCycle)
	}
	return nil
}

// CycleOutcome is the derived sub-state of one review cycle.
type CycleOutcome string

const (
	// OutcomePending means no reviewer activity yet
	OutcomePending CycleOutcome = "pending"
	// OutcomeInDiscussion means at least one review started or commented
	OutcomeInDiscussion CycleOutcome = "in_discussion"
	// OutcomeChangesRequested means at least one veto was recorded
	OutcomeChangesRequested CycleOutcome = "changes_requested"
	// OutcomeApproved means the approval quorum was reached
	OutcomeApproved CycleOutcome = "approved"
	// OutcomeWithdrawn means every review in the cycle was cancelled
	OutcomeWithdrawn CycleOutcome = "withdrawn"
)

// ReviewCycleSummary is the read model describing the current cycle.
type ReviewCycleSummary struct {
	BranchID         string       `json:"branchId" yaml:"branchId"`
	Cycle            int          `json:"cycle" yaml:"cycle"`
	Outcome          CycleOutcome `json:"outcome" yaml:"outcome"`
	Approvals        int          `json:"approvals" yaml:"approvals"`
	ChangesRequested int          `json:"changesRequested" yaml:"changesRequested"`
	Reviews          int          `json:"reviews" yaml:"reviews"`
	Required         int          `json:"required" yaml:"required"`
	_                struct{}
}

// ReviewListResult is the read model returned by review listings.
type ReviewListResult struct {
	BranchID string             `json:"branchId" yaml:"branchId"`
	Reviews  []Review           `json:"reviews" yaml:"reviews"`
	Summary  ReviewCycleSummary `json:"summary" yaml:"summary"`
	_        struct{}
}
