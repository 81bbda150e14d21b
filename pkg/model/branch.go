package model

import (
	"fmt"
	"time"
	"unicode"
)

// BranchState is the lifecycle state of a branch.
type BranchState string

const (
	// StateDraft is the initial, owner-editable state
	StateDraft BranchState = "draft"
	// StateReview accepts reviewer assignments and decisions
	StateReview BranchState = "review"
	// StateApproved indicates the review quorum has been met
	StateApproved BranchState = "approved"
	// StatePublished indicates the branch content has been merged into the published set
	StatePublished BranchState = "published"
	// StateArchived is terminal
	StateArchived BranchState = "archived"
)

// Reviewable indicates whether reviews may be created while in this state.
func (s BranchState) Reviewable() bool {
	return s == StateReview
}

func (s BranchState) String() string {
	return string(s)
}

// BranchDescriptor represents an isolated working copy of content
// awaiting review before publication.
type BranchDescriptor struct {
	ID                string      `json:"id" yaml:"id"`
	Name              string      `json:"name" yaml:"name"`
	Description       string      `json:"description,omitempty" yaml:"description,omitempty"`
	OwnerID           string      `json:"ownerId" yaml:"ownerId"`
	State             BranchState `json:"state" yaml:"state"`
	Reviewers         []string    `json:"reviewers,omitempty" yaml:"reviewers,omitempty"`
	RequiredApprovals int         `json:"requiredApprovals" yaml:"requiredApprovals"`
	Version           uint64      `json:"version" yaml:"version"` // bumped on every store update
	CreatedAt         time.Time   `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt         time.Time   `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
	_                 struct{}
}

// HasReviewer tells whether the given user is already assigned on this branch.
func (b *BranchDescriptor) HasReviewer(userID string) bool {
	for _, r := range b.Reviewers {
		if r == userID {
			return true
		}
	}
	return false
}

// ValidateBranch checks the invariants a branch descriptor must satisfy
// before it may be persisted.
func ValidateBranch(b BranchDescriptor) error {
	if b.ID == "" {
		return fmt.Errorf("empty field: branch id is empty")
	}
	if b.Name == "" {
		return fmt.Errorf("empty field: branch name is empty")
	}
	if b.OwnerID == "" {
		return fmt.Errorf("empty field: branch owner is empty")
	}
	if b.RequiredApprovals < 1 {
		return fmt.Errorf("invalid quorum: requiredApprovals must be >= 1, got %d", b.RequiredApprovals)
	}
	for _, c := range b.Name {
		if !unicode.IsDigit(c) && !unicode.IsLetter(c) && !unicode.Is(unicode.Hyphen, c) {
			return fmt.Errorf("invalid name: branch name %q contains unsupported character %q",
				b.Name, string(c))
		}
	}
	return nil
}
