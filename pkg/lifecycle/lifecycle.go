// Package lifecycle models the branch state machine: draft, review,
// approved, published and archived states with explicit transition
// events. The review consensus engine requests transitions through the
// Engine interface when quorum or veto conditions are met.
package lifecycle

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/errors"
	"github.com/anishTP/echo-portal-sub004/pkg/model"
)

// Event triggers a branch state transition.
type Event string

const (
	// EventSubmit moves a draft into review
	EventSubmit Event = "SUBMIT"
	// EventApprove records that the review quorum was met
	EventApprove Event = "APPROVE"
	// EventRequestChanges sends a branch back to draft
	EventRequestChanges Event = "REQUEST_CHANGES"
	// EventPublish merges an approved branch into the published set
	EventPublish Event = "PUBLISH"
	// EventArchive retires a branch
	EventArchive Event = "ARCHIVE"
)

var (
	// ErrInvalidTransition signals an event not accepted in the current state
	ErrInvalidTransition = errors.New("invalid branch transition")
)

// transitions is the full state table. Absent entries are invalid.
var transitions = map[model.BranchState]map[Event]model.BranchState{
	model.StateDraft: {
		EventSubmit:  model.StateReview,
		EventArchive: model.StateArchived,
	},
	model.StateReview: {
		EventApprove:        model.StateApproved,
		EventRequestChanges: model.StateDraft,
		EventArchive:        model.StateArchived,
	},
	model.StateApproved: {
		EventPublish:        model.StatePublished,
		EventRequestChanges: model.StateDraft,
		EventArchive:        model.StateArchived,
	},
	model.StatePublished: {
		EventArchive: model.StateArchived,
	},
	model.StateArchived: {},
}

// Next resolves the target state for an event, reporting whether the
// transition is allowed.
func Next(state model.BranchState, event Event) (model.BranchState, bool) {
	targets, ok := transitions[state]
	if !ok {
		return state, false
	}
	next, ok := targets[event]
	return next, ok
}

// TransitionRequest carries everything the lifecycle engine needs to
// apply one event to one branch.
type TransitionRequest struct {
	BranchID  string            `json:"branchId" yaml:"branchId"`
	Event     Event             `json:"event" yaml:"event"`
	ActorID   string            `json:"actorId" yaml:"actorId"`
	ActorKind model.ActorKind   `json:"actorKind,omitempty" yaml:"actorKind,omitempty"`
	Reason    string            `json:"reason,omitempty" yaml:"reason,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Engine applies transition requests to branches.
type Engine interface {
	Execute(ctx context.Context, req TransitionRequest) error
}
