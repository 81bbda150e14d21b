// Package notify delivers review events to interested collaborators.
// Delivery is fire-and-forget: failures are logged by callers and
// never propagate into the operation that produced the event.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// EventKind enumerates the review events the portal emits.
type EventKind string

const (
	// ReviewerAdded fires when a reviewer is assigned to a branch
	ReviewerAdded EventKind = "reviewer-added"
	// ReviewerRemoved fires when a reviewer is unassigned
	ReviewerRemoved EventKind = "reviewer-removed"
	// ReviewApproved fires on every recorded approval
	ReviewApproved EventKind = "review-approved"
	// ChangesRequested fires on every recorded veto
	ChangesRequested EventKind = "changes-requested"
)

// Event carries the context of one review notification.
type Event struct {
	Kind     EventKind `json:"kind" yaml:"kind"`
	BranchID string    `json:"branchId" yaml:"branchId"`
	ActorID  string    `json:"actorId" yaml:"actorId"`
	UserIDs  []string  `json:"userIds,omitempty" yaml:"userIds,omitempty"`
	Reason   string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Notifier delivers events to some downstream channel.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// NewLogNotifier builds a notifier that records events on a zap
// logger, the default delivery channel for single-process deployments.
func NewLogNotifier(l *zap.Logger) Notifier {
	if l == nil {
		l = zap.NewNop()
	}
	return &logNotifier{l: l}
}

type logNotifier struct {
	l *zap.Logger
}

func (n *logNotifier) Notify(_ context.Context, event Event) error {
	n.l.Info("review notification",
		zap.String("kind", string(event.Kind)),
		zap.String("branch", event.BranchID),
		zap.String("actor", event.ActorID),
		zap.Strings("users", event.UserIDs),
		zap.String("reason", event.Reason))
	return nil
}

// Discard swallows every event, for tests and quiet runs.
func Discard() Notifier {
	return discard{}
}

type discard struct{}

func (discard) Notify(context.Context, Event) error { return nil }
