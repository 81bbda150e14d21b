// Package review implements the consensus engine that tracks reviewer
// assignments per branch, accumulates approve and request-changes
// decisions across review cycles, enforces the approval quorum before
// a branch may advance, and guards against a lone automated actor
// satisfying that quorum.
//
// Mutating operations serialize per branch through an in-process keyed
// mutex so two concurrent decisions cannot both observe a
// below-threshold approval count.
package review

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/anishTP/echo-portal-sub004/pkg/lifecycle"
	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/notify"
	"github.com/anishTP/echo-portal-sub004/pkg/review/status"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

// Option is a functor to configure a review engine.
type Option func(*Engine)

// Logger injects a logging facility into the engine.
func Logger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.l = l
		}
	}
}

// Notifier sets the collaborator receiving review events.
func Notifier(n notify.Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

// Clock overrides the time source, for tests.
func Clock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// IDs overrides the review id generator, for tests.
func IDs(gen func() string) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// Engine owns review records and drives the consensus state machine.
type Engine struct {
	branches    store.BranchStore
	reviews     store.ReviewStore
	transitions lifecycle.Engine
	notifier    notify.Notifier
	l           *zap.Logger
	locks       branchLocks
	newID       func() string
	now         func() time.Time
}

// New builds a review engine over the given stores and lifecycle
// engine.
func New(branches store.BranchStore, reviews store.ReviewStore, transitions lifecycle.Engine, opts ...Option) *Engine {
	e := &Engine{
		branches:    branches,
		reviews:     reviews,
		transitions: transitions,
		notifier:    notify.Discard(),
		l:           zap.NewNop(),
		newID:       func() string { return ksuid.New().String() },
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// branchLocks hands out one mutex per branch id. Entries are never
// evicted: the map is bounded by the branches touched over the engine's
// lifetime, which suits short-lived processes. A long-running embedding
// should swap in an evicting keyed lock.
type branchLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (b *branchLocks) lock(branchID string) func() {
	b.mu.Lock()
	if b.m == nil {
		b.m = map[string]*sync.Mutex{}
	}
	l, ok := b.m[branchID]
	if !ok {
		l = &sync.Mutex{}
		b.m[branchID] = l
	}
	b.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (e *Engine) getBranch(ctx context.Context, branchID string) (*model.BranchDescriptor, error) {
	branch, err := e.branches.Get(ctx, branchID)
	if err != nil {
		return nil, status.ErrNotFound.Wrap(err)
	}
	return branch, nil
}

func (e *Engine) getReview(ctx context.Context, id string) (*model.Review, error) {
	review, err := e.reviews.Get(ctx, id)
	if err != nil {
		return nil, status.ErrNotFound.Wrap(err)
	}
	return review, nil
}

// emit delivers a notification; failures are logged, never propagated.
func (e *Engine) emit(ctx context.Context, event notify.Event) {
	if err := e.notifier.Notify(ctx, event); err != nil {
		e.l.Warn("notification delivery failed",
			zap.String("kind", string(event.Kind)),
			zap.String("branch", event.BranchID),
			zap.Error(err))
	}
}

// currentCycle computes the cycle number new reviews join: the highest
// existing cycle, bumped by one when that cycle already ended in
// changes-requested, or 1 when the branch has no reviews yet.
func currentCycle(reviews []model.Review) int {
	max := 0
	for _, r := range reviews {
		if r.ReviewCycle > max {
			max = r.ReviewCycle
		}
	}
	if max == 0 {
		return 1
	}
	for _, r := range reviews {
		if r.ReviewCycle == max && r.Status == model.ReviewCompleted && r.Decision == model.DecisionChangesRequested {
			return max + 1
		}
	}
	return max
}

// detail errors wrapped under the status sentinels
var (
	errEmptyReviewer   = stderrors.New("reviewer id is required")
	errNotReviewable   = stderrors.New("branch is not in a reviewable state")
	errNotOwner        = stderrors.New("only the branch owner may manage reviewers")
	errSelfReview      = stderrors.New("owner cannot review their own branch")
	errNotReviewer     = stderrors.New("only the assigned reviewer may act on this review")
	errNotParticipant  = stderrors.New("only the reviewer or requester may act on this review")
	errNotPending      = stderrors.New("review is not pending")
	errAlreadyDecided  = stderrors.New("review is already completed or cancelled")
	errUnknownDecision = stderrors.New("unknown decision")
	errNotAssigned     = stderrors.New("reviewer is not assigned to this branch")
)

func zapReview(r *model.Review) []zap.Field {
	return []zap.Field{
		zap.String("review", r.ID),
		zap.String("branch", r.BranchID),
		zap.String("reviewer", r.ReviewerID),
		zap.Int("cycle", r.ReviewCycle),
	}
}

// latestCycle is the highest existing cycle number, 1 when none.
func latestCycle(reviews []model.Review) int {
	max := 1
	for _, r := range reviews {
		if r.ReviewCycle > max {
			max = r.ReviewCycle
		}
	}
	return max
}
