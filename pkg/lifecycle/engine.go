package lifecycle

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	"go.uber.org/zap"
)

// EngineOption is a functor to configure the lifecycle engine.
type EngineOption func(*engine)

// Logger injects a logging facility into the engine.
func Logger(l *zap.Logger) EngineOption {
	return func(e *engine) {
		if l != nil {
			e.l = l
		}
	}
}

// NewEngine builds a lifecycle engine persisting state through the
// given branch store.
func NewEngine(branches store.BranchStore, opts ...EngineOption) Engine {
	e := &engine{branches: branches, l: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type engine struct {
	branches store.BranchStore
	l        *zap.Logger
}

// Execute applies the event to the branch and persists the resulting
// state. The branch store's optimistic version check protects against
// concurrent transitions; a losing writer reports ConcurrentUpdate.
func (e *engine) Execute(ctx context.Context, req TransitionRequest) error {
	branch, err := e.branches.Get(ctx, req.BranchID)
	if err != nil {
		return err
	}
	next, ok := Next(branch.State, req.Event)
	if !ok {
		e.l.Warn("rejected branch transition",
			zap.String("branch", req.BranchID),
			zap.String("state", branch.State.String()),
			zap.String("event", string(req.Event)))
		return ErrInvalidTransition
	}
	prev := branch.State
	branch.State = next
	if err := e.branches.Update(ctx, branch); err != nil {
		return err
	}
	e.l.Info("branch transitioned",
		zap.String("branch", req.BranchID),
		zap.String("from", prev.String()),
		zap.String("to", next.String()),
		zap.String("event", string(req.Event)),
		zap.String("actor", req.ActorID),
		zap.String("reason", req.Reason))
	return nil
}

var _ Engine = &engine{}

// Submit is a convenience wrapper moving a draft branch into review.
func Submit(ctx context.Context, e Engine, branchID string, actor model.Actor) error {
	return e.Execute(ctx, TransitionRequest{
		BranchID:  branchID,
		Event:     EventSubmit,
		ActorID:   actor.ID,
		ActorKind: actor.Kind,
	})
}
