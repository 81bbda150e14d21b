package instrumented

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	opentracing "github.com/opentracing/opentracing-go"
)

// NewBranchStore wraps a branch store with tracing spans.
func NewBranchStore(tr opentracing.Tracer, w store.BranchStore) store.BranchStore {
	return &instrumentedBranches{tr: tr, w: w}
}

type instrumentedBranches struct {
	tr opentracing.Tracer
	w  store.BranchStore
}

func (i *instrumentedBranches) Initialize() error { return i.w.Initialize() }
func (i *instrumentedBranches) Close() error      { return i.w.Close() }

func (i *instrumentedBranches) Create(ctx context.Context, branch *model.BranchDescriptor) (err error) {
	traced(ctx, i.tr, "create branch "+branch.ID, func() { err = i.w.Create(ctx, branch) })
	return
}

func (i *instrumentedBranches) Get(ctx context.Context, id string) (branch *model.BranchDescriptor, err error) {
	traced(ctx, i.tr, "get branch "+id, func() { branch, err = i.w.Get(ctx, id) })
	return
}

func (i *instrumentedBranches) Update(ctx context.Context, branch *model.BranchDescriptor) (err error) {
	traced(ctx, i.tr, "update branch "+branch.ID, func() { err = i.w.Update(ctx, branch) })
	return
}

func (i *instrumentedBranches) List(ctx context.Context) (result []model.BranchDescriptor, err error) {
	traced(ctx, i.tr, "list branches", func() { result, err = i.w.List(ctx) })
	return
}
