package instrumented

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	opentracing "github.com/opentracing/opentracing-go"
)

// NewReviewStore wraps a review store with tracing spans.
func NewReviewStore(tr opentracing.Tracer, w store.ReviewStore) store.ReviewStore {
	return &instrumentedReviews{tr: tr, w: w}
}

type instrumentedReviews struct {
	tr opentracing.Tracer
	w  store.ReviewStore
}

func (i *instrumentedReviews) Initialize() error { return i.w.Initialize() }
func (i *instrumentedReviews) Close() error      { return i.w.Close() }

func (i *instrumentedReviews) Create(ctx context.Context, review *model.Review) (err error) {
	traced(ctx, i.tr, "create review "+review.ID, func() { err = i.w.Create(ctx, review) })
	return
}

func (i *instrumentedReviews) Get(ctx context.Context, id string) (review *model.Review, err error) {
	traced(ctx, i.tr, "get review "+id, func() { review, err = i.w.Get(ctx, id) })
	return
}

func (i *instrumentedReviews) Update(ctx context.Context, review *model.Review) (err error) {
	traced(ctx, i.tr, "update review "+review.ID, func() { err = i.w.Update(ctx, review) })
	return
}

func (i *instrumentedReviews) ListByBranch(ctx context.Context, branchID string) (result []model.Review, err error) {
	traced(ctx, i.tr, "list reviews for branch "+branchID, func() { result, err = i.w.ListByBranch(ctx, branchID) })
	return
}
