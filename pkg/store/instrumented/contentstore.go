package instrumented

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	opentracing "github.com/opentracing/opentracing-go"
)

// NewContentStore wraps a content store with tracing spans.
func NewContentStore(tr opentracing.Tracer, w store.ContentStore) store.ContentStore {
	return &instrumentedContent{tr: tr, w: w}
}

type instrumentedContent struct {
	tr opentracing.Tracer
	w  store.ContentStore
}

func (i *instrumentedContent) Initialize() error { return i.w.Initialize() }
func (i *instrumentedContent) Close() error      { return i.w.Close() }

func (i *instrumentedContent) Upsert(ctx context.Context, item *model.ContentItem) (err error) {
	traced(ctx, i.tr, "upsert content "+item.ID, func() { err = i.w.Upsert(ctx, item) })
	return
}

func (i *instrumentedContent) Get(ctx context.Context, id string) (item *model.ContentItem, err error) {
	traced(ctx, i.tr, "get content "+id, func() { item, err = i.w.Get(ctx, id) })
	return
}

func (i *instrumentedContent) GetMany(ctx context.Context, ids []string) (items map[string]model.ContentItem, err error) {
	traced(ctx, i.tr, "get content batch", func() { items, err = i.w.GetMany(ctx, ids) })
	return
}

func (i *instrumentedContent) ListByBranch(ctx context.Context, branchID string) (items []model.ContentItem, err error) {
	traced(ctx, i.tr, "list content for branch "+branchID, func() { items, err = i.w.ListByBranch(ctx, branchID) })
	return
}

func (i *instrumentedContent) Archive(ctx context.Context, id string) (err error) {
	traced(ctx, i.tr, "archive content "+id, func() { err = i.w.Archive(ctx, id) })
	return
}

func (i *instrumentedContent) SubcategoryNames(ctx context.Context, ids []string) (names map[string]string, err error) {
	traced(ctx, i.tr, "resolve subcategories", func() { names, err = i.w.SubcategoryNames(ctx, ids) })
	return
}

func (i *instrumentedContent) PutSubcategory(ctx context.Context, id, name string) (err error) {
	traced(ctx, i.tr, "put subcategory "+id, func() { err = i.w.PutSubcategory(ctx, id, name) })
	return
}
