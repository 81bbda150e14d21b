package badger

import (
	"context"
	"testing"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) store.Stores {
	t.Helper()
	baseDir := t.TempDir()
	stores := store.Stores{
		Branches: NewBranchStore(baseDir),
		Content:  NewContentStore(baseDir),
		Reviews:  NewReviewStore(baseDir),
	}
	require.NoError(t, stores.Initialize())
	t.Cleanup(func() { require.NoError(t, stores.Close()) })
	return stores
}

func TestBranchRoundTrip(t *testing.T) {
	ctx := context.Background()
	stores := testStores(t)

	branch := model.BranchDescriptor{
		ID:                "br-1",
		Name:              "spring-updates",
		OwnerID:           "alice",
		State:             model.StateDraft,
		RequiredApprovals: 2,
	}
	require.NoError(t, stores.Branches.Create(ctx, &branch))
	assert.Equal(t, uint64(1), branch.Version)

	dup := branch
	assert.Equal(t, store.BranchAlreadyExists, stores.Branches.Create(ctx, &dup))

	got, err := stores.Branches.Get(ctx, "br-1")
	require.NoError(t, err)
	assert.Equal(t, "spring-updates", got.Name)
	assert.Equal(t, model.StateDraft, got.State)

	got.State = model.StateReview
	require.NoError(t, stores.Branches.Update(ctx, got))
	assert.Equal(t, uint64(2), got.Version)

	// stale version is rejected
	stale := *got
	stale.Version = 1
	assert.Equal(t, store.ConcurrentUpdate, stores.Branches.Update(ctx, &stale))

	_, err = stores.Branches.Get(ctx, "missing")
	assert.Equal(t, store.BranchNotFound, err)

	all, err := stores.Branches.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestContentRoundTrip(t *testing.T) {
	ctx := context.Background()
	stores := testStores(t)

	require.NoError(t, stores.Content.PutSubcategory(ctx, "sub-1", "Field Guides"))

	items := []model.ContentItem{
		{ID: "c-1", BranchID: "br-1", Title: "Guide", Slug: "guide", SubcategoryID: "sub-1", Body: "a\nb"},
		{ID: "c-2", BranchID: "br-1", Title: "Intro", Slug: "intro", Body: "hello"},
		{ID: "c-3", BranchID: "br-2", Title: "Other", Slug: "other"},
	}
	for i := range items {
		require.NoError(t, stores.Content.Upsert(ctx, &items[i]))
	}

	onBranch, err := stores.Content.ListByBranch(ctx, "br-1")
	require.NoError(t, err)
	assert.Len(t, onBranch, 2)

	batch, err := stores.Content.GetMany(ctx, []string{"c-1", "c-3", "nope"})
	require.NoError(t, err)
	assert.Len(t, batch, 2)
	assert.NotContains(t, batch, "nope")

	names, err := stores.Content.SubcategoryNames(ctx, []string{"sub-1", "sub-x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"sub-1": "Field Guides"}, names)

	require.NoError(t, stores.Content.Archive(ctx, "c-2"))
	got, err := stores.Content.Get(ctx, "c-2")
	require.NoError(t, err)
	assert.True(t, got.Archived)

	_, err = stores.Content.Get(ctx, "missing")
	assert.Equal(t, store.ContentNotFound, err)
}

func TestReviewRoundTrip(t *testing.T) {
	ctx := context.Background()
	stores := testStores(t)

	review := model.Review{
		ID:            "rev-1",
		BranchID:      "br-1",
		ReviewerID:    "bob",
		RequestedByID: "alice",
		Status:        model.ReviewPending,
		ReviewCycle:   1,
	}
	require.NoError(t, stores.Reviews.Create(ctx, &review))
	assert.Equal(t, store.ReviewAlreadyExists, stores.Reviews.Create(ctx, &review))

	review.Status = model.ReviewInProgress
	require.NoError(t, stores.Reviews.Update(ctx, &review))

	got, err := stores.Reviews.Get(ctx, "rev-1")
	require.NoError(t, err)
	assert.Equal(t, model.ReviewInProgress, got.Status)

	other := model.Review{ID: "rev-2", BranchID: "br-2", ReviewerID: "carol", Status: model.ReviewPending, ReviewCycle: 1}
	require.NoError(t, stores.Reviews.Create(ctx, &other))

	forBranch, err := stores.Reviews.ListByBranch(ctx, "br-1")
	require.NoError(t, err)
	require.Len(t, forBranch, 1)
	assert.Equal(t, "rev-1", forBranch[0].ID)
}
