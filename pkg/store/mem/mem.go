// Package mem provides in-memory store implementations, used by tests
// and as a throwaway backend for experiments.
package mem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
)

// New builds a full in-memory store set.
func New() store.Stores {
	return store.Stores{
		Branches: NewBranchStore(),
		Content:  NewContentStore(),
		Reviews:  NewReviewStore(),
	}
}

// NewBranchStore creates an in-memory branch store.
func NewBranchStore() store.BranchStore {
	return &branchStore{branches: map[string]model.BranchDescriptor{}}
}

type branchStore struct {
	mu       sync.RWMutex
	branches map[string]model.BranchDescriptor
}

func (b *branchStore) Initialize() error { return nil }
func (b *branchStore) Close() error      { return nil }

func (b *branchStore) Create(_ context.Context, branch *model.BranchDescriptor) error {
	if branch.ID == "" {
		return store.IDIsRequired
	}
	if err := model.ValidateBranch(*branch); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.branches[branch.ID]; ok {
		return store.BranchAlreadyExists
	}
	branch.Version = 1
	branch.CreatedAt = time.Now().UTC()
	branch.UpdatedAt = branch.CreatedAt
	b.branches[branch.ID] = *branch
	return nil
}

func (b *branchStore) Get(_ context.Context, id string) (*model.BranchDescriptor, error) {
	if id == "" {
		return nil, store.IDIsRequired
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	branch, ok := b.branches[id]
	if !ok {
		return nil, store.BranchNotFound
	}
	return &branch, nil
}

func (b *branchStore) Update(_ context.Context, branch *model.BranchDescriptor) error {
	if branch.ID == "" {
		return store.IDIsRequired
	}
	if err := model.ValidateBranch(*branch); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	current, ok := b.branches[branch.ID]
	if !ok {
		return store.BranchNotFound
	}
	if current.Version != branch.Version {
		return store.ConcurrentUpdate
	}
	branch.Version++
	branch.UpdatedAt = time.Now().UTC()
	b.branches[branch.ID] = *branch
	return nil
}

func (b *branchStore) List(_ context.Context) ([]model.BranchDescriptor, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := make([]model.BranchDescriptor, 0, len(b.branches))
	for _, branch := range b.branches {
		result = append(result, branch)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// NewContentStore creates an in-memory content store.
func NewContentStore() store.ContentStore {
	return &contentStore{
		items:   map[string]model.ContentItem{},
		subcats: map[string]string{},
	}
}

type contentStore struct {
	mu      sync.RWMutex
	items   map[string]model.ContentItem
	subcats map[string]string
}

func (c *contentStore) Initialize() error { return nil }
func (c *contentStore) Close() error      { return nil }

func (c *contentStore) Upsert(_ context.Context, item *model.ContentItem) error {
	if item.ID == "" {
		return store.IDIsRequired
	}
	if err := model.ValidateContent(*item); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	item.UpdatedAt = time.Now().UTC()
	c.items[item.ID] = *item
	return nil
}

func (c *contentStore) Get(_ context.Context, id string) (*model.ContentItem, error) {
	if id == "" {
		return nil, store.IDIsRequired
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		return nil, store.ContentNotFound
	}
	return &item, nil
}

func (c *contentStore) GetMany(_ context.Context, ids []string) (map[string]model.ContentItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]model.ContentItem, len(ids))
	for _, id := range ids {
		if item, ok := c.items[id]; ok {
			result[id] = item
		}
	}
	return result, nil
}

func (c *contentStore) ListByBranch(_ context.Context, branchID string) ([]model.ContentItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var result []model.ContentItem
	for _, item := range c.items {
		if item.BranchID == branchID {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (c *contentStore) Archive(ctx context.Context, id string) error {
	item, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	item.Archived = true
	return c.Upsert(ctx, item)
}

func (c *contentStore) SubcategoryNames(_ context.Context, ids []string) (map[string]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]string, len(ids))
	for _, id := range ids {
		if name, ok := c.subcats[id]; ok {
			result[id] = name
		}
	}
	return result, nil
}

func (c *contentStore) PutSubcategory(_ context.Context, id, name string) error {
	if id == "" {
		return store.IDIsRequired
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subcats[id] = name
	return nil
}

// NewReviewStore creates an in-memory review store.
func NewReviewStore() store.ReviewStore {
	return &reviewStore{reviews: map[string]model.Review{}}
}

type reviewStore struct {
	mu      sync.RWMutex
	reviews map[string]model.Review
}

func (r *reviewStore) Initialize() error { return nil }
func (r *reviewStore) Close() error      { return nil }

func (r *reviewStore) Create(_ context.Context, review *model.Review) error {
	if review.ID == "" {
		return store.IDIsRequired
	}
	if err := model.ValidateReview(*review); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[review.ID]; ok {
		return store.ReviewAlreadyExists
	}
	review.CreatedAt = time.Now().UTC()
	review.UpdatedAt = review.CreatedAt
	r.reviews[review.ID] = *review
	return nil
}

func (r *reviewStore) Get(_ context.Context, id string) (*model.Review, error) {
	if id == "" {
		return nil, store.IDIsRequired
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	review, ok := r.reviews[id]
	if !ok {
		return nil, store.ReviewNotFound
	}
	return &review, nil
}

func (r *reviewStore) Update(_ context.Context, review *model.Review) error {
	if review.ID == "" {
		return store.IDIsRequired
	}
	if err := model.ValidateReview(*review); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[review.ID]; !ok {
		return store.ReviewNotFound
	}
	review.UpdatedAt = time.Now().UTC()
	r.reviews[review.ID] = *review
	return nil
}

func (r *reviewStore) ListByBranch(_ context.Context, branchID string) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []model.Review
	for _, review := range r.reviews {
		if review.BranchID == branchID {
			result = append(result, review)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
