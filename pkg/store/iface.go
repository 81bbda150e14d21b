// Package store defines persistence interfaces for branches, content
// items and reviews, plus the sentinel errors implementations report.
package store

import (
	"context"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
)

type errorString string

func (e errorString) Error() string {
	return string(e)
}

const (
	// IDIsRequired is returned whenever a record id is expected but not provided
	IDIsRequired errorString = "id is required"

	// BranchNotFound when a branch is not found
	BranchNotFound errorString = "branch not found"

	// BranchAlreadyExists is returned when a branch is expected to not exist yet
	BranchAlreadyExists errorString = "branch already exists"

	// ContentNotFound when a content item is not found
	ContentNotFound errorString = "content not found"

	// ReviewNotFound when a review is not found
	ReviewNotFound errorString = "review not found"

	// ReviewAlreadyExists is returned when a review is expected to not exist yet
	ReviewAlreadyExists errorString = "review already exists"

	// ConcurrentUpdate is returned when an optimistic version check fails
	ConcurrentUpdate errorString = "concurrent update detected"
)

// A BranchStore manages persistence for branch descriptors.
//
// Update performs an optimistic version check: the stored record must
// carry the same Version as the one passed in, and the write bumps it.
type BranchStore interface {
	Initialize() error
	Close() error

	Create(context.Context, *model.BranchDescriptor) error
	Get(context.Context, string) (*model.BranchDescriptor, error)
	Update(context.Context, *model.BranchDescriptor) error
	List(context.Context) ([]model.BranchDescriptor, error)
}

// A ContentStore manages persistence for content items and the
// subcategory reference data content metadata points at.
type ContentStore interface {
	Initialize() error
	Close() error

	Upsert(context.Context, *model.ContentItem) error
	Get(context.Context, string) (*model.ContentItem, error)
	// GetMany batch-fetches items by id; missing ids are simply absent
	// from the result rather than failing the call.
	GetMany(context.Context, []string) (map[string]model.ContentItem, error)
	ListByBranch(context.Context, string) ([]model.ContentItem, error)
	Archive(context.Context, string) error

	// SubcategoryNames resolves subcategory ids to display names;
	// unknown ids are absent from the result.
	SubcategoryNames(context.Context, []string) (map[string]string, error)
	PutSubcategory(context.Context, string, string) error
}

// A ReviewStore manages persistence for review records. Reviews are
// append-and-update only: there is no delete.
type ReviewStore interface {
	Initialize() error
	Close() error

	Create(context.Context, *model.Review) error
	Get(context.Context, string) (*model.Review, error)
	Update(context.Context, *model.Review) error
	ListByBranch(context.Context, string) ([]model.Review, error)
}

// Stores bundles the three stores a portal process operates on.
type Stores struct {
	Branches BranchStore
	Content  ContentStore
	Reviews  ReviewStore
}

// Initialize initializes all stores, stopping at the first failure.
func (s Stores) Initialize() error {
	for _, ini := range []interface{ Initialize() error }{s.Branches, s.Content, s.Reviews} {
		if err := ini.Initialize(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all stores, returning the first failure.
func (s Stores) Close() error {
	var firstErr error
	for _, cl := range []interface{ Close() error }{s.Branches, s.Content, s.Reviews} {
		if err := cl.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
