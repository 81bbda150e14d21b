package model

import (
	"fmt"
	"time"
)

// ContentItem identifies one piece of content on a branch.
//
// When SourceContentID is empty the item is newly authored on its
// branch. Otherwise it was forked from the published item with that id
// and comparisons run against that source lineage.
type ContentItem struct {
	ID              string    `json:"id" yaml:"id"`
	BranchID        string    `json:"branchId" yaml:"branchId"`
	Title           string    `json:"title" yaml:"title"`
	Slug            string    `json:"slug" yaml:"slug"`
	Description     string    `json:"description,omitempty" yaml:"description,omitempty"`
	Category        string    `json:"category,omitempty" yaml:"category,omitempty"`
	SubcategoryID   string    `json:"subcategoryId,omitempty" yaml:"subcategoryId,omitempty"`
	Tags            []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	SourceContentID string    `json:"sourceContentId,omitempty" yaml:"sourceContentId,omitempty"`
	Body            string    `json:"body,omitempty" yaml:"body,omitempty"`
	Archived        bool      `json:"archived,omitempty" yaml:"archived,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
	_               struct{}
}

// IsFork tells whether the item tracks a published source item.
func (c *ContentItem) IsFork() bool {
	return c.SourceContentID != ""
}

// ValidateContent checks the invariants a content item must satisfy
// before it may be persisted.
func ValidateContent(c ContentItem) error {
	if c.ID == "" {
		return fmt.Errorf("empty field: content id is empty")
	}
	if c.Title == "" {
		return fmt.Errorf("empty field: content title is empty")
	}
	if c.Slug == "" {
		return fmt.Errorf("empty field: content slug is empty")
	}
	return nil
}
