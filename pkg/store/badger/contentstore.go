package badger

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	"github.com/dgraph-io/badger"
)

const (
	itemPrefix   = "item:"
	subcatPrefix = "subcat:"
)

// NewContentStore creates a badger backed content store under baseDir.
func NewContentStore(baseDir string) store.ContentStore {
	return &contentStore{baseDir: baseDir}
}

type contentStore struct {
	baseDir string
	db      *badger.DB
	init    sync.Once
	close   sync.Once
}

func (c *contentStore) Initialize() error {
	var err error
	c.init.Do(func() {
		c.db, err = makeBadgerDb(dbPath(c.baseDir, contentDb))
	})
	return err
}

func (c *contentStore) Close() error {
	var err error
	c.close.Do(func() {
		if c.db != nil {
			err = c.db.Close()
			if err == nil {
				c.db = nil
			}
		}
	})
	return err
}

func itemKey(id string) []byte {
	return []byte(itemPrefix + id)
}

func (c *contentStore) Upsert(_ context.Context, item *model.ContentItem) error {
	if item.ID == "" {
		return store.IDIsRequired
	}
	if err := model.ValidateContent(*item); err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		if item.CreatedAt.IsZero() {
			item.CreatedAt = time.Now().UTC()
		}
		item.UpdatedAt = time.Now().UTC()
		data, err := marshal(item)
		if err != nil {
			return err
		}
		return txn.Set(itemKey(item.ID), data)
	})
}

func (c *contentStore) Get(_ context.Context, id string) (*model.ContentItem, error) {
	if id == "" {
		return nil, store.IDIsRequired
	}
	var item model.ContentItem
	verr := c.db.View(func(txn *badger.Txn) error {
		data, err := getValue(txn, itemKey(id), store.ContentNotFound)
		if err != nil {
			return err
		}
		return unmarshal(data, &item)
	})
	if verr != nil {
		return nil, verr
	}
	return &item, nil
}

func (c *contentStore) GetMany(_ context.Context, ids []string) (map[string]model.ContentItem, error) {
	result := make(map[string]model.ContentItem, len(ids))
	verr := c.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			if id == "" {
				continue
			}
			data, err := getValue(txn, itemKey(id), store.ContentNotFound)
			if err == store.ContentNotFound {
				continue
			}
			if err != nil {
				return err
			}
			var item model.ContentItem
			if err := unmarshal(data, &item); err != nil {
				return err
			}
			result[id] = item
		}
		return nil
	})
	if verr != nil {
		return nil, verr
	}
	return result, nil
}

func (c *contentStore) ListByBranch(_ context.Context, branchID string) ([]model.ContentItem, error) {
	var result []model.ContentItem
	err := scanPrefix(c.db, []byte(itemPrefix), func(_, value []byte) error {
		var item model.ContentItem
		if err := unmarshal(value, &item); err != nil {
			return err
		}
		if item.BranchID == branchID {
			result = append(result, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Archive soft-deletes an item. The record stays addressable so diffs
// can still classify it as deleted against its source lineage.
func (c *contentStore) Archive(ctx context.Context, id string) error {
	item, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	item.Archived = true
	return c.Upsert(ctx, item)
}

func (c *contentStore) SubcategoryNames(_ context.Context, ids []string) (map[string]string, error) {
	result := make(map[string]string, len(ids))
	verr := c.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			if id == "" {
				continue
			}
			data, err := getValue(txn, []byte(subcatPrefix+id), store.ContentNotFound)
			if err == store.ContentNotFound {
				continue
			}
			if err != nil {
				return err
			}
			result[id] = strings.TrimSpace(string(data))
		}
		return nil
	})
	if verr != nil {
		return nil, verr
	}
	return result, nil
}

func (c *contentStore) PutSubcategory(_ context.Context, id, name string) error {
	if id == "" {
		return store.IDIsRequired
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(subcatPrefix+id), []byte(name))
	})
}
