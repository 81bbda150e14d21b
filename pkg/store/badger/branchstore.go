package badger

import (
	"context"
	"sync"
	"time"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	"github.com/dgraph-io/badger"
)

// NewBranchStore creates a badger backed branch store under baseDir.
func NewBranchStore(baseDir string) store.BranchStore {
	return &branchStore{baseDir: baseDir}
}

type branchStore struct {
	baseDir string
	db      *badger.DB
	init    sync.Once
	close   sync.Once
}

func (b *branchStore) Initialize() error {
	var err error
	b.init.Do(func() {
		b.db, err = makeBadgerDb(dbPath(b.baseDir, branchDb))
	})
	return err
}

func (b *branchStore) Close() error {
	var err error
	b.close.Do(func() {
		if b.db != nil {
			err = b.db.Close()
			if err == nil {
				b.db = nil
			}
		}
	})
	return err
}

func (b *branchStore) Create(_ context.Context, branch *model.BranchDescriptor) error {
	if branch.ID == "" {
		return store.IDIsRequired
	}
	if err := model.ValidateBranch(*branch); err != nil {
		return err
	}
	key := []byte(branch.ID)
	return b.db.Update(func(txn *badger.Txn) error {
		if _, err := getValue(txn, key, store.BranchNotFound); err != store.BranchNotFound {
			if err == nil {
				return store.BranchAlreadyExists
			}
			return err
		}
		branch.Version = 1
		branch.CreatedAt = time.Now().UTC()
		branch.UpdatedAt = branch.CreatedAt
		data, err := marshal(branch)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

func (b *branchStore) Get(_ context.Context, id string) (*model.BranchDescriptor, error) {
	if id == "" {
		return nil, store.IDIsRequired
	}
	var branch model.BranchDescriptor
	verr := b.db.View(func(txn *badger.Txn) error {
		data, err := getValue(txn, []byte(id), store.BranchNotFound)
		if err != nil {
			return err
		}
		return unmarshal(data, &branch)
	})
	if verr != nil {
		return nil, verr
	}
	return &branch, nil
}

// Update writes the branch back if its stored Version still matches,
// then bumps the version. A mismatch reports ConcurrentUpdate so the
// caller can re-read and retry.
func (b *branchStore) Update(_ context.Context, branch *model.BranchDescriptor) error {
	if branch.ID == "" {
		return store.IDIsRequired
	}
	if err := model.ValidateBranch(*branch); err != nil {
		return err
	}
	key := []byte(branch.ID)
	return b.db.Update(func(txn *badger.Txn) error {
		data, err := getValue(txn, key, store.BranchNotFound)
		if err != nil {
			return err
		}
		var current model.BranchDescriptor
		if err := unmarshal(data, &current); err != nil {
			return err
		}
		if current.Version != branch.Version {
			return store.ConcurrentUpdate
		}
		branch.Version++
		branch.UpdatedAt = time.Now().UTC()
		next, err := marshal(branch)
		if err != nil {
			return err
		}
		return txn.Set(key, next)
	})
}

func (b *branchStore) List(_ context.Context) ([]model.BranchDescriptor, error) {
	var result []model.BranchDescriptor
	err := scanPrefix(b.db, nil, func(_, value []byte) error {
		var branch model.BranchDescriptor
		if err := unmarshal(value, &branch); err != nil {
			return err
		}
		result = append(result, branch)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
