package badger

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	"github.com/dgraph-io/badger"
)

// NewReviewStore creates a badger backed review store under baseDir.
func NewReviewStore(baseDir string) store.ReviewStore {
	return &reviewStore{baseDir: baseDir}
}

type reviewStore struct {
	baseDir string
	db      *badger.DB
	init    sync.Once
	close   sync.Once
}

func (r *reviewStore) Initialize() error {
	var err error
	r.init.Do(func() {
		r.db, err = makeBadgerDb(dbPath(r.baseDir, reviewDb))
	})
	return err
}

func (r *reviewStore) Close() error {
	var err error
	r.close.Do(func() {
		if r.db != nil {
			err = r.db.Close()
			if err == nil {
				r.db = nil
			}
		}
	})
	return err
}

func (r *reviewStore) Create(_ context.Context, review *model.Review) error {
	if review.ID == "" {
		return store.IDIsRequired
	}
	if err := model.ValidateReview(*review); err != nil {
		return err
	}
	key := []byte(review.ID)
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := getValue(txn, key, store.ReviewNotFound); err != store.ReviewNotFound {
			if err == nil {
				return store.ReviewAlreadyExists
			}
			return err
		}
		review.CreatedAt = time.Now().UTC()
		review.UpdatedAt = review.CreatedAt
		data, err := marshal(review)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

func (r *reviewStore) Get(_ context.Context, id string) (*model.Review, error) {
	if id == "" {
		return nil, store.IDIsRequired
	}
	var review model.Review
	verr := r.db.View(func(txn *badger.Txn) error {
		data, err := getValue(txn, []byte(id), store.ReviewNotFound)
		if err != nil {
			return err
		}
		return unmarshal(data, &review)
	})
	if verr != nil {
		return nil, verr
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
	key := []byte(review.ID)
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := getValue(txn, key, store.ReviewNotFound); err != nil {
			return err
		}
		review.UpdatedAt = time.Now().UTC()
		data, err := marshal(review)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

func (r *reviewStore) ListByBranch(_ context.Context, branchID string) ([]model.Review, error) {
	var result []model.Review
	err := scanPrefix(r.db, nil, func(_, value []byte) error {
		var review model.Review
		if err := unmarshal(value, &review); err != nil {
			return err
		}
		if review.BranchID == branchID {
			result = append(result, review)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// ksuid ids are time-sortable, keep creation order stable
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
