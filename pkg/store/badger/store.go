// Package badger persists portal records in embedded badger key-value
// databases, one database directory per record family.
package badger

import (
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger"
	jsoniter "github.com/json-iterator/go"
)

const (
	branchDb  = "branches"
	contentDb = "content"
	reviewDb  = "reviews"
)

func makeBadgerDb(dir string) (*badger.DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	bopts := badger.DefaultOptions(dir)
	bopts.Logger = nil
	return badger.Open(bopts)
}

func dbPath(baseDir, name string) string {
	if baseDir == "" {
		baseDir = ".portal"
	}
	return filepath.Join(baseDir, name)
}

func marshal(v interface{}) ([]byte, error) {
	return jsoniter.Marshal(v)
}

func unmarshal(data []byte, v interface{}) error {
	return jsoniter.Unmarshal(data, v)
}

// getValue copies the value for key inside txn, mapping badger's
// not-found to the given sentinel.
func getValue(txn *badger.Txn, key []byte, notFound error) ([]byte, error) {
	item, err := txn.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, notFound
		}
		return nil, err
	}
	return item.ValueCopy(nil)
}

// scanPrefix visits every value under prefix.
func scanPrefix(db *badger.DB, prefix []byte, visit func(key, value []byte) error) error {
	return db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := visit(item.KeyCopy(nil), value); err != nil {
				return err
			}
		}
		return nil
	})
}
