package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"backend/models"

	badger "github.com/dgraph-io/badger/v3"
)

// LocalCache is the offline mirror for the hot per-user documents (goals,
// streaks, statistics, profile). Written through on every successful remote
// write, read as fallback when the database is unreachable. Last writer wins.
type LocalCache struct {
	db *badger.DB
}

func OpenLocalCache(path string) (*LocalCache, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open local cache: %w", err)
	}
	return &LocalCache{db: db}, nil
}

func (c *LocalCache) Close() error {
	return c.db.Close()
}

// UserKey builds keys mirroring the tenant-scoped collection addressing,
// e.g. users/42/goals.
func UserKey(userID uint, parts ...string) string {
	key := fmt.Sprintf("users/%d", userID)
	for _, p := range parts {
		key += "/" + p
	}
	return key
}

func (c *LocalCache) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Get unmarshals the cached value into out. Returns models.ErrNotFound when
// the key has never been mirrored.
func (c *LocalCache) Get(key string, out any) error {
	return c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return models.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
}

func (c *LocalCache) Delete(key string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// DeletePrefix wipes every mirrored document under a prefix. Used by account
// erasure to clear users/{id}/.
func (c *LocalCache) DeletePrefix(prefix string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		var keys [][]byte
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
