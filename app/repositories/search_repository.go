package repositories

import (
	"fmt"
	"sort"

	"pressroom/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerSearchRepository implements SearchRepository using BadgerDB.
// Counters are keyed "search:<userID>:<term>"; user ID 0 holds the
// site-wide aggregate.
type BadgerSearchRepository struct {
	db *badger.DB
}

// NewBadgerSearchRepository creates a new BadgerSearchRepository
func NewBadgerSearchRepository(db *badger.DB) *BadgerSearchRepository {
	return &BadgerSearchRepository{db: db}
}

// Increment bumps the counter for a term by one, creating it at 1
func (r *BadgerSearchRepository) Increment(userID int, term string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d:%s", SearchKeyPrefix, userID, term))

		entry := models.SearchTerm{Term: term, Count: 1, UserID: userID}
		item, err := txn.Get(key)
		if err == nil {
			if err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &entry)
			}); err != nil {
				return err
			}
			entry.Count++
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		data, err := marshalEntity(&entry)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Top returns the n highest counters for a user, count descending with
// ties broken by term for deterministic ordering
func (r *BadgerSearchRepository) Top(userID, n int) ([]*models.SearchTerm, error) {
	var terms []*models.SearchTerm

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("%s%d:", SearchKeyPrefix, userID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var entry models.SearchTerm
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &entry)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal search term: %v", err)
			}
			terms = append(terms, &entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if n > 0 && len(terms) > n {
		terms = terms[:n]
	}
	return terms, nil
}
