package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetNextID(t *testing.T) {
	db := setupTestDB(t)

	t.Run("starts at one", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, "seq:test")
			assert.NoError(t, err)
			assert.Equal(t, 1, id)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("increments across transactions", func(t *testing.T) {
		for want := 2; want <= 5; want++ {
			err := db.Update(func(txn *badger.Txn) error {
				id, err := getNextID(txn, "seq:test")
				assert.NoError(t, err)
				assert.Equal(t, want, id)
				return nil
			})
			assert.NoError(t, err)
		}
	})

	t.Run("independent sequences", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, "seq:other")
			assert.NoError(t, err)
			assert.Equal(t, 1, id)
			return nil
		})
		assert.NoError(t, err)
	})
}

func TestMarshalEntity(t *testing.T) {
	data, err := marshalEntity(map[string]int{"a": 1})
	assert.NoError(t, err)

	var out map[string]int
	assert.NoError(t, unmarshalEntity(data, &out))
	assert.Equal(t, 1, out["a"])
}

func TestUnmarshalEntityInvalid(t *testing.T) {
	var out map[string]int
	assert.Error(t, unmarshalEntity([]byte("not json"), &out))
}
