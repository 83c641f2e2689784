package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgerSearchRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerSearchRepository(db)

	t.Run("increment creates counter at one", func(t *testing.T) {
		assert.NoError(t, repo.Increment(0, "Bitcoin"))

		top, err := repo.Top(0, 5)
		assert.NoError(t, err)
		assert.Len(t, top, 1)
		assert.Equal(t, "Bitcoin", top[0].Term)
		assert.Equal(t, 1, top[0].Count)
	})

	t.Run("increment bumps existing counter", func(t *testing.T) {
		assert.NoError(t, repo.Increment(0, "Bitcoin"))
		assert.NoError(t, repo.Increment(0, "Bitcoin"))

		top, err := repo.Top(0, 5)
		assert.NoError(t, err)
		assert.Equal(t, 3, top[0].Count)
	})

	t.Run("per-user counters are independent", func(t *testing.T) {
		assert.NoError(t, repo.Increment(7, "Tesla"))

		top, err := repo.Top(7, 5)
		assert.NoError(t, err)
		assert.Len(t, top, 1)
		assert.Equal(t, "Tesla", top[0].Term)

		global, err := repo.Top(0, 5)
		assert.NoError(t, err)
		for _, term := range global {
			assert.NotEqual(t, "Tesla", term.Term)
		}
	})

	t.Run("top sorts by count descending with term tiebreak", func(t *testing.T) {
		assert.NoError(t, repo.Increment(0, "Climate Change"))
		assert.NoError(t, repo.Increment(0, "Climate Change"))
		assert.NoError(t, repo.Increment(0, "Apple"))

		top, err := repo.Top(0, 5)
		assert.NoError(t, err)
		assert.Equal(t, "Bitcoin", top[0].Term)        // 3
		assert.Equal(t, "Climate Change", top[1].Term) // 2
		assert.Equal(t, "Apple", top[2].Term)          // 1, ties after it
	})

	t.Run("top respects the limit", func(t *testing.T) {
		for _, term := range []string{"A", "B", "C", "D", "E", "F"} {
			assert.NoError(t, repo.Increment(0, term))
		}
		top, err := repo.Top(0, 5)
		assert.NoError(t, err)
		assert.Len(t, top, 5)
	})

	t.Run("empty user has no top searches", func(t *testing.T) {
		top, err := repo.Top(42, 5)
		assert.NoError(t, err)
		assert.Empty(t, top)
	})
}
