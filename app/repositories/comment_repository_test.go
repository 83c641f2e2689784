package repositories

import (
	"testing"

	"pressroom/app/models"

	"github.com/stretchr/testify/assert"
)

func TestBadgerCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerCommentRepository(db)

	t.Run("create comment", func(t *testing.T) {
		comment := &models.Comment{
			PostID:     1,
			AuthorID:   1,
			AuthorName: "Alice",
			Content:    "First comment",
		}
		err := repo.Create(comment)
		assert.NoError(t, err)
		assert.Equal(t, 1, comment.ID)
	})

	t.Run("get by ID", func(t *testing.T) {
		comment, err := repo.GetByID(1)
		assert.NoError(t, err)
		assert.Equal(t, "First comment", comment.Content)
	})

	t.Run("get missing comment", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("list by post", func(t *testing.T) {
		assert.NoError(t, repo.Create(&models.Comment{
			PostID: 1, AuthorID: 2, AuthorName: "Bob", Content: "Second comment",
		}))
		assert.NoError(t, repo.Create(&models.Comment{
			PostID: 2, AuthorID: 1, AuthorName: "Alice", Content: "Other post comment",
		}))

		comments, err := repo.ListByPost(1)
		assert.NoError(t, err)
		assert.Len(t, comments, 2)

		comments, err = repo.ListByPost(2)
		assert.NoError(t, err)
		assert.Len(t, comments, 1)

		comments, err = repo.ListByPost(3)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("update comment", func(t *testing.T) {
		comment, err := repo.GetByID(1)
		assert.NoError(t, err)

		comment.Content = "Edited comment"
		assert.NoError(t, repo.Update(comment))

		updated, err := repo.GetByID(1)
		assert.NoError(t, err)
		assert.Equal(t, "Edited comment", updated.Content)
	})

	t.Run("delete comment", func(t *testing.T) {
		assert.NoError(t, repo.Delete(1))
		_, err := repo.GetByID(1)
		assert.Equal(t, ErrNotFound, err)

		comments, err := repo.ListByPost(1)
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("delete missing comment", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, repo.Delete(999))
	})
}
