package repositories

import (
	"testing"

	"pressroom/app/models"

	"github.com/stretchr/testify/assert"
)

func TestBadgerUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("create user", func(t *testing.T) {
		user := &models.User{
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "hash",
		}
		err := repo.Create(user)
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		user := &models.User{
			Name:         "Alice Again",
			Email:        "alice@example.com",
			PasswordHash: "hash",
		}
		err := repo.Create(user)
		assert.Equal(t, ErrDuplicateEmail, err)
	})

	t.Run("duplicate email rejected regardless of case", func(t *testing.T) {
		user := &models.User{
			Name:         "Shouty Alice",
			Email:        "ALICE@EXAMPLE.COM",
			PasswordHash: "hash",
		}
		err := repo.Create(user)
		assert.Equal(t, ErrDuplicateEmail, err)
	})

	t.Run("get by ID", func(t *testing.T) {
		user, err := repo.GetByID(1)
		assert.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("get by email", func(t *testing.T) {
		user, err := repo.GetByEmail("Alice@Example.com")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("get missing user", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.Equal(t, ErrNotFound, err)

		_, err = repo.GetByEmail("nobody@example.com")
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("update user", func(t *testing.T) {
		user, err := repo.GetByID(1)
		assert.NoError(t, err)

		user.Name = "Alice Updated"
		assert.NoError(t, repo.Update(user))

		updated, err := repo.GetByID(1)
		assert.NoError(t, err)
		assert.Equal(t, "Alice Updated", updated.Name)
	})

	t.Run("only the first user becomes admin", func(t *testing.T) {
		first, err := repo.GetByID(1)
		assert.NoError(t, err)
		assert.True(t, first.Admin)

		bob := &models.User{
			Name:         "Bob",
			Email:        "bob@example.com",
			PasswordHash: "hash",
		}
		assert.NoError(t, repo.Create(bob))
		assert.False(t, bob.Admin)
	})

	t.Run("delete frees the email", func(t *testing.T) {
		user, err := repo.GetByEmail("bob@example.com")
		assert.NoError(t, err)
		assert.NoError(t, repo.Delete(user.ID))

		_, err = repo.GetByID(user.ID)
		assert.Equal(t, ErrNotFound, err)

		// Email index entry is gone, so the address can register again
		assert.NoError(t, repo.Create(&models.User{
			Name:         "New Bob",
			Email:        "bob@example.com",
			PasswordHash: "hash",
		}))
	})

	t.Run("update missing user", func(t *testing.T) {
		err := repo.Update(&models.User{ID: 999, Name: "Ghost", Email: "g@g.com", PasswordHash: "h"})
		assert.Equal(t, ErrNotFound, err)
	})
}
