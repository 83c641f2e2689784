package services

import (
	"testing"

	"pressroom/app/repositories"
	"pressroom/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService(t *testing.T) {
	userRepo := mock.NewUserRepository()
	service := NewAuthService(userRepo)

	t.Run("register hashes the password", func(t *testing.T) {
		user, err := service.Register("Alice", "alice@example.com", "a secure password")
		assert.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.NotEqual(t, "a secure password", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("a secure password")))
	})

	t.Run("first registered user is admin", func(t *testing.T) {
		user, err := userRepo.GetByEmail("alice@example.com")
		assert.NoError(t, err)
		assert.True(t, user.Admin)
	})

	t.Run("subsequent users are not admins", func(t *testing.T) {
		user, err := service.Register("Bob", "bob@example.com", "another password")
		assert.NoError(t, err)
		assert.False(t, user.Admin)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := service.Register("Alice Again", "alice@example.com", "whatever password")
		assert.Equal(t, repositories.ErrDuplicateEmail, err)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := service.Register("Carol", "carol@example.com", "short")
		assert.Error(t, err)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		_, err := service.Register("Dave", "not-an-email", "a secure password")
		assert.Error(t, err)
	})

	t.Run("authenticate with correct credentials", func(t *testing.T) {
		user, err := service.Authenticate("alice@example.com", "a secure password")
		assert.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("authenticate is case-insensitive on email", func(t *testing.T) {
		user, err := service.Authenticate("ALICE@EXAMPLE.COM", "a secure password")
		assert.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Authenticate("alice@example.com", "wrong password")
		assert.Equal(t, ErrInvalidCredentials, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Authenticate("nobody@example.com", "a secure password")
		assert.Equal(t, ErrInvalidCredentials, err)
	})
}
