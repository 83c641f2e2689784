package services

import (
	"errors"
	"fmt"

	"pressroom/app/models"
	"pressroom/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown email and a wrong
// password so the API surface does not reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles registration and login
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new user with a bcrypt-hashed password. The
// repository promotes the first user ever created to site admin.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	if err := models.CheckNewPassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         name,
		Email:        models.NormalizeEmail(email),
		PasswordHash: string(hash),
	}
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %v", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an email/password pair
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err == repositories.ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
