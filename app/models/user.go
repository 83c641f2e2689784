package models

import (
	"errors"
	"strings"
	"time"

	"pressroom/gravatar"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	u.Email = NormalizeEmail(u.Email)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

// AvatarURL returns the gravatar image URL for the user's email.
func (u *User) AvatarURL() string {
	return gravatar.URL(u.Email, gravatar.DefaultSize)
}

// CheckNewPassword validates a plaintext password before hashing.
func CheckNewPassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > 72 {
		return errors.New("password is too long (maximum 72 characters)")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address so the
// uniqueness index is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
