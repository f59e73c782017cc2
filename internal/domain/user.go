package domain

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID       = errors.New("user ID cannot be empty")
	ErrEmptyUserEmail    = errors.New("user email cannot be empty")
	ErrEmptyUserName     = errors.New("user name cannot be empty")
	ErrEmptyPasswordHash = errors.New("user password hash cannot be empty")
)

// User represents a registered account. The password is stored only as a
// bcrypt hash; the plaintext never touches the domain layer.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a new User with the given attributes. It generates a new
// UUID for the user ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewUser(email, username, passwordHash, fullName string) (*User, error) {
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		CreatedAt:    time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyUserEmail
	}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	if u.Username == "" {
		return ErrEmptyUserName
	}

	if u.PasswordHash == "" {
		return ErrEmptyPasswordHash
	}

	return nil
}
