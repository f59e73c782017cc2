package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahid1330/careerPilot-AI/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("alice@example.com", "alice", "$2a$10$hash", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "alice", user.Username)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewUser("not-an-email", "alice", "$2a$10$hash", "")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("empty username rejected", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewUser("alice@example.com", "", "$2a$10$hash", "")
		assert.ErrorIs(t, err, domain.ErrEmptyUserName)
	})

	t.Run("empty password hash rejected", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewUser("alice@example.com", "alice", "", "")
		assert.ErrorIs(t, err, domain.ErrEmptyPasswordHash)
	})
}
