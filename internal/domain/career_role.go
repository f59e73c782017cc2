package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Duration bounds for a learning plan, in days.
const (
	MinDurationDays = 1
	MaxDurationDays = 365
)

// Common validation errors for CareerRole
var (
	ErrEmptyRoleID     = errors.New("career role ID cannot be empty")
	ErrEmptyRoleUserID = errors.New("career role user ID cannot be empty")
	ErrEmptyRoleName   = errors.New("career role name cannot be empty")
)

// CareerRole represents a learning goal a user is pursuing: a target role
// plus a plan duration. It owns at most one Roadmap and up to DurationDays
// DailyPlan entries. Role names are unique per user case-insensitively;
// regenerating content for an existing (user, role) pair mutates this record
// rather than creating a duplicate.
type CareerRole struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RoleName     string    `json:"role_name"`
	DurationDays int       `json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewCareerRole creates a new CareerRole with the given user, role name and
// plan duration. It generates a new UUID and sets the creation timestamp.
// Returns an error if validation fails.
func NewCareerRole(userID uuid.UUID, roleName string, durationDays int) (*CareerRole, error) {
	role := &CareerRole{
		ID:           uuid.New(),
		UserID:       userID,
		RoleName:     strings.TrimSpace(roleName),
		DurationDays: durationDays,
		CreatedAt:    time.Now().UTC(),
	}

	if err := role.Validate(); err != nil {
		return nil, err
	}

	return role, nil
}

// Validate checks if the CareerRole has valid data.
// Returns an error if any field fails validation.
func (r *CareerRole) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRoleID
	}

	if r.UserID == uuid.Nil {
		return ErrEmptyRoleUserID
	}

	if strings.TrimSpace(r.RoleName) == "" {
		return ErrEmptyRoleName
	}

	if r.DurationDays < MinDurationDays || r.DurationDays > MaxDurationDays {
		return ErrInvalidDuration
	}

	return nil
}

// NormalizedName returns the role name in the canonical form used for
// case-insensitive uniqueness checks.
func (r *CareerRole) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(r.RoleName))
}
