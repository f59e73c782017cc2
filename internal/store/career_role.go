package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shahid1330/careerPilot-AI/internal/domain"
)

// CareerRoleStore defines the interface for career role persistence.
type CareerRoleStore interface {
	// Create saves a new career role to the store.
	// Returns ErrDuplicate if the (user, role name) pair already exists.
	Create(ctx context.Context, role *domain.CareerRole) error

	// Update saves changes to an existing career role (currently only the
	// plan duration is mutable).
	// Returns ErrCareerRoleNotFound if the role does not exist.
	Update(ctx context.Context, role *domain.CareerRole) error

	// GetByID retrieves a career role by its unique ID.
	// Returns ErrCareerRoleNotFound if the role does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CareerRole, error)

	// GetByUserAndName retrieves a career role by owner and role name.
	// The name comparison is case-insensitive.
	// Returns ErrCareerRoleNotFound if no such role exists.
	GetByUserAndName(ctx context.Context, userID uuid.UUID, roleName string) (*domain.CareerRole, error)

	// ListByUser returns all career roles owned by the given user, most
	// recently created first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.CareerRole, error)

	// Delete removes a career role. Derived records (roadmap, daily plans)
	// are removed by ON DELETE CASCADE.
	// Returns ErrCareerRoleNotFound if the role does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new store instance bound to the provided transaction.
	WithTx(tx *sql.Tx) CareerRoleStore
}
