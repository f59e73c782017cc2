package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shahid1330/careerPilot-AI/internal/domain"
)

// DailyPlanStore defines the interface for daily plan persistence.
type DailyPlanStore interface {
	// CreateBatch inserts all given entries in one statement batch.
	// Returns ErrDuplicateDayNumber if an entry violates the unique
	// (career_role_id, day_number) constraint.
	CreateBatch(ctx context.Context, plans []*domain.DailyPlan) error

	// ListByRoleID returns all entries for the given career role ordered by
	// day number.
	ListByRoleID(ctx context.Context, careerRoleID uuid.UUID) ([]*domain.DailyPlan, error)

	// DeleteByRoleID removes all entries for the given career role.
	// Deleting a role with no entries is not an error.
	DeleteByRoleID(ctx context.Context, careerRoleID uuid.UUID) error

	// WithTx returns a new store instance bound to the provided transaction.
	WithTx(tx *sql.Tx) DailyPlanStore
}
