package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shahid1330/careerPilot-AI/internal/domain"
)

// RoadmapStore defines the interface for roadmap persistence.
// Roadmaps are replaced whole on regeneration: DeleteByRoleID then Create.
type RoadmapStore interface {
	// Create saves a new roadmap to the store.
	Create(ctx context.Context, roadmap *domain.Roadmap) error

	// GetByRoleID retrieves the roadmap owned by the given career role.
	// Returns ErrRoadmapNotFound if none exists.
	GetByRoleID(ctx context.Context, careerRoleID uuid.UUID) (*domain.Roadmap, error)

	// DeleteByRoleID removes the roadmap owned by the given career role.
	// Deleting a role with no roadmap is not an error.
	DeleteByRoleID(ctx context.Context, careerRoleID uuid.UUID) error

	// WithTx returns a new store instance bound to the provided transaction.
	WithTx(tx *sql.Tx) RoadmapStore
}
