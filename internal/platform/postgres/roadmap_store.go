package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shahid1330/careerPilot-AI/internal/domain"
	"github.com/shahid1330/careerPilot-AI/internal/platform/logger"
	"github.com/shahid1330/careerPilot-AI/internal/store"
)

// PostgresRoadmapStore implements the store.RoadmapStore interface
// using a PostgreSQL database as the storage backend.
type PostgresRoadmapStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRoadmapStore creates a new PostgreSQL implementation of the
// RoadmapStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresRoadmapStore(db store.DBTX, logger *slog.Logger) *PostgresRoadmapStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRoadmapStore{
		db:     db,
		logger: logger.With(slog.String("component", "roadmap_store")),
	}
}

// Ensure PostgresRoadmapStore implements store.RoadmapStore interface
var _ store.RoadmapStore = (*PostgresRoadmapStore)(nil)

// WithTx implements store.RoadmapStore.WithTx
func (s *PostgresRoadmapStore) WithTx(tx *sql.Tx) store.RoadmapStore {
	return &PostgresRoadmapStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.RoadmapStore.Create
func (s *PostgresRoadmapStore) Create(ctx context.Context, roadmap *domain.Roadmap) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := roadmap.Validate(); err != nil {
		log.Warn("roadmap validation failed during create",
			slog.String("error", err.Error()),
			slog.String("roadmap_id", roadmap.ID.String()))
		return err
	}

	query := `
		INSERT INTO roadmaps (id, career_role_id, roadmap_text, generated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		roadmap.ID,
		roadmap.CareerRoleID,
		roadmap.RoadmapText,
		roadmap.GeneratedAt,
	)

	if err != nil {
		log.Error("failed to create roadmap",
			slog.String("error", err.Error()),
			slog.String("roadmap_id", roadmap.ID.String()),
			slog.String("role_id", roadmap.CareerRoleID.String()))
		return MapError(err)
	}

	log.Info("roadmap created successfully",
		slog.String("roadmap_id", roadmap.ID.String()),
		slog.String("role_id", roadmap.CareerRoleID.String()))
	return nil
}

// GetByRoleID implements store.RoadmapStore.GetByRoleID
// Returns store.ErrRoadmapNotFound if no roadmap exists for the role.
func (s *PostgresRoadmapStore) GetByRoleID(
	ctx context.Context,
	careerRoleID uuid.UUID,
) (*domain.Roadmap, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, career_role_id, roadmap_text, generated_at
		FROM roadmaps
		WHERE career_role_id = $1
	`

	var roadmap domain.Roadmap
	err := s.db.QueryRowContext(ctx, query, careerRoleID).Scan(
		&roadmap.ID,
		&roadmap.CareerRoleID,
		&roadmap.RoadmapText,
		&roadmap.GeneratedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("roadmap not found",
				slog.String("role_id", careerRoleID.String()))
			return nil, store.ErrRoadmapNotFound
		}
		log.Error("failed to get roadmap by role ID",
			slog.String("error", err.Error()),
			slog.String("role_id", careerRoleID.String()))
		return nil, MapError(err)
	}

	return &roadmap, nil
}

// DeleteByRoleID implements store.RoadmapStore.DeleteByRoleID
// Deleting when no roadmap exists is not an error; the supersede flow
// runs it unconditionally.
func (s *PostgresRoadmapStore) DeleteByRoleID(ctx context.Context, careerRoleID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM roadmaps WHERE career_role_id = $1`
	result, err := s.db.ExecContext(ctx, query, careerRoleID)
	if err != nil {
		log.Error("failed to delete roadmap",
			slog.String("error", err.Error()),
			slog.String("role_id", careerRoleID.String()))
		return MapError(err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows > 0 {
		log.Debug("superseded roadmap deleted",
			slog.String("role_id", careerRoleID.String()),
			slog.Int64("rows", rows))
	}
	return nil
}
