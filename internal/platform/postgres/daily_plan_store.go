package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shahid1330/careerPilot-AI/internal/domain"
	"github.com/shahid1330/careerPilot-AI/internal/platform/logger"
	"github.com/shahid1330/careerPilot-AI/internal/store"
)

// PostgresDailyPlanStore implements the store.DailyPlanStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDailyPlanStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDailyPlanStore creates a new PostgreSQL implementation of the
// DailyPlanStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresDailyPlanStore(db store.DBTX, logger *slog.Logger) *PostgresDailyPlanStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDailyPlanStore{
		db:     db,
		logger: logger.With(slog.String("component", "daily_plan_store")),
	}
}

// Ensure PostgresDailyPlanStore implements store.DailyPlanStore interface
var _ store.DailyPlanStore = (*PostgresDailyPlanStore)(nil)

// WithTx implements store.DailyPlanStore.WithTx
func (s *PostgresDailyPlanStore) WithTx(tx *sql.Tx) store.DailyPlanStore {
	return &PostgresDailyPlanStore{
		db:     tx,
		logger: s.logger,
	}
}

// CreateBatch implements store.DailyPlanStore.CreateBatch
// All entries are inserted through one prepared statement. A unique
// violation on (career_role_id, day_number) maps to
// store.ErrDuplicateDayNumber so the orchestrator can recognize a
// concurrent regeneration instead of a generic failure.
func (s *PostgresDailyPlanStore) CreateBatch(ctx context.Context, plans []*domain.DailyPlan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(plans) == 0 {
		return nil
	}

	for _, plan := range plans {
		if err := plan.Validate(); err != nil {
			log.Warn("daily plan validation failed during batch create",
				slog.String("error", err.Error()),
				slog.Int("day_number", plan.DayNumber))
			return err
		}
	}

	query := `
		INSERT INTO daily_plans (id, career_role_id, day_number, topic, estimated_hours)
		VALUES ($1, $2, $3, $4, $5)
	`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		log.Error("failed to prepare daily plan insert",
			slog.String("error", err.Error()))
		return MapError(err)
	}
	defer func() { _ = stmt.Close() }()

	for _, plan := range plans {
		_, err := stmt.ExecContext(
			ctx,
			plan.ID,
			plan.CareerRoleID,
			plan.DayNumber,
			plan.Topic,
			plan.EstimatedHours,
		)
		if err != nil {
			if IsUniqueViolation(err) {
				log.Warn("concurrent regeneration detected during batch insert",
					slog.String("role_id", plan.CareerRoleID.String()),
					slog.Int("day_number", plan.DayNumber))
				return store.ErrDuplicateDayNumber
			}
			log.Error("failed to insert daily plan entry",
				slog.String("error", err.Error()),
				slog.String("role_id", plan.CareerRoleID.String()),
				slog.Int("day_number", plan.DayNumber))
			return MapError(err)
		}
	}

	log.Info("daily plan batch inserted",
		slog.String("role_id", plans[0].CareerRoleID.String()),
		slog.Int("entries", len(plans)))
	return nil
}

// ListByRoleID implements store.DailyPlanStore.ListByRoleID
func (s *PostgresDailyPlanStore) ListByRoleID(
	ctx context.Context,
	careerRoleID uuid.UUID,
) ([]*domain.DailyPlan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, career_role_id, day_number, topic, estimated_hours
		FROM daily_plans
		WHERE career_role_id = $1
		ORDER BY day_number
	`

	rows, err := s.db.QueryContext(ctx, query, careerRoleID)
	if err != nil {
		log.Error("failed to list daily plans",
			slog.String("error", err.Error()),
			slog.String("role_id", careerRoleID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var plans []*domain.DailyPlan
	for rows.Next() {
		var plan domain.DailyPlan
		if err := rows.Scan(
			&plan.ID,
			&plan.CareerRoleID,
			&plan.DayNumber,
			&plan.Topic,
			&plan.EstimatedHours,
		); err != nil {
			return nil, MapError(err)
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return plans, nil
}

// DeleteByRoleID implements store.DailyPlanStore.DeleteByRoleID
// Deleting when no entries exist is not an error.
func (s *PostgresDailyPlanStore) DeleteByRoleID(ctx context.Context, careerRoleID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM daily_plans WHERE career_role_id = $1`
	result, err := s.db.ExecContext(ctx, query, careerRoleID)
	if err != nil {
		log.Error("failed to delete daily plans",
			slog.String("error", err.Error()),
			slog.String("role_id", careerRoleID.String()))
		return MapError(err)
	}

	if rows, err := result.RowsAffected(); err == nil {
		log.Debug("daily plans deleted",
			slog.String("role_id", careerRoleID.String()),
			slog.Int64("rows", rows))
	}
	return nil
}
