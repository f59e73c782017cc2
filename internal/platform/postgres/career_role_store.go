package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shahid1330/careerPilot-AI/internal/domain"
	"github.com/shahid1330/careerPilot-AI/internal/platform/logger"
	"github.com/shahid1330/careerPilot-AI/internal/store"
)

// PostgresCareerRoleStore implements the store.CareerRoleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCareerRoleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCareerRoleStore creates a new PostgreSQL implementation of the
// CareerRoleStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCareerRoleStore(db store.DBTX, logger *slog.Logger) *PostgresCareerRoleStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCareerRoleStore{
		db:     db,
		logger: logger.With(slog.String("component", "career_role_store")),
	}
}

// Ensure PostgresCareerRoleStore implements store.CareerRoleStore interface
var _ store.CareerRoleStore = (*PostgresCareerRoleStore)(nil)

// WithTx implements store.CareerRoleStore.WithTx
func (s *PostgresCareerRoleStore) WithTx(tx *sql.Tx) store.CareerRoleStore {
	return &PostgresCareerRoleStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CareerRoleStore.Create
// Returns store.ErrDuplicate if the (user, lower(role name)) pair exists.
func (s *PostgresCareerRoleStore) Create(ctx context.Context, role *domain.CareerRole) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := role.Validate(); err != nil {
		log.Warn("career role validation failed during create",
			slog.String("error", err.Error()),
			slog.String("role_id", role.ID.String()))
		return err
	}

	query := `
		INSERT INTO career_roles (id, user_id, role_name, duration_days, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		role.ID,
		role.UserID,
		role.RoleName,
		role.DurationDays,
		role.CreatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate career role",
				slog.String("user_id", role.UserID.String()),
				slog.String("role_name", role.RoleName))
			return fmt.Errorf("%w: role %q", store.ErrDuplicate, role.RoleName)
		}

		log.Error("failed to create career role",
			slog.String("error", err.Error()),
			slog.String("role_id", role.ID.String()))
		return MapError(err)
	}

	log.Info("career role created successfully",
		slog.String("role_id", role.ID.String()),
		slog.String("user_id", role.UserID.String()),
		slog.Int("duration_days", role.DurationDays))
	return nil
}

// Update implements store.CareerRoleStore.Update
// Only the plan duration is mutable; the role name and owner are fixed.
// Returns store.ErrCareerRoleNotFound if the role does not exist.
func (s *PostgresCareerRoleStore) Update(ctx context.Context, role *domain.CareerRole) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := role.Validate(); err != nil {
		log.Warn("career role validation failed during update",
			slog.String("error", err.Error()),
			slog.String("role_id", role.ID.String()))
		return err
	}

	query := `
		UPDATE career_roles
		SET duration_days = $2
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, role.ID, role.DurationDays)
	if err != nil {
		log.Error("failed to update career role",
			slog.String("error", err.Error()),
			slog.String("role_id", role.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "career role"); err != nil {
		return store.ErrCareerRoleNotFound
	}

	log.Debug("career role updated",
		slog.String("role_id", role.ID.String()),
		slog.Int("duration_days", role.DurationDays))
	return nil
}

// GetByID implements store.CareerRoleStore.GetByID
// Returns store.ErrCareerRoleNotFound if the role does not exist.
func (s *PostgresCareerRoleStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.CareerRole, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, role_name, duration_days, created_at
		FROM career_roles
		WHERE id = $1
	`

	role, err := s.scanRole(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("career role not found", slog.String("role_id", id.String()))
			return nil, store.ErrCareerRoleNotFound
		}
		log.Error("failed to get career role by ID",
			slog.String("error", err.Error()),
			slog.String("role_id", id.String()))
		return nil, MapError(err)
	}

	return role, nil
}

// GetByUserAndName implements store.CareerRoleStore.GetByUserAndName
// The lookup is case-insensitive on the role name so that regenerating
// "backend engineer" reuses the role created for "Backend Engineer".
// Returns store.ErrCareerRoleNotFound if no such role exists.
func (s *PostgresCareerRoleStore) GetByUserAndName(
	ctx context.Context,
	userID uuid.UUID,
	roleName string,
) (*domain.CareerRole, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, role_name, duration_days, created_at
		FROM career_roles
		WHERE user_id = $1 AND lower(role_name) = lower($2)
	`

	role, err := s.scanRole(s.db.QueryRowContext(ctx, query, userID, roleName))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("career role not found by name",
				slog.String("user_id", userID.String()),
				slog.String("role_name", roleName))
			return nil, store.ErrCareerRoleNotFound
		}
		log.Error("failed to get career role by user and name",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	return role, nil
}

// ListByUser implements store.CareerRoleStore.ListByUser
func (s *PostgresCareerRoleStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.CareerRole, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, role_name, duration_days, created_at
		FROM career_roles
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list career roles",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var roles []*domain.CareerRole
	for rows.Next() {
		var role domain.CareerRole
		if err := rows.Scan(
			&role.ID,
			&role.UserID,
			&role.RoleName,
			&role.DurationDays,
			&role.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		roles = append(roles, &role)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return roles, nil
}

// Delete implements store.CareerRoleStore.Delete
// Returns store.ErrCareerRoleNotFound if the role does not exist.
func (s *PostgresCareerRoleStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM career_roles WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete career role",
			slog.String("error", err.Error()),
			slog.String("role_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "career role"); err != nil {
		return store.ErrCareerRoleNotFound
	}

	log.Info("career role deleted", slog.String("role_id", id.String()))
	return nil
}

// scanRole reads a single career role row.
func (s *PostgresCareerRoleStore) scanRole(row *sql.Row) (*domain.CareerRole, error) {
	var role domain.CareerRole
	err := row.Scan(
		&role.ID,
		&role.UserID,
		&role.RoleName,
		&role.DurationDays,
		&role.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &role, nil
}
