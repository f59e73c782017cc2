package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shahid1330/careerPilot-AI/internal/domain"
	"github.com/shahid1330/careerPilot-AI/internal/generation"
	"github.com/shahid1330/careerPilot-AI/internal/store"
)

// dailyPlanMaxTokens raises the output budget for plan generation; a 365-day
// plan does not fit in the default completion budget.
const dailyPlanMaxTokens = 3000

// defaultFillerHours is the estimated-hours value for synthesized filler
// entries when the model produced fewer days than required.
const defaultFillerHours = 4

// defaultEstimatedHours is used when an entry omits its estimated_hours
// field entirely.
const defaultEstimatedHours = 3

// RolePlans groups a career role with its daily plan entries, for listing.
type RolePlans struct {
	Role  *domain.CareerRole  `json:"role"`
	Plans []*domain.DailyPlan `json:"plans"`
}

// GenerationService orchestrates the AI generation pipeline: it owns the
// task-specific business rules, keeps derived records consistent with their
// career role across regenerations, and normalizes model output to the exact
// shape the data model requires.
type GenerationService struct {
	db       *sql.DB
	roles    store.CareerRoleStore
	roadmaps store.RoadmapStore
	plans    store.DailyPlanStore
	client   generation.CompletionClient
	logger   *slog.Logger

	// runTx is injectable for testing; defaults to store.RunInTransaction.
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewGenerationService creates a GenerationService.
// It returns an error if any of the required dependencies are nil.
func NewGenerationService(
	db *sql.DB,
	roles store.CareerRoleStore,
	roadmaps store.RoadmapStore,
	plans store.DailyPlanStore,
	client generation.CompletionClient,
	logger *slog.Logger,
) (*GenerationService, error) {
	if roles == nil {
		return nil, &GenerationServiceError{Operation: "create_service", Message: "roles store cannot be nil"}
	}
	if roadmaps == nil {
		return nil, &GenerationServiceError{Operation: "create_service", Message: "roadmaps store cannot be nil"}
	}
	if plans == nil {
		return nil, &GenerationServiceError{Operation: "create_service", Message: "plans store cannot be nil"}
	}
	if client == nil {
		return nil, &GenerationServiceError{Operation: "create_service", Message: "completion client cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GenerationService{
		db:       db,
		roles:    roles,
		roadmaps: roadmaps,
		plans:    plans,
		client:   client,
		logger:   logger.With(slog.String("component", "generation_service")),
		runTx:    store.RunInTransaction,
	}, nil
}

// GenerateRoadmap generates a career roadmap for (user, role name) and
// persists it under the supersede policy: an existing role for the same
// name (case-insensitive) is reused with its duration updated and its
// derived records deleted; a missing one is created. The role mutation, the
// deletion of superseded records, and the new roadmap insert all commit in
// one transaction, so a provider or extractor failure rolls everything back
// and the caller sees no partial state.
func (s *GenerationService) GenerateRoadmap(
	ctx context.Context,
	userID uuid.UUID,
	roleName string,
	durationDays int,
) (*domain.Roadmap, error) {
	log := s.logger

	if durationDays < domain.MinDurationDays || durationDays > domain.MaxDurationDays {
		return nil, domain.ErrInvalidDuration
	}
	if strings.TrimSpace(roleName) == "" {
		return nil, domain.ErrEmptyRoleName
	}

	var result *domain.Roadmap
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		roles := s.roles.WithTx(tx)
		roadmaps := s.roadmaps.WithTx(tx)
		plans := s.plans.WithTx(tx)

		role, err := roles.GetByUserAndName(ctx, userID, roleName)
		switch {
		case err == nil:
			// Supersede: reuse the role, mutate its duration, drop the
			// derived records. Never duplicate the role.
			role.DurationDays = durationDays
			if err := roles.Update(ctx, role); err != nil {
				return err
			}
			if err := roadmaps.DeleteByRoleID(ctx, role.ID); err != nil {
				return err
			}
			if err := plans.DeleteByRoleID(ctx, role.ID); err != nil {
				return err
			}
		case errors.Is(err, store.ErrCareerRoleNotFound):
			role, err = domain.NewCareerRole(userID, roleName, durationDays)
			if err != nil {
				return err
			}
			if err := roles.Create(ctx, role); err != nil {
				// A duplicate here means another request created the same
				// role between our lookup and the insert. Surface it as the
				// retryable race, same as a day-number collision during plan
				// regeneration.
				if errors.Is(err, store.ErrDuplicate) {
					return fmt.Errorf("%w: %v", ErrConcurrentRegeneration, err)
				}
				return err
			}
		default:
			return err
		}

		prompt := generation.RoadmapPrompt(role.RoleName)
		data, err := s.client.CompleteJSON(ctx, prompt, generation.CompletionOptions{})
		if err != nil {
			log.WarnContext(ctx, "roadmap generation failed, rolling back role mutation",
				slog.String("role_id", role.ID.String()),
				slog.String("error", err.Error()))
			return err
		}

		text, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize roadmap content: %w", err)
		}

		roadmap, err := domain.NewRoadmap(role.ID, string(text))
		if err != nil {
			return err
		}
		if err := roadmaps.Create(ctx, roadmap); err != nil {
			return err
		}

		result = roadmap
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "roadmap generated",
		slog.String("roadmap_id", result.ID.String()),
		slog.String("role_id", result.CareerRoleID.String()))
	return result, nil
}

// GenerateDailyPlan generates the day-by-day study plan for an existing
// career role and replaces any previous plan. It returns the inserted
// entries together with the number of model entries that were skipped for
// being uncoercible.
//
// The old entries are deleted in their own committed transaction before the
// provider is called: a later failure must not resurrect stale entries or
// leave duplicate day numbers. The result is normalized to exactly the
// role's duration: extra model entries are truncated by order, and missing
// trailing days are synthesized with a filler topic and default hours.
func (s *GenerationService) GenerateDailyPlan(
	ctx context.Context,
	userID, roleID uuid.UUID,
) ([]*domain.DailyPlan, int, error) {
	log := s.logger

	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, 0, err
	}
	if role.UserID != userID {
		return nil, 0, store.ErrCareerRoleNotFound
	}

	// Committed immediately, unlike the roadmap flow: the insert below may
	// partially fail and must not bring old rows back.
	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.plans.WithTx(tx).DeleteByRoleID(ctx, role.ID)
	})
	if err != nil {
		return nil, 0, err
	}

	if role.DurationDays < domain.MinDurationDays || role.DurationDays > domain.MaxDurationDays {
		return nil, 0, domain.ErrInvalidDuration
	}

	prompt := generation.DailyPlanPrompt(role.RoleName, role.DurationDays)
	data, err := s.client.CompleteJSON(ctx, prompt, generation.CompletionOptions{
		MaxTokens: dailyPlanMaxTokens,
	})
	if err != nil {
		return nil, 0, err
	}

	rawEntries, ok := data["daily_plan"].([]any)
	if !ok {
		return nil, 0, fmt.Errorf("%w: response missing daily_plan field", generation.ErrMalformedOutput)
	}

	entries, skipped := s.normalizePlanEntries(ctx, role, rawEntries)
	if len(entries) == 0 {
		return nil, skipped, fmt.Errorf("%w: no valid daily plan entries", generation.ErrGenerationFailed)
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.plans.WithTx(tx).CreateBatch(ctx, entries)
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateDayNumber) {
			return nil, skipped, fmt.Errorf("%w: %v", ErrConcurrentRegeneration, err)
		}
		return nil, skipped, err
	}

	log.InfoContext(ctx, "daily plan generated",
		slog.String("role_id", role.ID.String()),
		slog.Int("entries", len(entries)),
		slog.Int("skipped", skipped))
	return entries, skipped, nil
}

// normalizePlanEntries converts raw model entries into exactly
// role.DurationDays domain entries. Day numbers are assigned positionally
// (1..n) rather than trusting the model's stated day field, which keeps the
// contiguity invariant even when the model misnumbers days. Entries whose
// required fields cannot be coerced are skipped, not fatal; the skip count
// is returned for observability.
func (s *GenerationService) normalizePlanEntries(
	ctx context.Context,
	role *domain.CareerRole,
	rawEntries []any,
) ([]*domain.DailyPlan, int) {
	duration := role.DurationDays

	// Truncate by order when the model over-produced.
	if len(rawEntries) > duration {
		rawEntries = rawEntries[:duration]
	}

	entries := make([]*domain.DailyPlan, 0, duration)
	skipped := 0

	for day := 1; day <= duration; day++ {
		var topic string
		var hours int

		if day <= len(rawEntries) {
			item, ok := rawEntries[day-1].(map[string]any)
			if !ok {
				skipped++
				continue
			}
			topic, _ = item["topic"].(string)
			var err error
			hours, err = coerceHours(item["estimated_hours"])
			if err != nil {
				s.logger.WarnContext(ctx, "skipping daily plan entry with uncoercible hours",
					slog.Int("day", day),
					slog.String("error", err.Error()))
				skipped++
				continue
			}
		} else {
			// Synthesize the missing trailing days.
			topic = fmt.Sprintf("Advanced %s Concepts - Day %d", role.RoleName, day)
			hours = defaultFillerHours
		}

		entry, err := domain.NewDailyPlan(role.ID, day, topic, hours)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping invalid daily plan entry",
				slog.Int("day", day),
				slog.String("error", err.Error()))
			skipped++
			continue
		}
		entries = append(entries, entry)
	}

	return entries, skipped
}

// coerceHours converts the model's estimated_hours value to an integer.
// JSON numbers arrive as float64; models also emit strings like "4" or
// "4.5". An absent value falls back to the default rather than failing.
func coerceHours(v any) (int, error) {
	switch value := v.(type) {
	case nil:
		return defaultEstimatedHours, nil
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, fmt.Errorf("estimated_hours is not a finite number")
		}
		return int(value), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, fmt.Errorf("estimated_hours %q is not numeric", value)
		}
		return int(parsed), nil
	default:
		return 0, fmt.Errorf("estimated_hours has unsupported type %T", v)
	}
}

// TeachTopic generates an explanation of a topic with examples and learning
// resources. Nothing is persisted; availability wins over completeness, so
// any field the model omitted is replaced with an empty value of the
// appropriate kind instead of failing the call.
func (s *GenerationService) TeachTopic(
	ctx context.Context,
	topic, topicContext string,
) (*domain.TopicExplanation, error) {
	prompt := generation.TeachTopicPrompt(topic, topicContext)
	data, err := s.client.CompleteJSON(ctx, prompt, generation.CompletionOptions{})
	if err != nil {
		return nil, err
	}

	explanation := &domain.TopicExplanation{
		Topic:       "",
		Explanation: "",
		Examples:    []string{},
		Resources:   []string{},
	}

	if v, ok := data["topic"].(string); ok {
		explanation.Topic = v
	}
	if v, ok := data["explanation"].(string); ok {
		explanation.Explanation = v
	}
	explanation.Examples = coerceStringList(data["examples"])
	explanation.Resources = coerceStringList(data["resources"])

	return explanation, nil
}

// coerceStringList converts a raw JSON value into an ordered string slice.
// Missing or mistyped values yield an empty list; non-string elements are
// dropped.
func coerceStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// ListDailyPlans returns the current user's daily plans grouped by career
// role, most recent role first. Roles without plans are omitted.
func (s *GenerationService) ListDailyPlans(
	ctx context.Context,
	userID uuid.UUID,
) ([]*RolePlans, error) {
	roles, err := s.roles.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var result []*RolePlans
	for _, role := range roles {
		plans, err := s.plans.ListByRoleID(ctx, role.ID)
		if err != nil {
			return nil, err
		}
		if len(plans) == 0 {
			continue
		}
		result = append(result, &RolePlans{Role: role, Plans: plans})
	}

	return result, nil
}

// DeleteRole removes a career role and, via cascade, its roadmap and daily
// plans. The role must belong to the calling user; a role owned by someone
// else is reported as not found rather than forbidden, to avoid leaking
// other users' role IDs.
func (s *GenerationService) DeleteRole(ctx context.Context, userID, roleID uuid.UUID) error {
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return err
	}

	if role.UserID != userID {
		return store.ErrCareerRoleNotFound
	}

	return s.roles.Delete(ctx, roleID)
}

// GetRoadmap returns the roadmap for a role owned by the calling user.
func (s *GenerationService) GetRoadmap(
	ctx context.Context,
	userID, roleID uuid.UUID,
) (*domain.Roadmap, error) {
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if role.UserID != userID {
		return nil, store.ErrCareerRoleNotFound
	}

	return s.roadmaps.GetByRoleID(ctx, role.ID)
}
