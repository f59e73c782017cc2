package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahid1330/careerPilot-AI/internal/domain"
	"github.com/shahid1330/careerPilot-AI/internal/generation"
	"github.com/shahid1330/careerPilot-AI/internal/mocks"
	"github.com/shahid1330/careerPilot-AI/internal/store"
)

// testEnv bundles a service under test with its mock collaborators.
type testEnv struct {
	svc      *GenerationService
	roles    *mocks.MockCareerRoleStore
	roadmaps *mocks.MockRoadmapStore
	plans    *mocks.MockDailyPlanStore
	client   *mocks.MockCompletionClient
}

// newTestEnv builds a GenerationService wired to in-memory mocks. The
// transaction runner is replaced with a pass-through so no database is needed;
// the mock stores ignore the transaction handle.
func newTestEnv(t *testing.T, client *mocks.MockCompletionClient) *testEnv {
	t.Helper()

	roles := mocks.NewMockCareerRoleStore()
	roadmaps := mocks.NewMockRoadmapStore()
	plans := mocks.NewMockDailyPlanStore()

	svc, err := NewGenerationService(nil, roles, roadmaps, plans, client, slog.Default())
	require.NoError(t, err)

	svc.runTx = func(ctx context.Context, db *sql.DB, fn store.TxFn) error {
		return fn(ctx, nil)
	}

	return &testEnv{svc: svc, roles: roles, roadmaps: roadmaps, plans: plans, client: client}
}

// withRollback swaps the pass-through runner for one that restores the mock
// stores when fn fails, giving tests the same all-or-nothing visibility a
// real transaction rollback provides.
func (env *testEnv) withRollback() {
	env.svc.runTx = func(ctx context.Context, db *sql.DB, fn store.TxFn) error {
		roles := env.roles.Snapshot()
		roadmaps := env.roadmaps.Snapshot()
		plans := env.plans.Snapshot()

		err := fn(ctx, nil)
		if err != nil {
			env.roles.Restore(roles)
			env.roadmaps.Restore(roadmaps)
			env.plans.Restore(plans)
		}
		return err
	}
}

func roadmapJSON(role string) map[string]any {
	return map[string]any{
		"role":                 role,
		"required_skills":      []any{"skill1"},
		"learning_path":        []any{},
		"recommended_projects": []any{},
	}
}

func planEntry(day int, topic string, hours any) map[string]any {
	entry := map[string]any{"day": float64(day), "topic": topic}
	if hours != nil {
		entry["estimated_hours"] = hours
	}
	return entry
}

func TestNewGenerationService(t *testing.T) {
	t.Parallel()

	client := &mocks.MockCompletionClient{}
	roles := mocks.NewMockCareerRoleStore()
	roadmaps := mocks.NewMockRoadmapStore()
	plans := mocks.NewMockDailyPlanStore()

	t.Run("nil roles store rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewGenerationService(nil, nil, roadmaps, plans, client, nil)
		require.Error(t, err)
	})

	t.Run("nil client rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewGenerationService(nil, roles, roadmaps, plans, nil, nil)
		require.Error(t, err)
	})

	t.Run("nil logger defaults", func(t *testing.T) {
		t.Parallel()
		svc, err := NewGenerationService(nil, roles, roadmaps, plans, client, nil)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestGenerateRoadmap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates a new role and roadmap", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(roadmapJSON("Data Engineer")))
		userID := uuid.New()

		roadmap, err := env.svc.GenerateRoadmap(ctx, userID, "Data Engineer", 30)
		require.NoError(t, err)
		require.NotNil(t, roadmap)
		assert.Contains(t, roadmap.RoadmapText, `"role": "Data Engineer"`)

		role, err := env.roles.GetByUserAndName(ctx, userID, "Data Engineer")
		require.NoError(t, err)
		assert.Equal(t, 30, role.DurationDays)
		assert.Equal(t, role.ID, roadmap.CareerRoleID)
	})

	t.Run("supersedes an existing role instead of duplicating", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(roadmapJSON("Data Engineer")))
		userID := uuid.New()

		first, err := env.svc.GenerateRoadmap(ctx, userID, "Data Engineer", 30)
		require.NoError(t, err)

		// Seed plans so we can observe the derived-record deletion.
		plan, err := domain.NewDailyPlan(first.CareerRoleID, 1, "Old topic", 3)
		require.NoError(t, err)
		require.NoError(t, env.plans.CreateBatch(ctx, []*domain.DailyPlan{plan}))

		// Different casing must hit the same role.
		second, err := env.svc.GenerateRoadmap(ctx, userID, "data engineer", 60)
		require.NoError(t, err)
		assert.Equal(t, first.CareerRoleID, second.CareerRoleID)
		assert.NotEqual(t, first.ID, second.ID)

		role, err := env.roles.GetByID(ctx, first.CareerRoleID)
		require.NoError(t, err)
		assert.Equal(t, 60, role.DurationDays)
		assert.Equal(t, "Data Engineer", role.RoleName)

		roles, err := env.roles.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, roles, 1)

		stale, err := env.plans.ListByRoleID(ctx, first.CareerRoleID)
		require.NoError(t, err)
		assert.Empty(t, stale)
	})

	t.Run("rejects out-of-range durations before calling the provider", func(t *testing.T) {
		t.Parallel()

		for _, duration := range []int{0, -1, 366} {
			env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(roadmapJSON("X")))

			_, err := env.svc.GenerateRoadmap(ctx, uuid.New(), "X", duration)
			require.Error(t, err, "duration %d", duration)
			assert.True(t, errors.Is(err, domain.ErrInvalidDuration))
			assert.Equal(t, 0, env.client.Calls.Count)
		}
	})

	t.Run("boundary durations are accepted", func(t *testing.T) {
		t.Parallel()

		for _, duration := range []int{1, 365} {
			env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(roadmapJSON("X")))

			_, err := env.svc.GenerateRoadmap(ctx, uuid.New(), "X", duration)
			require.NoError(t, err, "duration %d", duration)
		}
	})

	t.Run("rejects blank role names", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(roadmapJSON("X")))

		_, err := env.svc.GenerateRoadmap(ctx, uuid.New(), "   ", 30)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrEmptyRoleName))
		assert.Equal(t, 0, env.client.Calls.Count)
	})

	t.Run("provider failure rolls back role creation", func(t *testing.T) {
		t.Parallel()

		timeoutErr := generation.NewTimeoutError(0)
		env := newTestEnv(t, mocks.NewMockCompletionClientWithError(timeoutErr))
		env.withRollback()
		userID := uuid.New()

		_, err := env.svc.GenerateRoadmap(ctx, userID, "Data Engineer", 30)
		require.Error(t, err)
		assert.True(t, errors.Is(err, generation.ErrProviderTimeout))

		_, err = env.roles.GetByUserAndName(ctx, userID, "Data Engineer")
		assert.True(t, errors.Is(err, store.ErrCareerRoleNotFound))
	})

	t.Run("provider failure preserves the superseded role and its records", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithError(generation.NewTimeoutError(0)))
		env.withRollback()
		userID := uuid.New()

		role, err := domain.NewCareerRole(userID, "Data Engineer", 30)
		require.NoError(t, err)
		require.NoError(t, env.roles.Create(ctx, role))

		oldRoadmap, err := domain.NewRoadmap(role.ID, `{"role": "Data Engineer"}`)
		require.NoError(t, err)
		require.NoError(t, env.roadmaps.Create(ctx, oldRoadmap))

		oldPlan, err := domain.NewDailyPlan(role.ID, 1, "Old topic", 3)
		require.NoError(t, err)
		require.NoError(t, env.plans.CreateBatch(ctx, []*domain.DailyPlan{oldPlan}))

		_, err = env.svc.GenerateRoadmap(ctx, userID, "Data Engineer", 60)
		require.Error(t, err)
		assert.True(t, errors.Is(err, generation.ErrProviderTimeout))

		// The duration mutation and the derived-record deletions must not
		// have committed.
		got, err := env.roles.GetByID(ctx, role.ID)
		require.NoError(t, err)
		assert.Equal(t, 30, got.DurationDays)

		roadmap, err := env.roadmaps.GetByRoleID(ctx, role.ID)
		require.NoError(t, err)
		assert.Equal(t, oldRoadmap.RoadmapText, roadmap.RoadmapText)

		plans, err := env.plans.ListByRoleID(ctx, role.ID)
		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, "Old topic", plans[0].Topic)
	})

	t.Run("lost creation race surfaces as concurrent regeneration", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(roadmapJSON("Data Engineer")))

		// Lookup misses, then another request wins the insert.
		env.roles.GetByUserAndNameFn = func(ctx context.Context, userID uuid.UUID, roleName string) (*domain.CareerRole, error) {
			return nil, store.ErrCareerRoleNotFound
		}
		env.roles.CreateFn = func(ctx context.Context, role *domain.CareerRole) error {
			return fmt.Errorf("%w: role %q", store.ErrDuplicate, role.RoleName)
		}

		_, err := env.svc.GenerateRoadmap(ctx, uuid.New(), "Data Engineer", 30)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConcurrentRegeneration))
	})
}

func TestGenerateDailyPlan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seedRole := func(t *testing.T, env *testEnv, userID uuid.UUID, duration int) *domain.CareerRole {
		t.Helper()
		role, err := domain.NewCareerRole(userID, "Data Engineer", duration)
		require.NoError(t, err)
		require.NoError(t, env.roles.Create(ctx, role))
		return role
	}

	t.Run("exact cardinality passes through", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"daily_plan": []any{
				planEntry(1, "Topic A", float64(2)),
				planEntry(2, "Topic B", float64(3)),
			},
		}))
		userID := uuid.New()
		role := seedRole(t, env, userID, 2)

		plans, skipped, err := env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, skipped)
		require.Len(t, plans, 2)
		assert.Equal(t, 1, plans[0].DayNumber)
		assert.Equal(t, "Topic A", plans[0].Topic)
		assert.Equal(t, 2, plans[0].EstimatedHours)
	})

	t.Run("under-production is padded with filler entries", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"daily_plan": []any{
				planEntry(1, "Topic A", float64(2)),
				planEntry(2, "Topic B", float64(3)),
				planEntry(3, "Topic C", float64(4)),
			},
		}))
		userID := uuid.New()
		role := seedRole(t, env, userID, 5)

		plans, skipped, err := env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, skipped)
		require.Len(t, plans, 5)

		assert.Equal(t, "Advanced Data Engineer Concepts - Day 4", plans[3].Topic)
		assert.Equal(t, 4, plans[3].EstimatedHours)
		assert.Equal(t, "Advanced Data Engineer Concepts - Day 5", plans[4].Topic)
		assert.Equal(t, 4, plans[4].EstimatedHours)
	})

	t.Run("over-production is truncated by order", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"daily_plan": []any{
				planEntry(1, "Topic A", float64(2)),
				planEntry(2, "Topic B", float64(3)),
				planEntry(3, "Topic C", float64(4)),
			},
		}))
		userID := uuid.New()
		role := seedRole(t, env, userID, 2)

		plans, skipped, err := env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, skipped)
		require.Len(t, plans, 2)
		assert.Equal(t, "Topic A", plans[0].Topic)
		assert.Equal(t, "Topic B", plans[1].Topic)
	})

	t.Run("day numbers are assigned positionally", func(t *testing.T) {
		t.Parallel()

		// The model misnumbered every entry; contiguity must win.
		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"daily_plan": []any{
				planEntry(7, "Topic A", float64(2)),
				planEntry(7, "Topic B", float64(3)),
			},
		}))
		userID := uuid.New()
		role := seedRole(t, env, userID, 2)

		plans, _, err := env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, 1, plans[0].DayNumber)
		assert.Equal(t, 2, plans[1].DayNumber)
	})

	t.Run("hour coercion from strings and defaults", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"daily_plan": []any{
				planEntry(1, "Topic A", "4"),
				planEntry(2, "Topic B", nil),
			},
		}))
		userID := uuid.New()
		role := seedRole(t, env, userID, 2)

		plans, skipped, err := env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, skipped)
		require.Len(t, plans, 2)
		assert.Equal(t, 4, plans[0].EstimatedHours)
		assert.Equal(t, 3, plans[1].EstimatedHours)
	})

	t.Run("uncoercible entries are skipped and counted", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"daily_plan": []any{
				planEntry(1, "Topic A", float64(2)),
				planEntry(2, "Topic B", "not a number"),
				"not even an object",
			},
		}))
		userID := uuid.New()
		role := seedRole(t, env, userID, 3)

		plans, skipped, err := env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, skipped)
		require.Len(t, plans, 1)
		assert.Equal(t, "Topic A", plans[0].Topic)
	})

	t.Run("all entries skipped fails the generation", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"daily_plan": []any{
				planEntry(1, "Topic A", "???"),
				planEntry(2, "Topic B", "???"),
			},
		}))
		userID := uuid.New()
		role := seedRole(t, env, userID, 2)

		_, skipped, err := env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, generation.ErrGenerationFailed))
		assert.Equal(t, 2, skipped)
	})

	t.Run("missing daily_plan field is malformed output", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"plan": []any{},
		}))
		userID := uuid.New()
		role := seedRole(t, env, userID, 2)

		_, _, err := env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, generation.ErrMalformedOutput))
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{}))

		_, _, err := env.svc.GenerateDailyPlan(ctx, uuid.New(), uuid.New())
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrCareerRoleNotFound))
		assert.Equal(t, 0, env.client.Calls.Count)
	})

	t.Run("role owned by another user is not found", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{}))
		role := seedRole(t, env, uuid.New(), 2)

		_, _, err := env.svc.GenerateDailyPlan(ctx, uuid.New(), role.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrCareerRoleNotFound))
		assert.Equal(t, 0, env.client.Calls.Count)
	})

	t.Run("stale role duration rejected before the provider call", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{}))
		userID := uuid.New()

		// Bypass constructor validation to simulate a row corrupted out of
		// band.
		role := &domain.CareerRole{ID: uuid.New(), UserID: userID, RoleName: "X", DurationDays: 0}
		env.roles.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.CareerRole, error) {
			return role, nil
		}

		_, _, err := env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidDuration))
		assert.Equal(t, 0, env.client.Calls.Count)
	})

	t.Run("old entries are deleted even when the provider fails", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithError(generation.NewTimeoutError(0)))
		userID := uuid.New()
		role := seedRole(t, env, userID, 2)

		old, err := domain.NewDailyPlan(role.ID, 1, "Old topic", 3)
		require.NoError(t, err)
		require.NoError(t, env.plans.CreateBatch(ctx, []*domain.DailyPlan{old}))

		_, _, err = env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, generation.ErrProviderTimeout))

		remaining, err := env.plans.ListByRoleID(ctx, role.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("duplicate day numbers surface as concurrent regeneration", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"daily_plan": []any{planEntry(1, "Topic A", float64(2))},
		}))
		userID := uuid.New()
		role := seedRole(t, env, userID, 1)

		env.plans.CreateBatchFn = func(ctx context.Context, plans []*domain.DailyPlan) error {
			return fmt.Errorf("%w: day 1", store.ErrDuplicateDayNumber)
		}

		_, _, err := env.svc.GenerateDailyPlan(ctx, userID, role.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConcurrentRegeneration))

		// Exactly one provider call: the race is not retried internally.
		assert.Equal(t, 1, env.client.Calls.Count)
	})
}

func TestTeachTopic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("full response", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"topic":       "Recursion",
			"explanation": "A function calling itself.",
			"examples":    []any{"Factorial", "Tree traversal"},
			"resources":   []any{"Official Documentation: https://example.com"},
		}))

		got, err := env.svc.TeachTopic(ctx, "Recursion", "")
		require.NoError(t, err)
		assert.Equal(t, "Recursion", got.Topic)
		assert.Equal(t, "A function calling itself.", got.Explanation)
		assert.Equal(t, []string{"Factorial", "Tree traversal"}, got.Examples)
		assert.Len(t, got.Resources, 1)
	})

	t.Run("missing fields become empty values", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"explanation": "Something.",
		}))

		got, err := env.svc.TeachTopic(ctx, "Pointers", "")
		require.NoError(t, err)
		assert.Equal(t, "", got.Topic)
		assert.Equal(t, "Something.", got.Explanation)
		assert.NotNil(t, got.Examples)
		assert.Empty(t, got.Examples)
		assert.NotNil(t, got.Resources)
		assert.Empty(t, got.Resources)
	})

	t.Run("non-string list elements are dropped", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"examples": []any{"ok", float64(42), "also ok"},
		}))

		got, err := env.svc.TeachTopic(ctx, "Slices", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"ok", "also ok"}, got.Examples)
	})

	t.Run("provider error propagates", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, mocks.NewMockCompletionClientWithError(generation.NewProviderError(500, "boom")))

		_, err := env.svc.TeachTopic(ctx, "Maps", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, generation.ErrProvider))
	})
}

func TestListDailyPlans(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	env := newTestEnv(t, &mocks.MockCompletionClient{})
	userID := uuid.New()

	withPlans, err := domain.NewCareerRole(userID, "Data Engineer", 2)
	require.NoError(t, err)
	require.NoError(t, env.roles.Create(ctx, withPlans))

	empty, err := domain.NewCareerRole(userID, "ML Engineer", 2)
	require.NoError(t, err)
	require.NoError(t, env.roles.Create(ctx, empty))

	plan, err := domain.NewDailyPlan(withPlans.ID, 1, "Topic", 3)
	require.NoError(t, err)
	require.NoError(t, env.plans.CreateBatch(ctx, []*domain.DailyPlan{plan}))

	result, err := env.svc.ListDailyPlans(ctx, userID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, withPlans.ID, result[0].Role.ID)
	require.Len(t, result[0].Plans, 1)

	other, err := env.svc.ListDailyPlans(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestDeleteRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, &mocks.MockCompletionClient{})
		userID := uuid.New()

		role, err := domain.NewCareerRole(userID, "Data Engineer", 2)
		require.NoError(t, err)
		require.NoError(t, env.roles.Create(ctx, role))

		require.NoError(t, env.svc.DeleteRole(ctx, userID, role.ID))

		_, err = env.roles.GetByID(ctx, role.ID)
		assert.True(t, errors.Is(err, store.ErrCareerRoleNotFound))
	})

	t.Run("non-owner sees not found", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t, &mocks.MockCompletionClient{})

		role, err := domain.NewCareerRole(uuid.New(), "Data Engineer", 2)
		require.NoError(t, err)
		require.NoError(t, env.roles.Create(ctx, role))

		err = env.svc.DeleteRole(ctx, uuid.New(), role.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrCareerRoleNotFound))

		_, err = env.roles.GetByID(ctx, role.ID)
		assert.NoError(t, err)
	})
}

func TestCoerceHours(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{name: "nil defaults", in: nil, want: 3},
		{name: "float", in: float64(4), want: 4},
		{name: "fractional float truncates", in: float64(4.5), want: 4},
		{name: "numeric string", in: "4", want: 4},
		{name: "padded numeric string", in: " 5 ", want: 5},
		{name: "non-numeric string", in: "lots", wantErr: true},
		{name: "bool", in: true, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := coerceHours(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
