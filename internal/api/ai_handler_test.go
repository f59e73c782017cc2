package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahid1330/careerPilot-AI/internal/api"
	"github.com/shahid1330/careerPilot-AI/internal/api/shared"
	"github.com/shahid1330/careerPilot-AI/internal/domain"
	"github.com/shahid1330/careerPilot-AI/internal/mocks"
	"github.com/shahid1330/careerPilot-AI/internal/service"
)

// aiTestEnv wires an AIHandler to a generation service backed by mocks.
type aiTestEnv struct {
	handler *api.AIHandler
	roles   *mocks.MockCareerRoleStore
	plans   *mocks.MockDailyPlanStore
	client  *mocks.MockCompletionClient
}

func newAITestEnv(t *testing.T, client *mocks.MockCompletionClient) *aiTestEnv {
	t.Helper()

	roles := mocks.NewMockCareerRoleStore()
	roadmaps := mocks.NewMockRoadmapStore()
	plans := mocks.NewMockDailyPlanStore()

	svc, err := service.NewGenerationService(nil, roles, roadmaps, plans, client, slog.Default())
	require.NoError(t, err)

	return &aiTestEnv{
		handler: api.NewAIHandler(svc),
		roles:   roles,
		plans:   plans,
		client:  client,
	}
}

// asUser attaches an authenticated user ID the way the auth middleware would.
func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

func TestTeachTopicHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns the explanation", func(t *testing.T) {
		t.Parallel()

		env := newAITestEnv(t, mocks.NewMockCompletionClientWithJSON(map[string]any{
			"topic":       "Recursion",
			"explanation": "A function calling itself.",
			"examples":    []any{"Factorial"},
			"resources":   []any{"https://example.com"},
		}))

		body, _ := json.Marshal(map[string]any{"topic": "Recursion"})
		req := httptest.NewRequest(http.MethodPost, "/api/ai/teach-topic", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		env.handler.TeachTopic(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got domain.TopicExplanation
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Recursion", got.Topic)
		assert.Equal(t, []string{"Factorial"}, got.Examples)
	})

	t.Run("missing topic rejected", func(t *testing.T) {
		t.Parallel()

		env := newAITestEnv(t, &mocks.MockCompletionClient{})

		body, _ := json.Marshal(map[string]any{"context": "no topic"})
		req := httptest.NewRequest(http.MethodPost, "/api/ai/teach-topic", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		env.handler.TeachTopic(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, env.client.Calls.Count)
	})
}

func TestListDailyPlansHandler(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	env := newAITestEnv(t, &mocks.MockCompletionClient{})
	userID := uuid.New()

	role, err := domain.NewCareerRole(userID, "Data Engineer", 2)
	require.NoError(t, err)
	require.NoError(t, env.roles.Create(ctx, role))

	plan, err := domain.NewDailyPlan(role.ID, 1, "Topic", 3)
	require.NoError(t, err)
	require.NoError(t, env.plans.CreateBatch(ctx, []*domain.DailyPlan{plan}))

	t.Run("authenticated user sees grouped plans", func(t *testing.T) {
		req := asUser(httptest.NewRequest(http.MethodGet, "/api/ai/daily-plans", nil), userID)
		rec := httptest.NewRecorder()
		env.handler.ListDailyPlans(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.ListDailyPlansResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Roles, 1)
		assert.Equal(t, role.ID, resp.Roles[0].Role.ID)
		require.Len(t, resp.Roles[0].Plans, 1)
	})

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ai/daily-plans", nil)
		rec := httptest.NewRecorder()
		env.handler.ListDailyPlans(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDeleteRoleHandler(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	deleteReq := func(roleID string, userID uuid.UUID) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/api/ai/roles/"+roleID, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", roleID)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		return asUser(req, userID)
	}

	t.Run("owner deletes role", func(t *testing.T) {
		t.Parallel()

		env := newAITestEnv(t, &mocks.MockCompletionClient{})
		userID := uuid.New()

		role, err := domain.NewCareerRole(userID, "Data Engineer", 2)
		require.NoError(t, err)
		require.NoError(t, env.roles.Create(ctx, role))

		rec := httptest.NewRecorder()
		env.handler.DeleteRole(rec, deleteReq(role.ID.String(), userID))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("someone else's role is not found", func(t *testing.T) {
		t.Parallel()

		env := newAITestEnv(t, &mocks.MockCompletionClient{})

		role, err := domain.NewCareerRole(uuid.New(), "Data Engineer", 2)
		require.NoError(t, err)
		require.NoError(t, env.roles.Create(ctx, role))

		rec := httptest.NewRecorder()
		env.handler.DeleteRole(rec, deleteReq(role.ID.String(), uuid.New()))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid role ID rejected", func(t *testing.T) {
		t.Parallel()

		env := newAITestEnv(t, &mocks.MockCompletionClient{})

		rec := httptest.NewRecorder()
		env.handler.DeleteRole(rec, deleteReq("not-a-uuid", uuid.New()))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
