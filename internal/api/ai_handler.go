package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/shahid1330/careerPilot-AI/internal/api/middleware"
	"github.com/shahid1330/careerPilot-AI/internal/api/shared"
	"github.com/shahid1330/careerPilot-AI/internal/service"
)

// AIHandler handles the AI generation API requests.
type AIHandler struct {
	generationService *service.GenerationService
	validator         *validator.Validate
}

// NewAIHandler creates a new AIHandler with the given dependencies.
func NewAIHandler(generationService *service.GenerationService) *AIHandler {
	return &AIHandler{
		generationService: generationService,
		validator:         validator.New(),
	}
}

// GenerateRoadmap handles POST /api/ai/generate-roadmap.
// A repeated request for the same role name regenerates the roadmap in place
// rather than creating a second role.
func (h *AIHandler) GenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req GenerateRoadmapRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	roadmap, err := h.generationService.GenerateRoadmap(r.Context(), userID, req.RoleName, req.DurationDays)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, GenerateRoadmapResponse{Roadmap: roadmap})
}

// GenerateDailyPlan handles POST /api/ai/generate-daily-plan.
func (h *AIHandler) GenerateDailyPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req GenerateDailyPlanRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.CareerRoleID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "career_role_id is required")
		return
	}

	plans, skipped, err := h.generationService.GenerateDailyPlan(r.Context(), userID, req.CareerRoleID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, GenerateDailyPlanResponse{
		Plans:          plans,
		SkippedEntries: skipped,
	})
}

// TeachTopic handles POST /api/ai/teach-topic. The explanation is never
// persisted.
func (h *AIHandler) TeachTopic(w http.ResponseWriter, r *http.Request) {
	var req TeachTopicRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	explanation, err := h.generationService.TeachTopic(r.Context(), req.Topic, req.Context)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, explanation)
}

// ListDailyPlans handles GET /api/ai/daily-plans.
func (h *AIHandler) ListDailyPlans(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	rolePlans, err := h.generationService.ListDailyPlans(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListDailyPlansResponse{Roles: rolePlans})
}

// GetRoadmap handles GET /api/ai/roles/{id}/roadmap.
func (h *AIHandler) GetRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	roleID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid role ID")
		return
	}

	roadmap, err := h.generationService.GetRoadmap(r.Context(), userID, roleID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateRoadmapResponse{Roadmap: roadmap})
}

// DeleteRole handles DELETE /api/ai/roles/{id}. Derived roadmap and plan
// records go with the role.
func (h *AIHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	roleID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid role ID")
		return
	}

	if err := h.generationService.DeleteRole(r.Context(), userID, roleID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
