package api

import (
	"github.com/google/uuid"
	"github.com/shahid1330/careerPilot-AI/internal/domain"
	"github.com/shahid1330/careerPilot-AI/internal/service"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Username string `json:"username"  validate:"required,min=3,max=50"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"max=100"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// GenerateRoadmapRequest defines the payload for roadmap generation.
type GenerateRoadmapRequest struct {
	RoleName     string `json:"role_name"     validate:"required,min=2,max=100"`
	DurationDays int    `json:"duration_days" validate:"required"`
}

// GenerateRoadmapResponse defines the successful roadmap generation response.
type GenerateRoadmapResponse struct {
	Roadmap *domain.Roadmap `json:"roadmap"`
}

// GenerateDailyPlanRequest defines the payload for daily plan generation.
type GenerateDailyPlanRequest struct {
	CareerRoleID uuid.UUID `json:"career_role_id" validate:"required"`
}

// GenerateDailyPlanResponse defines the successful daily plan generation
// response. SkippedEntries counts model entries dropped during normalization.
type GenerateDailyPlanResponse struct {
	Plans          []*domain.DailyPlan `json:"plans"`
	SkippedEntries int                 `json:"skipped_entries"`
}

// TeachTopicRequest defines the payload for topic explanations.
type TeachTopicRequest struct {
	Topic   string `json:"topic"   validate:"required,min=2,max=200"`
	Context string `json:"context" validate:"max=500"`
}

// ListDailyPlansResponse defines the plan listing response, grouped per role.
type ListDailyPlansResponse struct {
	Roles []*service.RolePlans `json:"roles"`
}
