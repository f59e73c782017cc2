package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shahid1330/careerPilot-AI/internal/domain"
	"github.com/shahid1330/careerPilot-AI/internal/generation"
	"github.com/shahid1330/careerPilot-AI/internal/service"
	"github.com/shahid1330/careerPilot-AI/internal/service/auth"
	"github.com/shahid1330/careerPilot-AI/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrUsernameExists),
		errors.Is(err, service.ErrConcurrentRegeneration):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Pipeline errors surface as server-side failures
	case errors.Is(err, generation.ErrProviderTimeout),
		errors.Is(err, generation.ErrProvider),
		errors.Is(err, generation.ErrMalformedOutput),
		errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidConfig):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrCareerRoleNotFound):
		return "Career role not found"

	case errors.Is(err, store.ErrRoadmapNotFound):
		return "Roadmap not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, service.ErrConcurrentRegeneration):
		return "Another generation for this role is in progress, please retry"

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidDuration):
		return "Duration must be between 1 and 365 days"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	// Pipeline errors
	case errors.Is(err, generation.ErrProviderTimeout):
		return "The AI provider timed out, please retry"

	case errors.Is(err, generation.ErrProvider):
		return "The AI provider returned an error"

	case errors.Is(err, generation.ErrMalformedOutput):
		return "Failed to parse the AI response"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "Generation produced no usable content"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'LoginRequest.Email' Error:Field validation
		// for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte", "lte":
		return "out of range"
	default:
		return "validation failed"
	}
}
