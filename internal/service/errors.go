package service

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the service layer.
var (
	// ErrConcurrentRegeneration indicates that a regeneration lost a race
	// against another writer for the same career role: the batch insert hit
	// the unique (career_role_id, day_number) constraint. The pipeline never
	// retries this internally; the caller decides whether to re-issue the
	// whole generation.
	ErrConcurrentRegeneration = errors.New("concurrent regeneration detected")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// GenerationServiceError wraps errors from the generation service with
// operation context.
type GenerationServiceError struct {
	// Operation is the operation that failed (e.g., "generate_roadmap")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for GenerationServiceError.
func (e *GenerationServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("generation service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GenerationServiceError) Unwrap() error {
	return e.Err
}
