package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Common validation errors for DailyPlan
var (
	ErrEmptyPlanID      = errors.New("daily plan ID cannot be empty")
	ErrEmptyPlanRoleID  = errors.New("daily plan career role ID cannot be empty")
	ErrInvalidPlanDay   = errors.New("daily plan day number must be positive")
	ErrEmptyPlanTopic   = errors.New("daily plan topic cannot be empty")
	ErrInvalidPlanHours = errors.New("daily plan estimated hours must be positive")
)

// DailyPlan is one day of a role's study plan. Day numbers are unique and
// contiguous (1..duration) within a CareerRole; the uniqueness is backed by
// a database constraint so concurrent regenerations fail deterministically
// instead of corrupting the set.
type DailyPlan struct {
	ID             uuid.UUID `json:"id"`
	CareerRoleID   uuid.UUID `json:"career_role_id"`
	DayNumber      int       `json:"day_number"`
	Topic          string    `json:"topic"`
	EstimatedHours int       `json:"estimated_hours"`
}

// NewDailyPlan creates a new DailyPlan entry for the given career role.
// Returns an error if validation fails.
func NewDailyPlan(careerRoleID uuid.UUID, dayNumber int, topic string, estimatedHours int) (*DailyPlan, error) {
	plan := &DailyPlan{
		ID:             uuid.New(),
		CareerRoleID:   careerRoleID,
		DayNumber:      dayNumber,
		Topic:          topic,
		EstimatedHours: estimatedHours,
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	return plan, nil
}

// Validate checks if the DailyPlan has valid data.
// Returns an error if any field fails validation.
func (p *DailyPlan) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPlanID
	}

	if p.CareerRoleID == uuid.Nil {
		return ErrEmptyPlanRoleID
	}

	if p.DayNumber < 1 {
		return ErrInvalidPlanDay
	}

	if p.Topic == "" {
		return ErrEmptyPlanTopic
	}

	if p.EstimatedHours < 1 {
		return ErrInvalidPlanHours
	}

	return nil
}
