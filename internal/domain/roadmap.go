package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Roadmap
var (
	ErrEmptyRoadmapID     = errors.New("roadmap ID cannot be empty")
	ErrEmptyRoadmapRoleID = errors.New("roadmap career role ID cannot be empty")
	ErrEmptyRoadmapText   = errors.New("roadmap text cannot be empty")
)

// Roadmap stores the serialized structured roadmap generated for a
// CareerRole. It is owned exclusively by one role and replaced whole on
// regeneration (delete then insert), never updated in place.
type Roadmap struct {
	ID           uuid.UUID `json:"id"`
	CareerRoleID uuid.UUID `json:"career_role_id"`
	RoadmapText  string    `json:"roadmap_text"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// NewRoadmap creates a new Roadmap linked to the given career role.
// It generates a new UUID and sets the generation timestamp.
// Returns an error if validation fails.
func NewRoadmap(careerRoleID uuid.UUID, roadmapText string) (*Roadmap, error) {
	roadmap := &Roadmap{
		ID:           uuid.New(),
		CareerRoleID: careerRoleID,
		RoadmapText:  roadmapText,
		GeneratedAt:  time.Now().UTC(),
	}

	if err := roadmap.Validate(); err != nil {
		return nil, err
	}

	return roadmap, nil
}

// Validate checks if the Roadmap has valid data.
// Returns an error if any field fails validation.
func (r *Roadmap) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRoadmapID
	}

	if r.CareerRoleID == uuid.Nil {
		return ErrEmptyRoadmapRoleID
	}

	if r.RoadmapText == "" {
		return ErrEmptyRoadmapText
	}

	return nil
}
