package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpsertProfileRequest is a partial update: nil fields keep their stored
// value, provided fields overwrite it.
type UpsertProfileRequest struct {
	Age      *int     `json:"age" validate:"omitempty,gt=0,lte=120"`
	HeightCm *float64 `json:"height_cm" validate:"omitempty,gt=0"`
	WeightKg *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	Gender   *string  `json:"gender" validate:"omitempty,oneof=male female other"`

	Injuries         []string `json:"injuries"`
	Intolerances     []string `json:"intolerances"`
	Allergies        []string `json:"allergies"`
	HealthConditions []string `json:"health_conditions"`
	Medications      []string `json:"medications"`

	DietaryPref  *string `json:"dietary_pref" validate:"omitempty,oneof=omnivore vegetarian vegan pescatarian keto"`
	FitnessLevel *string `json:"fitness_level" validate:"omitempty,oneof=beginner intermediate advanced"`

	PrimaryGoal    *string  `json:"primary_goal" validate:"omitempty,oneof=build_muscle lose_fat maintain improve_energy"`
	TargetWeightKg *float64 `json:"target_weight_kg" validate:"omitempty,gt=0"`
}

// HealthConstraintRequest adds or removes a single injury/intolerance entry
// without resubmitting the whole profile.
type HealthConstraintRequest struct {
	Value string `json:"value" validate:"required,min=2"`
}

type ProfileResponse struct {
	Id     uuid.UUID `json:"id"`
	UserId uuid.UUID `json:"user_id"`

	Age      int     `json:"age"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Gender   string  `json:"gender"`

	Injuries         []string `json:"injuries"`
	Intolerances     []string `json:"intolerances"`
	Allergies        []string `json:"allergies"`
	HealthConditions []string `json:"health_conditions"`
	Medications      []string `json:"medications"`

	DietaryPref  string `json:"dietary_pref"`
	FitnessLevel string `json:"fitness_level"`

	PrimaryGoal    string   `json:"primary_goal"`
	TargetWeightKg *float64 `json:"target_weight_kg,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
