package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type DietaryPref string
type FitnessLevel string
type PrimaryGoal string

const (
	DietOmnivore    DietaryPref = "omnivore"
	DietVegetarian  DietaryPref = "vegetarian"
	DietVegan       DietaryPref = "vegan"
	DietPescatarian DietaryPref = "pescatarian"
	DietKeto        DietaryPref = "keto"

	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"

	GoalBuildMuscle   PrimaryGoal = "build_muscle"
	GoalLoseFat       PrimaryGoal = "lose_fat"
	GoalMaintain      PrimaryGoal = "maintain"
	GoalImproveEnergy PrimaryGoal = "improve_energy"
)

// UserProfile is the permanent per-user record backing long-term memory.
// Updated by partial merge; only explicit deletion removes it.
type UserProfile struct {
	Id     uuid.UUID
	UserId uuid.UUID

	// Demographics
	Age      int
	HeightCm float64
	WeightKg float64
	Gender   string

	// Health constraints
	Injuries         []string
	Intolerances     []string
	Allergies        []string
	HealthConditions []string
	Medications      []string

	// Preferences
	DietaryPref  DietaryPref
	FitnessLevel FitnessLevel

	// Goals
	PrimaryGoal    PrimaryGoal
	TargetWeightKg *float64

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// AddInjury records an injury if not already present (case-insensitive).
// Returns true when the list changed.
func (p *UserProfile) AddInjury(injury string) bool {
	if containsFold(p.Injuries, injury) {
		return false
	}
	p.Injuries = append(p.Injuries, injury)
	return true
}

// RemoveInjury drops an injury by case-insensitive match. Returns true when
// something was removed.
func (p *UserProfile) RemoveInjury(injury string) bool {
	kept := make([]string, 0, len(p.Injuries))
	removed := false
	for _, existing := range p.Injuries {
		if strings.EqualFold(existing, injury) {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	p.Injuries = kept
	return removed
}

// AddIntolerance records a food intolerance if not already present
// (case-insensitive). Returns true when the list changed.
func (p *UserProfile) AddIntolerance(intolerance string) bool {
	if containsFold(p.Intolerances, intolerance) {
		return false
	}
	p.Intolerances = append(p.Intolerances, intolerance)
	return true
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

// Field returns the named profile attribute for memory formatting, or nil
// when the attribute is absent/empty. Names follow the snake_case keys used
// by the memory specifications.
func (p *UserProfile) Field(name string) interface{} {
	switch name {
	case "age":
		if p.Age > 0 {
			return p.Age
		}
	case "height_cm":
		if p.HeightCm > 0 {
			return p.HeightCm
		}
	case "weight_kg":
		if p.WeightKg > 0 {
			return p.WeightKg
		}
	case "gender":
		if p.Gender != "" {
			return p.Gender
		}
	case "injuries":
		if len(p.Injuries) > 0 {
			return p.Injuries
		}
	case "intolerances":
		if len(p.Intolerances) > 0 {
			return p.Intolerances
		}
	case "allergies":
		if len(p.Allergies) > 0 {
			return p.Allergies
		}
	case "health_conditions":
		if len(p.HealthConditions) > 0 {
			return p.HealthConditions
		}
	case "medications":
		if len(p.Medications) > 0 {
			return p.Medications
		}
	case "dietary_pref":
		if p.DietaryPref != "" {
			return string(p.DietaryPref)
		}
	case "fitness_level":
		if p.FitnessLevel != "" {
			return string(p.FitnessLevel)
		}
	case "primary_goal":
		if p.PrimaryGoal != "" {
			return string(p.PrimaryGoal)
		}
	case "target_weight_kg":
		if p.TargetWeightKg != nil && *p.TargetWeightKg > 0 {
			return *p.TargetWeightKg
		}
	}
	return nil
}
