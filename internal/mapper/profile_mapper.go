package mapper

import (
	"encoding/json"
	"time"

	"adaptive-coach-be/internal/entity"
	"adaptive-coach-be/internal/model"

	"gorm.io/datatypes"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func stringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func jsonToStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}

func (m *ProfileMapper) ToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserProfile{
		Id:               p.Id,
		UserId:           p.UserId,
		Age:              p.Age,
		HeightCm:         p.HeightCm,
		WeightKg:         p.WeightKg,
		Gender:           p.Gender,
		Injuries:         jsonToStrings(p.Injuries),
		Intolerances:     jsonToStrings(p.Intolerances),
		Allergies:        jsonToStrings(p.Allergies),
		HealthConditions: jsonToStrings(p.HealthConditions),
		Medications:      jsonToStrings(p.Medications),
		DietaryPref:      entity.DietaryPref(p.DietaryPref),
		FitnessLevel:     entity.FitnessLevel(p.FitnessLevel),
		PrimaryGoal:      entity.PrimaryGoal(p.PrimaryGoal),
		TargetWeightKg:   p.TargetWeightKg,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.UserProfile{
		Id:               p.Id,
		UserId:           p.UserId,
		Age:              p.Age,
		HeightCm:         p.HeightCm,
		WeightKg:         p.WeightKg,
		Gender:           p.Gender,
		Injuries:         stringsToJSON(p.Injuries),
		Intolerances:     stringsToJSON(p.Intolerances),
		Allergies:        stringsToJSON(p.Allergies),
		HealthConditions: stringsToJSON(p.HealthConditions),
		Medications:      stringsToJSON(p.Medications),
		DietaryPref:      string(p.DietaryPref),
		FitnessLevel:     string(p.FitnessLevel),
		PrimaryGoal:      string(p.PrimaryGoal),
		TargetWeightKg:   p.TargetWeightKg,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}
