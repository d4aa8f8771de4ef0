package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserProfile struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	Age      int     `gorm:"not null"`
	HeightCm float64 `gorm:"not null"`
	WeightKg float64 `gorm:"not null"`
	Gender   string  `gorm:"type:varchar(50);not null;default:'prefer_not_to_say'"`

	Injuries         datatypes.JSON `gorm:"type:jsonb"`
	Intolerances     datatypes.JSON `gorm:"type:jsonb"`
	Allergies        datatypes.JSON `gorm:"type:jsonb"`
	HealthConditions datatypes.JSON `gorm:"type:jsonb"`
	Medications      datatypes.JSON `gorm:"type:jsonb"`

	DietaryPref  string `gorm:"type:varchar(50);not null;default:'omnivore'"`
	FitnessLevel string `gorm:"type:varchar(50);not null;default:'beginner'"`

	PrimaryGoal    string   `gorm:"type:varchar(50);not null;default:'maintain'"`
	TargetWeightKg *float64 `gorm:"type:numeric"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
