package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DailyLog struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_date"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date"`

	Meals    datatypes.JSON `gorm:"type:jsonb"`
	Workouts datatypes.JSON `gorm:"type:jsonb"`
	Sleep    datatypes.JSON `gorm:"type:jsonb"`

	CaloriesConsumed int `gorm:"default:0"`
	CaloriesBurned   int `gorm:"default:0"`
	ProteinTotal     int `gorm:"default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}
