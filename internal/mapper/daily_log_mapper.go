package mapper

import (
	"encoding/json"
	"log"
	"time"

	"adaptive-coach-be/internal/entity"
	"adaptive-coach-be/internal/model"

	"gorm.io/datatypes"
)

type DailyLogMapper struct{}

func NewDailyLogMapper() *DailyLogMapper {
	return &DailyLogMapper{}
}

func (m *DailyLogMapper) ToEntity(d *model.DailyLog) *entity.DailyLog {
	if d == nil {
		return nil
	}

	var meals []entity.MealLog
	if len(d.Meals) > 0 {
		if err := json.Unmarshal(d.Meals, &meals); err != nil {
			log.Printf("[ERROR] Corrupt meals JSON on daily log %s: %v", d.Id, err)
		}
	}

	var workouts []entity.WorkoutLog
	if len(d.Workouts) > 0 {
		if err := json.Unmarshal(d.Workouts, &workouts); err != nil {
			log.Printf("[ERROR] Corrupt workouts JSON on daily log %s: %v", d.Id, err)
		}
	}

	var sleep *entity.SleepLog
	if len(d.Sleep) > 0 && string(d.Sleep) != "null" {
		sleep = &entity.SleepLog{}
		if err := json.Unmarshal(d.Sleep, sleep); err != nil {
			log.Printf("[ERROR] Corrupt sleep JSON on daily log %s: %v", d.Id, err)
			sleep = nil
		}
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.DailyLog{
		Id:               d.Id,
		UserId:           d.UserId,
		Date:             d.Date,
		Meals:            meals,
		Workouts:         workouts,
		Sleep:            sleep,
		CaloriesConsumed: d.CaloriesConsumed,
		CaloriesBurned:   d.CaloriesBurned,
		ProteinTotal:     d.ProteinTotal,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *DailyLogMapper) ToModel(d *entity.DailyLog) *model.DailyLog {
	if d == nil {
		return nil
	}

	meals := d.Meals
	if meals == nil {
		meals = []entity.MealLog{}
	}
	mealsJSON, _ := json.Marshal(meals)

	workouts := d.Workouts
	if workouts == nil {
		workouts = []entity.WorkoutLog{}
	}
	workoutsJSON, _ := json.Marshal(workouts)

	var sleepJSON datatypes.JSON
	if d.Sleep != nil {
		raw, _ := json.Marshal(d.Sleep)
		sleepJSON = datatypes.JSON(raw)
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.DailyLog{
		Id:               d.Id,
		UserId:           d.UserId,
		Date:             d.Date,
		Meals:            datatypes.JSON(mealsJSON),
		Workouts:         datatypes.JSON(workoutsJSON),
		Sleep:            sleepJSON,
		CaloriesConsumed: d.CaloriesConsumed,
		CaloriesBurned:   d.CaloriesBurned,
		ProteinTotal:     d.ProteinTotal,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *DailyLogMapper) ToEntities(logs []*model.DailyLog) []entity.DailyLog {
	entities := make([]entity.DailyLog, 0, len(logs))
	for _, d := range logs {
		if e := m.ToEntity(d); e != nil {
			entities = append(entities, *e)
		}
	}
	return entities
}
