package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type MealLog struct {
	Time     string   `json:"time"`
	Foods    []string `json:"foods"`
	Calories int      `json:"calories"`
	Protein  int      `json:"protein"`
	Carbs    int      `json:"carbs"`
	Fat      int      `json:"fat"`
}

type WorkoutLog struct {
	Time        string   `json:"time"`
	Type        string   `json:"type"`
	DurationMin int      `json:"duration_min"`
	Intensity   string   `json:"intensity"`
	Exercises   []string `json:"exercises,omitempty"`
}

type SleepLog struct {
	BedTime  string `json:"bed_time"`
	WakeTime string `json:"wake_time"`
	Quality  int    `json:"quality"`
}

// DailyLog is one activity record per user per calendar date. Running totals
// are maintained incrementally as entries are appended, never recomputed.
type DailyLog struct {
	Id     uuid.UUID
	UserId uuid.UUID
	Date   time.Time

	Meals    []MealLog
	Workouts []WorkoutLog
	Sleep    *SleepLog

	CaloriesConsumed int
	CaloriesBurned   int
	ProteinTotal     int

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Rough calorie burn per minute by workout intensity.
var intensityMultiplier = map[string]int{
	"low":      4,
	"moderate": 6,
	"high":     8,
}

// ApplyMeal appends a meal entry and bumps the consumed totals.
func (d *DailyLog) ApplyMeal(meal MealLog) {
	d.Meals = append(d.Meals, meal)
	d.CaloriesConsumed += meal.Calories
	d.ProteinTotal += meal.Protein
}

// ApplyWorkout appends a workout entry and adds an estimated calorie burn.
func (d *DailyLog) ApplyWorkout(workout WorkoutLog) {
	d.Workouts = append(d.Workouts, workout)

	multiplier, ok := intensityMultiplier[strings.ToLower(workout.Intensity)]
	if !ok {
		multiplier = 5
	}
	d.CaloriesBurned += workout.DurationMin * multiplier
}

// SetSleep records the day's sleep entry, replacing any previous one.
func (d *DailyLog) SetSleep(sleep SleepLog) {
	d.Sleep = &sleep
}

// ActivitySummary aggregates a window of daily logs.
type ActivitySummary struct {
	AvgCalories     int
	AvgProtein      int
	WorkoutCount    int
	AvgSleepQuality float64
}

// Summarize computes window statistics over logs, most recent first.
func Summarize(logs []DailyLog) ActivitySummary {
	if len(logs) == 0 {
		return ActivitySummary{}
	}

	var totalCalories, totalProtein, workoutCount int
	var sleepQualities []int
	for _, log := range logs {
		totalCalories += log.CaloriesConsumed
		totalProtein += log.ProteinTotal
		workoutCount += len(log.Workouts)
		if log.Sleep != nil {
			sleepQualities = append(sleepQualities, log.Sleep.Quality)
		}
	}

	summary := ActivitySummary{
		AvgCalories:  totalCalories / len(logs),
		AvgProtein:   totalProtein / len(logs),
		WorkoutCount: workoutCount,
	}
	if len(sleepQualities) > 0 {
		var sum int
		for _, q := range sleepQualities {
			sum += q
		}
		summary.AvgSleepQuality = float64(sum) / float64(len(sleepQualities))
	}
	return summary
}
