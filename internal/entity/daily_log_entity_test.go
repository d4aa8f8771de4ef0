package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMealAccumulatesTotals(t *testing.T) {
	var d DailyLog

	d.ApplyMeal(MealLog{Foods: []string{"eggs", "toast"}, Calories: 450, Protein: 30})
	d.ApplyMeal(MealLog{Foods: []string{"chicken", "rice"}, Calories: 700, Protein: 55})

	assert.Len(t, d.Meals, 2)
	assert.Equal(t, 1150, d.CaloriesConsumed)
	assert.Equal(t, 85, d.ProteinTotal)
}

func TestApplyWorkoutEstimatesBurn(t *testing.T) {
	tests := []struct {
		name      string
		intensity string
		duration  int
		wantBurn  int
	}{
		{"low", "low", 10, 40},
		{"moderate", "moderate", 30, 180},
		{"high", "HIGH", 30, 240},
		{"unknown defaults to middle rate", "brutal", 10, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DailyLog
			d.ApplyWorkout(WorkoutLog{Type: "running", DurationMin: tt.duration, Intensity: tt.intensity})

			assert.Equal(t, tt.wantBurn, d.CaloriesBurned)
			assert.Len(t, d.Workouts, 1)
		})
	}
}

func TestSetSleepReplacesPrevious(t *testing.T) {
	var d DailyLog

	d.SetSleep(SleepLog{Quality: 2})
	d.SetSleep(SleepLog{Quality: 4, BedTime: "22:30", WakeTime: "07:00"})

	assert.NotNil(t, d.Sleep)
	assert.Equal(t, 4, d.Sleep.Quality)
	assert.Equal(t, "22:30", d.Sleep.BedTime)
}

func TestSummarize(t *testing.T) {
	logs := []DailyLog{
		{
			CaloriesConsumed: 2200,
			ProteinTotal:     120,
			Workouts:         []WorkoutLog{{Type: "running"}, {Type: "lifting"}},
			Sleep:            &SleepLog{Quality: 4},
		},
		{
			CaloriesConsumed: 1800,
			ProteinTotal:     80,
			Workouts:         []WorkoutLog{{Type: "cycling"}},
			Sleep:            &SleepLog{Quality: 5},
		},
	}

	summary := Summarize(logs)

	assert.Equal(t, 2000, summary.AvgCalories)
	assert.Equal(t, 100, summary.AvgProtein)
	assert.Equal(t, 3, summary.WorkoutCount)
	assert.InDelta(t, 4.5, summary.AvgSleepQuality, 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, ActivitySummary{}, Summarize(nil))
}
