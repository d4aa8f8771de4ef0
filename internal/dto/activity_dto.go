package dto

// Dates are calendar days in "2006-01-02" form; activity is keyed by
// (user, date) and merged into one daily log.

type LogMealRequest struct {
	Date     string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string   `json:"time"`
	Foods    []string `json:"foods" validate:"required,min=1"`
	Calories int      `json:"calories" validate:"gte=0"`
	Protein  int      `json:"protein" validate:"gte=0"`
	Carbs    int      `json:"carbs" validate:"gte=0"`
	Fat      int      `json:"fat" validate:"gte=0"`
}

type LogWorkoutRequest struct {
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string   `json:"time"`
	Type        string   `json:"type" validate:"required"`
	DurationMin int      `json:"duration_min" validate:"required,gt=0"`
	Intensity   string   `json:"intensity" validate:"required,oneof=low moderate high"`
	Exercises   []string `json:"exercises"`
}

type LogSleepRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	BedTime  string `json:"bed_time"`
	WakeTime string `json:"wake_time"`
	Quality  int    `json:"quality" validate:"required,gte=1,lte=5"`
}

type MealResponse struct {
	Time     string   `json:"time"`
	Foods    []string `json:"foods"`
	Calories int      `json:"calories"`
	Protein  int      `json:"protein"`
	Carbs    int      `json:"carbs"`
	Fat      int      `json:"fat"`
}

type WorkoutResponse struct {
	Time        string   `json:"time"`
	Type        string   `json:"type"`
	DurationMin int      `json:"duration_min"`
	Intensity   string   `json:"intensity"`
	Exercises   []string `json:"exercises,omitempty"`
}

type SleepResponse struct {
	BedTime  string `json:"bed_time"`
	WakeTime string `json:"wake_time"`
	Quality  int    `json:"quality"`
}

type DailyLogResponse struct {
	Date             string            `json:"date"`
	Meals            []MealResponse    `json:"meals"`
	Workouts         []WorkoutResponse `json:"workouts"`
	Sleep            *SleepResponse    `json:"sleep,omitempty"`
	CaloriesConsumed int               `json:"calories_consumed"`
	CaloriesBurned   int               `json:"calories_burned"`
	ProteinTotal     int               `json:"protein_total"`
}

type ActivitySummaryResponse struct {
	Days            int     `json:"days"`
	AvgCalories     int     `json:"avg_calories"`
	AvgProtein      int     `json:"avg_protein"`
	WorkoutCount    int     `json:"workout_count"`
	AvgSleepQuality float64 `json:"avg_sleep_quality"`
}
