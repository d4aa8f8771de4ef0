// Package calculator provides the nutrition math behind macro targets:
// Mifflin-St Jeor basal metabolic rate, activity-adjusted daily expenditure,
// and goal-adjusted macro splits.
package calculator

import (
	"fmt"
	"math"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"   // little or no exercise
	ActivityLight      ActivityLevel = "light"       // 1-3 days/week
	ActivityModerate   ActivityLevel = "moderate"    // 3-5 days/week
	ActivityActive     ActivityLevel = "active"      // 6-7 days/week
	ActivityVeryActive ActivityLevel = "very_active" // athlete, 2x/day
)

type Goal string

const (
	GoalLoseFat     Goal = "lose_fat"
	GoalMaintain    Goal = "maintain"
	GoalBuildMuscle Goal = "build_muscle"
)

// MacroTargets is the daily calorie and macro prescription.
type MacroTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	FiberG   int `json:"fiber_g"`
	WaterMl  int `json:"water_ml"`
}

// minSafeCalories is the hard floor below which no target ever goes.
const minSafeCalories = 1200

// minCarbsG keeps carbohydrate targets out of ketogenic territory.
const minCarbsG = 50

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var goalAdjustments = map[Goal]int{
	GoalLoseFat:     -500,
	GoalMaintain:    0,
	GoalBuildMuscle: 300,
}

// BMR computes basal metabolic rate via the Mifflin-St Jeor equation,
// rounded to one decimal.
func BMR(weightKg, heightCm float64, age int, isMale bool) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight must be positive, got %.1f", weightKg)
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("height must be positive, got %.1f", heightCm)
	}
	if age <= 0 || age > 120 {
		return 0, fmt.Errorf("age must be between 1 and 120, got %d", age)
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if isMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return roundTo1(bmr), nil
}

// TDEE computes total daily energy expenditure: BMR scaled by the activity
// multiplier. Unknown activity levels fall back to moderate.
func TDEE(weightKg, heightCm float64, age int, isMale bool, activity ActivityLevel) (float64, error) {
	bmr, err := BMR(weightKg, heightCm, age, isMale)
	if err != nil {
		return 0, err
	}

	multiplier, ok := activityMultipliers[activity]
	if !ok {
		multiplier = activityMultipliers[ActivityModerate]
	}
	return roundTo1(bmr * multiplier), nil
}

// Macros computes daily macro targets. Protein scales with goal (and gets an
// adolescent bump under age 20), fat takes a fixed share of calories, carbs
// absorb the remainder.
func Macros(weightKg, heightCm float64, age int, isMale bool, activity ActivityLevel, goal Goal) (MacroTargets, error) {
	tdee, err := TDEE(weightKg, heightCm, age, isMale, activity)
	if err != nil {
		return MacroTargets{}, err
	}

	targetCalories := int(tdee) + goalAdjustments[goal]
	if targetCalories < minSafeCalories {
		targetCalories = minSafeCalories
	}

	var proteinPerKg float64
	switch goal {
	case GoalBuildMuscle:
		proteinPerKg = 2.2
	case GoalLoseFat:
		proteinPerKg = 2.0
	default:
		proteinPerKg = 1.6
	}
	if age < 20 {
		proteinPerKg += 0.2
	}
	proteinG := int(weightKg * proteinPerKg)

	fatPercent := 0.28
	if goal == GoalLoseFat {
		fatPercent = 0.25
	}
	fatCalories := float64(targetCalories) * fatPercent
	fatG := int(fatCalories / 9)

	remainingCalories := float64(targetCalories) - float64(proteinG*4) - fatCalories
	carbsG := int(remainingCalories / 4)
	if carbsG < minCarbsG {
		carbsG = minCarbsG
	}

	return MacroTargets{
		Calories: targetCalories,
		ProteinG: proteinG,
		CarbsG:   carbsG,
		FatG:     fatG,
		FiberG:   fiberTarget(targetCalories),
		WaterMl:  int(weightKg * 35),
	}, nil
}

// MacroPercentages returns each macro's share of total calories, in percent
// rounded to one decimal.
func MacroPercentages(m MacroTargets) (proteinPct, carbsPct, fatPct float64) {
	total := float64(CaloriesFromMacros(m.ProteinG, m.CarbsG, m.FatG))
	if total == 0 {
		return 0, 0, 0
	}
	proteinPct = roundTo1(float64(m.ProteinG*4) / total * 100)
	carbsPct = roundTo1(float64(m.CarbsG*4) / total * 100)
	fatPct = roundTo1(float64(m.FatG*9) / total * 100)
	return proteinPct, carbsPct, fatPct
}

// CaloriesFromMacros converts macro grams back into total calories.
func CaloriesFromMacros(proteinG, carbsG, fatG int) int {
	return proteinG*4 + carbsG*4 + fatG*9
}

// fiberTarget is 14g per 1000 calories with a 20g floor.
func fiberTarget(calories int) int {
	fiber := int(float64(calories) / 1000 * 14)
	if fiber < 20 {
		return 20
	}
	return fiber
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
