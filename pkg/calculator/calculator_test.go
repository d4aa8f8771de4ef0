package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMR(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
		isMale   bool
		want     float64
	}{
		{"adult male", 70, 175, 25, true, 1673.8},
		{"adult female", 70, 175, 25, false, 1507.8},
		{"adolescent male", 70, 175, 17, true, 1713.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMR(tt.weightKg, tt.heightCm, tt.age, tt.isMale)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.05)
		})
	}
}

func TestBMRRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
	}{
		{"zero weight", 0, 175, 25},
		{"negative height", 70, -1, 25},
		{"zero age", 70, 175, 0},
		{"age too high", 70, 175, 121},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BMR(tt.weightKg, tt.heightCm, tt.age, true)
			assert.Error(t, err)
		})
	}
}

func TestTDEE(t *testing.T) {
	got, err := TDEE(70, 175, 25, true, ActivityModerate)
	require.NoError(t, err)
	assert.InDelta(t, 2594.4, got, 0.05)
}

func TestTDEEUnknownActivityFallsBackToModerate(t *testing.T) {
	moderate, err := TDEE(70, 175, 25, true, ActivityModerate)
	require.NoError(t, err)

	unknown, err := TDEE(70, 175, 25, true, ActivityLevel("extreme"))
	require.NoError(t, err)

	assert.Equal(t, moderate, unknown)
}

func TestMacrosAdolescentBuildMuscle(t *testing.T) {
	// 70kg, 175cm, 17y male, moderate activity: TDEE 2656.4, surplus +300.
	// The under-20 protein bump raises 2.2g/kg to 2.4g/kg.
	got, err := Macros(70, 175, 17, true, ActivityModerate, GoalBuildMuscle)
	require.NoError(t, err)

	assert.Equal(t, 2956, got.Calories)
	assert.Equal(t, 168, got.ProteinG)
	assert.Equal(t, 91, got.FatG)
	assert.Equal(t, 364, got.CarbsG)
	assert.Equal(t, 41, got.FiberG)
	assert.Equal(t, 2450, got.WaterMl)
}

func TestMacrosEnforcesCalorieFloor(t *testing.T) {
	// Small sedentary frame with a fat-loss deficit would land near 600 kcal.
	got, err := Macros(45, 150, 60, false, ActivitySedentary, GoalLoseFat)
	require.NoError(t, err)

	assert.Equal(t, 1200, got.Calories)
	assert.Equal(t, 20, got.FiberG, "fiber has a 20g floor at low calories")
}

func TestMacrosEnforcesCarbFloor(t *testing.T) {
	// Heavy user on a floored calorie target: protein and fat alone would
	// leave only 25g of carbs.
	got, err := Macros(100, 150, 80, false, ActivitySedentary, GoalLoseFat)
	require.NoError(t, err)

	assert.Equal(t, 1200, got.Calories)
	assert.Equal(t, 200, got.ProteinG)
	assert.Equal(t, 50, got.CarbsG)
}

func TestMacrosInvalidInput(t *testing.T) {
	_, err := Macros(0, 175, 25, true, ActivityModerate, GoalMaintain)
	assert.Error(t, err)
}

func TestMacroPercentages(t *testing.T) {
	m := MacroTargets{ProteinG: 150, CarbsG: 300, FatG: 80}

	proteinPct, carbsPct, fatPct := MacroPercentages(m)

	assert.InDelta(t, 23.8, proteinPct, 0.05)
	assert.InDelta(t, 47.6, carbsPct, 0.05)
	assert.InDelta(t, 28.6, fatPct, 0.05)
}

func TestMacroPercentagesZero(t *testing.T) {
	proteinPct, carbsPct, fatPct := MacroPercentages(MacroTargets{})

	assert.Zero(t, proteinPct)
	assert.Zero(t, carbsPct)
	assert.Zero(t, fatPct)
}

func TestCaloriesFromMacros(t *testing.T) {
	assert.Equal(t, 2520, CaloriesFromMacros(150, 300, 80))
}
