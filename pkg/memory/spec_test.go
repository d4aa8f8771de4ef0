package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecForQueryDefault(t *testing.T) {
	spec := SpecForQuery("can you help me out")

	assert.Equal(t, DefaultSpec(), spec)
	assert.Equal(t, defaultMessageCount, spec.MessageCount)
}

func TestSpecForQuerySingleTopic(t *testing.T) {
	spec := SpecForQuery("best WORKOUT for today")

	assert.Equal(t, []string{"injuries", "fitness_level", "primary_goal"}, spec.LongTermFields)
	assert.Equal(t, []string{"workouts", "sleep"}, spec.ShortTermFields)
	assert.Equal(t, 3, spec.MessageCount)
}

func TestSpecForQueryUnionsTopics(t *testing.T) {
	// "meal" hits nutrition, "plan" and "week" hit planning. The union keeps
	// first-seen field order, drops duplicates and takes the larger message
	// count.
	spec := SpecForQuery("meal plan for the week")

	assert.Equal(t, []string{
		"intolerances", "allergies", "dietary_pref", "primary_goal",
		"weight_kg", "target_weight_kg", "injuries", "fitness_level",
	}, spec.LongTermFields)
	assert.Equal(t, []string{
		"meals", "calories_consumed", "protein_total", "workouts", "sleep",
	}, spec.ShortTermFields)
	assert.Equal(t, 5, spec.MessageCount)
}

func TestSpecForQueryNoDuplicateFields(t *testing.T) {
	// Fitness and recovery both want fitness_level and primary_goal.
	spec := SpecForQuery("how does sleep affect my training")

	seen := map[string]int{}
	for _, f := range spec.LongTermFields {
		seen[f]++
	}
	for field, count := range seen {
		assert.Equalf(t, 1, count, "field %q appears %d times", field, count)
	}
}
