package workflow

import (
	"testing"

	"adaptive-coach-be/internal/constant"
	"adaptive-coach-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestMergeEmpty(t *testing.T) {
	assert.Equal(t, constant.NoResponderFallback, Merge(map[string]string{}))
}

func TestMergeSingleResponseIsVerbatim(t *testing.T) {
	merged := Merge(map[string]string{
		store.AgentNutritionist: "Eat more protein at breakfast.",
	})

	assert.Equal(t, "Eat more protein at breakfast.", merged)
}

func TestMergeOrdersSections(t *testing.T) {
	// Insertion order is recovery first; the merged output must still lead
	// with the trainer section.
	merged := Merge(map[string]string{
		store.AgentRecovery:     "Sleep 9 hours.",
		store.AgentTrainer:      "Squat twice a week.",
		store.AgentNutritionist: "Add a protein snack.",
	})

	want := "**Fitness Perspective:**\nSquat twice a week.\n\n" +
		"**Nutrition Perspective:**\nAdd a protein snack.\n\n" +
		"**Recovery Perspective:**\nSleep 9 hours."
	assert.Equal(t, want, merged)
}

func TestMergeSkipsMissingAgents(t *testing.T) {
	merged := Merge(map[string]string{
		store.AgentTrainer:  "Squat twice a week.",
		store.AgentRecovery: "Sleep 9 hours.",
	})

	want := "**Fitness Perspective:**\nSquat twice a week.\n\n" +
		"**Recovery Perspective:**\nSleep 9 hours."
	assert.Equal(t, want, merged)
}
