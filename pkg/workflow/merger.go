package workflow

import (
	"strings"

	"adaptive-coach-be/internal/constant"
	"adaptive-coach-be/pkg/store"
)

// mergeOrder fixes the section order of a multi-agent answer regardless of
// the order the responses were produced in.
var mergeOrder = []struct {
	agent string
	label string
}{
	{store.AgentTrainer, "**Fitness Perspective:**"},
	{store.AgentNutritionist, "**Nutrition Perspective:**"},
	{store.AgentRecovery, "**Recovery Perspective:**"},
}

// Merge combines the agent responses into one reply. A single response is
// returned verbatim; multiple responses become labeled sections; none at all
// yields the fallback.
func Merge(responses map[string]string) string {
	if len(responses) == 0 {
		return constant.NoResponderFallback
	}

	if len(responses) == 1 {
		for _, response := range responses {
			return response
		}
	}

	var sections []string
	for _, entry := range mergeOrder {
		if response, ok := responses[entry.agent]; ok {
			sections = append(sections, entry.label+"\n"+response)
		}
	}
	return strings.Join(sections, "\n\n")
}
