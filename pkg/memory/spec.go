// Package memory implements query-aware retrieval across the three memory
// tiers: the permanent profile (long-term), the rolling activity window
// (short-term) and the per-session conversation (working).
package memory

import "strings"

// Spec says which fields to pull from each tier for one query topic.
type Spec struct {
	LongTermFields  []string
	ShortTermFields []string
	MessageCount    int
}

// defaultMessageCount applies when no topic raises it.
const defaultMessageCount = 3

// topicSpec binds a keyword list to the memory fields relevant to it.
// Matching is substring containment on the lowercased query.
type topicSpec struct {
	Keywords []string
	Spec     Spec
}

// topicTable is checked in order; every matching topic contributes its
// fields. Loaded once, never mutated.
var topicTable = []topicSpec{
	{
		Keywords: []string{"workout", "exercise", "training", "gym", "lift", "strength"},
		Spec: Spec{
			LongTermFields:  []string{"injuries", "fitness_level", "primary_goal"},
			ShortTermFields: []string{"workouts", "sleep"},
			MessageCount:    3,
		},
	},
	{
		Keywords: []string{"food", "meal", "eat", "nutrition", "calories", "diet", "protein", "carb"},
		Spec: Spec{
			LongTermFields:  []string{"intolerances", "allergies", "dietary_pref", "primary_goal", "weight_kg", "target_weight_kg"},
			ShortTermFields: []string{"meals", "calories_consumed", "protein_total"},
			MessageCount:    3,
		},
	},
	{
		Keywords: []string{"sleep", "tired", "rest", "recovery", "fatigue", "energy"},
		Spec: Spec{
			LongTermFields:  []string{"fitness_level", "primary_goal"},
			ShortTermFields: []string{"sleep", "workouts"},
			MessageCount:    3,
		},
	},
	{
		Keywords: []string{"plan", "week", "schedule", "program", "routine"},
		Spec: Spec{
			LongTermFields:  []string{"injuries", "fitness_level", "primary_goal", "dietary_pref", "intolerances"},
			ShortTermFields: []string{"meals", "workouts", "sleep"},
			MessageCount:    5,
		},
	},
	{
		Keywords: []string{"weight", "progress", "goal", "target"},
		Spec: Spec{
			LongTermFields:  []string{"weight_kg", "target_weight_kg", "primary_goal", "height_cm", "age"},
			ShortTermFields: []string{"calories_consumed", "calories_burned"},
			MessageCount:    3,
		},
	},
}

// DefaultSpec applies when the query matches no topic.
func DefaultSpec() Spec {
	return Spec{
		LongTermFields:  []string{"primary_goal", "injuries", "intolerances"},
		ShortTermFields: []string{"meals", "workouts"},
		MessageCount:    defaultMessageCount,
	}
}

// SpecForQuery unions the specs of every topic the query touches. Field
// lists are deduplicated preserving first-seen order; the message count takes
// the maximum across matched topics.
func SpecForQuery(query string) Spec {
	lower := strings.ToLower(query)

	merged := Spec{MessageCount: defaultMessageCount}
	matched := false

	for _, topic := range topicTable {
		if !matchesAnyKeyword(lower, topic.Keywords) {
			continue
		}
		matched = true
		merged.LongTermFields = appendUnique(merged.LongTermFields, topic.Spec.LongTermFields)
		merged.ShortTermFields = appendUnique(merged.ShortTermFields, topic.Spec.ShortTermFields)
		if topic.Spec.MessageCount > merged.MessageCount {
			merged.MessageCount = topic.Spec.MessageCount
		}
	}

	if !matched {
		return DefaultSpec()
	}
	return merged
}

func matchesAnyKeyword(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

func appendUnique(dst []string, src []string) []string {
	for _, s := range src {
		exists := false
		for _, d := range dst {
			if d == s {
				exists = true
				break
			}
		}
		if !exists {
			dst = append(dst, s)
		}
	}
	return dst
}
