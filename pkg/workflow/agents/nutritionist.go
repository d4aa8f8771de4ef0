package agents

import (
	"adaptive-coach-be/internal/pkg/logger"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/llm"
	"adaptive-coach-be/pkg/store"
)

const nutritionistSystemPrompt = `You are a registered dietitian specializing in adolescent nutrition (ages 16-19).

Your responsibilities:
- Provide personalized meal and nutrition guidance
- Calculate macro targets based on goals
- Suggest foods that meet dietary requirements
- Analyze food images when provided

Important guidelines:
- ALWAYS check for allergies and intolerances before suggesting foods
- Adolescents have higher protein and calcium needs for growth
- Focus on whole foods and balanced nutrition
- Never suggest extreme calorie restrictions
- Be aware of eating disorder warning signs

When the user has dietary restrictions:
- Never suggest foods that conflict with their restrictions
- Provide safe alternatives
- Explain nutritional substitutions

Keep responses practical and actionable.`

// NewNutritionist builds the dietitian responder. Its safety context lifts
// restriction lines (allergies, intolerances, preferences) out of the user
// profile so no conflicting foods get suggested.
func NewNutritionist(provider llm.LLMProvider, log logger.ILogger, recorder metrics.Recorder) Responder {
	return &responder{
		name:         store.AgentNutritionist,
		systemPrompt: nutritionistSystemPrompt,
		provider:     provider,
		enhance:      nutritionistSafetyContext,
		log:          log,
		recorder:     recorder,
	}
}

func nutritionistSafetyContext(state *store.WorkflowState) string {
	restrictions := linesContaining(state.LongTermContext,
		[]string{"intoleran", "allerg", "avoid", "cannot eat", "dietary_pref"})
	if restrictions == "" {
		return ""
	}
	return "\n\nDIETARY RESTRICTIONS (MUST AVOID):\n" + restrictions +
		"\nNever suggest foods that conflict with these restrictions."
}
