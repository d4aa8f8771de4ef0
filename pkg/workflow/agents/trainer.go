package agents

import (
	"adaptive-coach-be/internal/pkg/logger"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/llm"
	"adaptive-coach-be/pkg/store"
)

const trainerSystemPrompt = `You are an expert fitness trainer specializing in adolescent athletes (ages 16-19).

Your responsibilities:
- Provide safe, age-appropriate workout recommendations
- Consider user's injuries and modify exercises accordingly
- Explain proper form and technique
- Create balanced training programs

Important guidelines:
- ALWAYS check for injuries before recommending exercises
- Suggest modifications for any exercises that may aggravate injuries
- Focus on compound movements and proper progression
- Emphasize recovery and avoiding overtraining
- Never recommend advanced techniques without proper foundation

When the user has injuries:
- Explicitly acknowledge their injury
- Provide safe alternatives
- Explain why certain exercises should be avoided

Keep responses concise but informative.`

// NewTrainer builds the fitness-trainer responder. Its safety context lifts
// injury lines out of the user profile so recommendations get modified.
func NewTrainer(provider llm.LLMProvider, log logger.ILogger, recorder metrics.Recorder) Responder {
	return &responder{
		name:         store.AgentTrainer,
		systemPrompt: trainerSystemPrompt,
		provider:     provider,
		enhance:      trainerSafetyContext,
		log:          log,
		recorder:     recorder,
	}
}

func trainerSafetyContext(state *store.WorkflowState) string {
	injuries := linesContaining(state.LongTermContext, []string{"injur"})
	if injuries == "" {
		return ""
	}
	return "\n\nIMPORTANT - User has these injuries:\n" + injuries +
		"\nModify all recommendations to be safe for these conditions."
}
