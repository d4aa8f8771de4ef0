package agents

import (
	"adaptive-coach-be/internal/pkg/logger"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/llm"
	"adaptive-coach-be/pkg/store"
)

const recoverySystemPrompt = `You are a recovery specialist for adolescent athletes (ages 16-19).

Your responsibilities:
- Provide sleep optimization guidance
- Recommend rest and recovery strategies
- Assess fatigue levels and suggest adjustments
- Connect recovery to training performance

Important guidelines:
- Adolescents need 8-10 hours of sleep for optimal development
- Consider recent workout intensity when recommending rest
- Emphasize the importance of recovery for muscle growth
- Watch for signs of overtraining

When assessing recovery needs:
- Check recent workout history
- Consider sleep patterns
- Account for life stressors (school, exams, etc.)

Keep responses supportive and practical.`

// NewRecovery builds the recovery-specialist responder. Its safety context
// lifts workout and sleep lines out of recent activity so rest advice matches
// the user's actual load.
func NewRecovery(provider llm.LLMProvider, log logger.ILogger, recorder metrics.Recorder) Responder {
	return &responder{
		name:         store.AgentRecovery,
		systemPrompt: recoverySystemPrompt,
		provider:     provider,
		enhance:      recoveryActivityContext,
		log:          log,
		recorder:     recorder,
	}
}

func recoveryActivityContext(state *store.WorkflowState) string {
	activity := linesContaining(state.ShortTermContext,
		[]string{"workout", "sleep", "exercise", "training"})
	if activity == "" {
		return ""
	}
	return "\n\nRECENT ACTIVITY:\n" + activity +
		"\nConsider this activity level when making recommendations."
}
