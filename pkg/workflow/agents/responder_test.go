package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"adaptive-coach-be/internal/constant"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/llm"
	"adaptive-coach-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingProvider records the last chat call so tests can inspect the
// assembled prompt and the resolved model.
type capturingProvider struct {
	reply  string
	err    error
	system string
	user   string
	model  string
}

func (p *capturingProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{}
	for _, o := range options {
		o(opts)
	}
	p.model = opts.Model

	for _, m := range history {
		switch m.Role {
		case constant.ChatMessageRoleSystem:
			p.system = m.Content
		case constant.ChatMessageRoleUser:
			p.user = m.Content
		}
	}

	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func (p *capturingProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: constant.ChatMessageRoleUser, Content: prompt}}, options...)
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newState(query string) *store.WorkflowState {
	state := store.NewWorkflowState(uuid.New(), uuid.New(), query)
	state.Model = "llama3.1:8b"
	return state
}

func TestProcessLayersMemoryIntoPrompt(t *testing.T) {
	provider := &capturingProvider{reply: "Do three sets of squats."}
	trainer := NewTrainer(provider, nopLogger{}, metrics.NoopRecorder{})

	state := newState("leg day ideas")
	state.LongTermContext = "- fitness_level: beginner\n- primary_goal: build_muscle"
	state.ShortTermContext = "- recent_sleep: 2026-08-20: quality 4/5"

	require.NoError(t, trainer.Process(context.Background(), state))

	assert.Contains(t, provider.system, "User Profile:\n- fitness_level: beginner")
	assert.Contains(t, provider.system, "Recent Activity:\n- recent_sleep:")
	assert.NotContains(t, provider.system, "Relevant Information:")
	assert.Equal(t, "leg day ideas", provider.user)
	assert.Equal(t, "llama3.1:8b", provider.model)
	assert.Equal(t, "Do three sets of squats.", state.AgentResponses[store.AgentTrainer])
	assert.Equal(t, store.AgentTrainer, state.CurrentAgent)
}

func TestProcessQuotesTopDocumentsOnly(t *testing.T) {
	provider := &capturingProvider{reply: "ok"}
	trainer := NewTrainer(provider, nopLogger{}, metrics.NoopRecorder{})

	long := strings.Repeat("a", 250) + "TAIL"
	state := newState("leg day ideas")
	state.RetrievedDocs = []store.Document{
		{ID: "1", Content: long},
		{ID: "2", Content: "squat form basics"},
		{ID: "3", Content: "progressive overload"},
		{ID: "4", Content: "never quoted"},
	}

	require.NoError(t, trainer.Process(context.Background(), state))

	assert.Contains(t, provider.system, "Relevant Information:")
	assert.Contains(t, provider.system, "- squat form basics")
	assert.Contains(t, provider.system, "- progressive overload")
	assert.NotContains(t, provider.system, "never quoted")
	assert.NotContains(t, provider.system, "TAIL", "document content must be capped")
}

func TestTrainerInjectsInjuryContext(t *testing.T) {
	provider := &capturingProvider{reply: "ok"}
	trainer := NewTrainer(provider, nopLogger{}, metrics.NoopRecorder{})

	state := newState("leg day ideas")
	state.LongTermContext = "- injuries: knee pain, shin splints\n- fitness_level: beginner"

	require.NoError(t, trainer.Process(context.Background(), state))

	assert.Contains(t, provider.system, "IMPORTANT - User has these injuries:")
	assert.Contains(t, provider.system, "- injuries: knee pain, shin splints")
	assert.Contains(t, provider.system, "Modify all recommendations to be safe for these conditions.")
}

func TestTrainerSkipsInjuryContextWhenNone(t *testing.T) {
	provider := &capturingProvider{reply: "ok"}
	trainer := NewTrainer(provider, nopLogger{}, metrics.NoopRecorder{})

	state := newState("leg day ideas")
	state.LongTermContext = "- fitness_level: beginner"

	require.NoError(t, trainer.Process(context.Background(), state))

	assert.NotContains(t, provider.system, "IMPORTANT - User has these injuries:")
}

func TestNutritionistInjectsRestrictions(t *testing.T) {
	provider := &capturingProvider{reply: "ok"}
	nutritionist := NewNutritionist(provider, nopLogger{}, metrics.NoopRecorder{})

	state := newState("what should I snack on")
	state.LongTermContext = "- allergies: peanuts\n- dietary_pref: vegetarian\n- primary_goal: maintain"

	require.NoError(t, nutritionist.Process(context.Background(), state))

	assert.Contains(t, provider.system, "DIETARY RESTRICTIONS (MUST AVOID):")
	assert.Contains(t, provider.system, "- allergies: peanuts")
	assert.Contains(t, provider.system, "- dietary_pref: vegetarian")
	assert.NotContains(t, provider.system, "DIETARY RESTRICTIONS (MUST AVOID):\n- primary_goal")
	assert.Contains(t, provider.system, "Never suggest foods that conflict with these restrictions.")
}

func TestRecoveryInjectsRecentActivity(t *testing.T) {
	provider := &capturingProvider{reply: "ok"}
	recovery := NewRecovery(provider, nopLogger{}, metrics.NoopRecorder{})

	state := newState("should I rest tomorrow")
	state.ShortTermContext = "- recent_workouts: 2026-08-20: running (30min, high)\n- recent_sleep: 2026-08-20: quality 3/5"

	require.NoError(t, recovery.Process(context.Background(), state))

	assert.Contains(t, provider.system, "RECENT ACTIVITY:")
	assert.Contains(t, provider.system, "- recent_workouts: 2026-08-20: running (30min, high)")
	assert.Contains(t, provider.system, "Consider this activity level when making recommendations.")
}

func TestProcessProviderFailureYieldsApology(t *testing.T) {
	provider := &capturingProvider{err: errors.New("model not loaded")}
	trainer := NewTrainer(provider, nopLogger{}, metrics.NoopRecorder{})

	state := newState("leg day ideas")
	err := trainer.Process(context.Background(), state)

	require.NoError(t, err, "a provider failure must not sink the workflow")
	assert.Equal(t, constant.ResponderApology, state.AgentResponses[store.AgentTrainer])
	assert.Equal(t, store.AgentTrainer, state.CurrentAgent)
}
