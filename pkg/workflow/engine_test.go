package workflow

import (
	"context"
	"strings"
	"testing"

	"adaptive-coach-be/internal/constant"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/llm"
	"adaptive-coach-be/pkg/store"
	"adaptive-coach-be/pkg/workflow/agents"
	"adaptive-coach-be/pkg/workflow/gate"
	"adaptive-coach-be/pkg/workflow/modelrouter"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClassifier struct {
	reply string
}

func (f *fakeClassifier) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.reply, nil
}

func (f *fakeClassifier) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.reply, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// stubResponder records dispatch order and writes a canned response, the
// contract every real responder honors.
type stubResponder struct {
	name  string
	reply string
	calls *[]string
}

func (s *stubResponder) Name() string { return s.name }

func (s *stubResponder) Process(ctx context.Context, state *store.WorkflowState) error {
	*s.calls = append(*s.calls, s.name)
	state.AgentResponses[s.name] = s.reply
	state.CurrentAgent = s.name
	return nil
}

func newTestEngine(responders ...agents.Responder) *Engine {
	models := map[store.ModelTier]string{
		store.TierSimple:   "gemma2:2b",
		store.TierStandard: "llama3.1:8b",
		store.TierComplex:  "llama3.1:70b",
	}
	selector := modelrouter.NewSelector(&fakeClassifier{reply: "STANDARD"}, "gemma2:2b", models, nopLogger{}, metrics.NoopRecorder{})
	return NewEngine(gate.New(metrics.NoopRecorder{}), selector, responders, nopLogger{}, metrics.NoopRecorder{})
}

func TestRunGatedQueryShortCircuits(t *testing.T) {
	var calls []string
	engine := newTestEngine(
		&stubResponder{name: store.AgentTrainer, reply: "lift", calls: &calls},
		&stubResponder{name: store.AgentNutritionist, reply: "eat", calls: &calls},
		&stubResponder{name: store.AgentRecovery, reply: "rest", calls: &calls},
	)

	state := store.NewWorkflowState(uuid.New(), uuid.New(), "what's the weather like today")
	response, err := engine.Run(context.Background(), state)

	require.NoError(t, err)
	assert.Equal(t, constant.OffTopicResponse, response)
	assert.Empty(t, calls, "no responder may run on a gated query")
}

func TestRunDispatchesSelectedAgentsInOrder(t *testing.T) {
	var calls []string
	engine := newTestEngine(
		&stubResponder{name: store.AgentTrainer, reply: "Squat twice a week.", calls: &calls},
		&stubResponder{name: store.AgentNutritionist, reply: "Add a protein snack.", calls: &calls},
		&stubResponder{name: store.AgentRecovery, reply: "Sleep 9 hours.", calls: &calls},
	)

	state := store.NewWorkflowState(uuid.New(), uuid.New(), "best gym workout for legs and protein meals")
	response, err := engine.Run(context.Background(), state)

	require.NoError(t, err)
	assert.Equal(t, []string{store.AgentTrainer, store.AgentNutritionist}, calls)
	assert.True(t, strings.HasPrefix(response, "**Fitness Perspective:**"))
	assert.Contains(t, response, "**Nutrition Perspective:**")
	assert.NotContains(t, response, "**Recovery Perspective:**")
	assert.Equal(t, response, state.FinalResponse)
	assert.Equal(t, store.TierStandard, state.ModelTier)
	assert.Equal(t, "llama3.1:8b", state.Model)
}

func TestRunSingleAgentResponseIsVerbatim(t *testing.T) {
	var calls []string
	engine := newTestEngine(
		&stubResponder{name: store.AgentTrainer, reply: "Squat twice a week.", calls: &calls},
		&stubResponder{name: store.AgentNutritionist, reply: "Add a protein snack.", calls: &calls},
		&stubResponder{name: store.AgentRecovery, reply: "Sleep 9 hours.", calls: &calls},
	)

	state := store.NewWorkflowState(uuid.New(), uuid.New(), "best gym session for my legs")
	response, err := engine.Run(context.Background(), state)

	require.NoError(t, err)
	assert.Equal(t, []string{store.AgentTrainer}, calls)
	assert.Equal(t, "Squat twice a week.", response)
}

func TestRunUnknownAgentFails(t *testing.T) {
	var calls []string
	engine := newTestEngine(
		&stubResponder{name: store.AgentTrainer, reply: "lift", calls: &calls},
	)

	// "protein meals" routes to the nutritionist, which is not registered.
	state := store.NewWorkflowState(uuid.New(), uuid.New(), "protein meals")
	_, err := engine.Run(context.Background(), state)

	require.Error(t, err)
	assert.Contains(t, err.Error(), store.AgentNutritionist)
}
