package modelrouter

import (
	"context"
	"errors"
	"testing"

	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/llm"
	"adaptive-coach-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeClassifier struct {
	reply string
	err   error
	calls int
}

func (f *fakeClassifier) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeClassifier) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

var testModels = map[store.ModelTier]string{
	store.TierSimple:   "gemma2:2b",
	store.TierStandard: "llama3.1:8b",
	store.TierComplex:  "llama3.1:70b",
}

func selectTier(t *testing.T, classifier *fakeClassifier, query string) *store.WorkflowState {
	t.Helper()
	selector := NewSelector(classifier, "gemma2:2b", testModels, nopLogger{}, metrics.NoopRecorder{})
	state := store.NewWorkflowState(uuid.New(), uuid.New(), query)
	selector.Select(context.Background(), state)
	return state
}

func TestSelectShortQueryIsSimple(t *testing.T) {
	classifier := &fakeClassifier{}
	state := selectTier(t, classifier, "hi")

	assert.Equal(t, store.TierSimple, state.ModelTier)
	assert.Equal(t, testModels[store.TierSimple], state.Model)
	assert.Equal(t, 0, classifier.calls, "trivial queries must not pay for a classifier call")
}

func TestSelectKnownSimpleInput(t *testing.T) {
	classifier := &fakeClassifier{}
	state := selectTier(t, classifier, "  Good Morning  ")

	assert.Equal(t, store.TierSimple, state.ModelTier)
	assert.Equal(t, 0, classifier.calls)
}

func TestSelectComplexPhraseSkipsClassifier(t *testing.T) {
	classifier := &fakeClassifier{}
	state := selectTier(t, classifier, "create a plan combining both fitness and nutrition for next month")

	assert.Equal(t, store.TierComplex, state.ModelTier)
	assert.Equal(t, testModels[store.TierComplex], state.Model)
	assert.Equal(t, 0, classifier.calls)
}

func TestSelectAmbiguousQueryAsksClassifier(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  store.ModelTier
	}{
		{"standard verdict", "STANDARD", store.TierStandard},
		{"complex verdict", " Complex.", store.TierComplex},
		{"simple verdict", "simple", store.TierSimple},
		{"garbage verdict", "I cannot classify this", store.TierStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := &fakeClassifier{reply: tt.reply}
			state := selectTier(t, classifier, "what should I eat before my workout")

			assert.Equal(t, tt.want, state.ModelTier)
			assert.Equal(t, testModels[tt.want], state.Model)
			assert.Equal(t, 1, classifier.calls)
		})
	}
}

func TestSelectClassifierFailureDegradesToStandard(t *testing.T) {
	classifier := &fakeClassifier{err: errors.New("connection refused")}
	state := selectTier(t, classifier, "what should I eat before my workout")

	assert.Equal(t, store.TierStandard, state.ModelTier)
	assert.Equal(t, testModels[store.TierStandard], state.Model)
	assert.Equal(t, 1, classifier.calls)
}
