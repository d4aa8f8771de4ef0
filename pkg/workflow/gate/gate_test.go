package gate

import (
	"testing"

	"adaptive-coach-be/internal/constant"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/store"

	"github.com/google/uuid"
)

func classify(t *testing.T, query string) *store.WorkflowState {
	t.Helper()
	state := store.NewWorkflowState(uuid.New(), uuid.New(), query)
	New(metrics.NoopRecorder{}).Classify(state)
	return state
}

func TestClassifyHarmful(t *testing.T) {
	queries := []string{
		"how to starve myself fast",
		"where can I get steroids",
		"best anorexia tips",
		"how do I lose 20 pounds in one week",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			state := classify(t, q)

			if state.FinalResponse != constant.HarmfulQueryResponse {
				t.Errorf("FinalResponse = %q, want harmful reply", state.FinalResponse)
			}
			if len(state.SelectedAgents) != 0 {
				t.Errorf("SelectedAgents = %v, want none", state.SelectedAgents)
			}
		})
	}
}

func TestClassifyHarmfulBeatsTaxonomy(t *testing.T) {
	// "steroids" and "muscle" both match; the harmful check must win.
	state := classify(t, "should I take steroids to build muscle")

	if state.FinalResponse != constant.HarmfulQueryResponse {
		t.Errorf("FinalResponse = %q, want harmful reply", state.FinalResponse)
	}
	if len(state.SelectedAgents) != 0 {
		t.Errorf("SelectedAgents = %v, want none", state.SelectedAgents)
	}
}

func TestClassifyOffTopic(t *testing.T) {
	state := classify(t, "what's the weather like today")

	if state.FinalResponse != constant.OffTopicResponse {
		t.Errorf("FinalResponse = %q, want off-topic reply", state.FinalResponse)
	}
	if len(state.SelectedAgents) != 0 {
		t.Errorf("SelectedAgents = %v, want none", state.SelectedAgents)
	}
}

func TestClassifyFiller(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"hi", constant.GreetingResponse},
		{"Good Morning", constant.GreetingResponse},
		{"thanks", constant.ThanksResponse},
		{"bye", constant.FarewellResponse},
		{"how are you", constant.StatusCheckResponse},
		{"ok", constant.AcknowledgmentResponse},
		{"k", constant.AcknowledgmentResponse}, // below minimum length
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			state := classify(t, tt.query)

			if state.FinalResponse != tt.want {
				t.Errorf("FinalResponse = %q, want %q", state.FinalResponse, tt.want)
			}
			if len(state.SelectedAgents) != 0 {
				t.Errorf("SelectedAgents = %v, want none", state.SelectedAgents)
			}
		})
	}
}

func TestClassifyRoutesSingleAgent(t *testing.T) {
	state := classify(t, "best gym session for legs")

	if state.Terminal() {
		t.Fatalf("query was gated: %q", state.FinalResponse)
	}
	if len(state.SelectedAgents) != 1 || state.SelectedAgents[0] != store.AgentTrainer {
		t.Errorf("SelectedAgents = %v, want [trainer]", state.SelectedAgents)
	}
	if len(state.QueryIntent) == 0 {
		t.Error("QueryIntent is empty, want matched keywords")
	}
}

func TestClassifyUnionsAgents(t *testing.T) {
	state := classify(t, "what should I eat before my workout")

	want := []string{store.AgentTrainer, store.AgentNutritionist}
	if len(state.SelectedAgents) != len(want) {
		t.Fatalf("SelectedAgents = %v, want %v", state.SelectedAgents, want)
	}
	for i, agent := range want {
		if state.SelectedAgents[i] != agent {
			t.Errorf("SelectedAgents[%d] = %q, want %q", i, state.SelectedAgents[i], agent)
		}
	}
}

func TestClassifyDefaultsToAllAgents(t *testing.T) {
	state := classify(t, "can you help me improve overall")

	want := []string{store.AgentTrainer, store.AgentNutritionist, store.AgentRecovery}
	if len(state.SelectedAgents) != len(want) {
		t.Fatalf("SelectedAgents = %v, want all three", state.SelectedAgents)
	}
	for i, agent := range want {
		if state.SelectedAgents[i] != agent {
			t.Errorf("SelectedAgents[%d] = %q, want %q", i, state.SelectedAgents[i], agent)
		}
	}
	if len(state.QueryIntent) != 0 {
		t.Errorf("QueryIntent = %v, want none for the default route", state.QueryIntent)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := classify(t, "meal plan around my sleep schedule")
	second := classify(t, "meal plan around my sleep schedule")

	if len(first.SelectedAgents) != len(second.SelectedAgents) {
		t.Fatalf("agent count differs: %v vs %v", first.SelectedAgents, second.SelectedAgents)
	}
	for i := range first.SelectedAgents {
		if first.SelectedAgents[i] != second.SelectedAgents[i] {
			t.Errorf("agent order differs at %d: %q vs %q", i, first.SelectedAgents[i], second.SelectedAgents[i])
		}
	}
}
