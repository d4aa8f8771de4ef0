package store

import (
	"time"

	"github.com/google/uuid"
)

// Agent names. Selection order is decided by the gate; merge order is fixed.
const (
	AgentTrainer      = "trainer"
	AgentNutritionist = "nutritionist"
	AgentRecovery     = "recovery"
)

// ModelTier is the capability level chosen per query by the model router.
type ModelTier string

const (
	TierSimple   ModelTier = "simple"
	TierStandard ModelTier = "standard"
	TierComplex  ModelTier = "complex"
)

// MemoryContext holds one formatted string per memory tier, each already
// truncated to its token budget.
type MemoryContext struct {
	LongTerm  string `json:"long_term"`
	ShortTerm string `json:"short_term"`
	Working   string `json:"working"`
}

// Document is a retrieved knowledge-base chunk attached to the workflow state.
type Document struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Content  string                 `json:"content"`
	Score    float32                `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`
}

// WorkflowState is the single mutable record threaded through the gate, the
// model router, each domain responder, and the merge step for one query.
// It is created once per incoming query and owned exclusively by the engine;
// no two goroutines ever touch the same instance.
type WorkflowState struct {
	UserID    uuid.UUID
	SessionID uuid.UUID

	Query       string
	QueryIntent []string

	LongTermContext  string
	ShortTermContext string
	WorkingContext   string

	RetrievedDocs []Document

	// SelectedAgents preserves insertion order; execution follows it.
	SelectedAgents []string
	CurrentAgent   string

	ModelTier ModelTier
	Model     string

	AgentResponses map[string]string

	// FinalResponse being non-empty means the workflow is terminal: no
	// further agent may execute.
	FinalResponse string

	Timestamp time.Time
	TurnCount int
}

// NewWorkflowState creates the initial state for a query.
func NewWorkflowState(userID, sessionID uuid.UUID, query string) *WorkflowState {
	return &WorkflowState{
		UserID:         userID,
		SessionID:      sessionID,
		Query:          query,
		QueryIntent:    []string{},
		SelectedAgents: []string{},
		AgentResponses: map[string]string{},
		ModelTier:      TierStandard,
		Timestamp:      time.Now().UTC(),
	}
}

// ApplyMemoryContext copies retrieved tier strings into the state.
func (s *WorkflowState) ApplyMemoryContext(mc MemoryContext) {
	s.LongTermContext = mc.LongTerm
	s.ShortTermContext = mc.ShortTerm
	s.WorkingContext = mc.Working
}

// NextUnrespondedAgent returns the first selected agent that has not yet
// written a response, or "" when every selected agent has responded.
func (s *WorkflowState) NextUnrespondedAgent() string {
	for _, name := range s.SelectedAgents {
		if _, ok := s.AgentResponses[name]; !ok {
			return name
		}
	}
	return ""
}

// Terminal reports whether the workflow already produced a final response.
func (s *WorkflowState) Terminal() bool {
	return s.FinalResponse != ""
}
