// Package workflow runs the per-query state machine: model selection, the
// safety gate, sequential domain responders, and the final merge.
package workflow

import (
	"context"
	"fmt"
	"time"

	"adaptive-coach-be/internal/pkg/logger"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/store"
	"adaptive-coach-be/pkg/workflow/agents"
	"adaptive-coach-be/pkg/workflow/gate"
	"adaptive-coach-be/pkg/workflow/modelrouter"
)

// Workflow outcomes, reported to metrics.
const (
	outcomeGated     = "gated"
	outcomeCompleted = "completed"
	outcomeFailed    = "failed"
)

// Engine owns one query's journey through the coaching pipeline. All stages
// mutate the same WorkflowState; the engine is the only goroutine touching it.
type Engine struct {
	gate       *gate.Gate
	selector   *modelrouter.Selector
	responders map[string]agents.Responder
	log        logger.ILogger
	recorder   metrics.Recorder
}

func NewEngine(g *gate.Gate, selector *modelrouter.Selector, responders []agents.Responder, log logger.ILogger, recorder metrics.Recorder) *Engine {
	byName := make(map[string]agents.Responder, len(responders))
	for _, r := range responders {
		byName[r.Name()] = r
	}
	return &Engine{
		gate:       g,
		selector:   selector,
		responders: byName,
		log:        log,
		recorder:   recorder,
	}
}

// Run executes the full pipeline on state and returns the final response.
// Memory context and retrieved documents must already be attached to state
// by the caller.
func (e *Engine) Run(ctx context.Context, state *store.WorkflowState) (string, error) {
	start := time.Now()

	e.selector.Select(ctx, state)
	e.gate.Classify(state)

	if state.Terminal() || len(state.SelectedAgents) == 0 {
		e.log.Info("workflow", "query gated", map[string]interface{}{
			"user_id":    state.UserID.String(),
			"session_id": state.SessionID.String(),
		})
		e.recorder.ObserveWorkflow(outcomeGated, time.Since(start))
		return state.FinalResponse, nil
	}

	for name := state.NextUnrespondedAgent(); name != ""; name = state.NextUnrespondedAgent() {
		responder, ok := e.responders[name]
		if !ok {
			e.recorder.ObserveWorkflow(outcomeFailed, time.Since(start))
			return "", fmt.Errorf("no responder registered for agent %q", name)
		}
		if err := responder.Process(ctx, state); err != nil {
			e.recorder.ObserveWorkflow(outcomeFailed, time.Since(start))
			return "", fmt.Errorf("agent %q failed: %w", name, err)
		}
	}

	// Every selected agent writes a response even on provider failure, so an
	// empty map here means the dispatch loop is broken.
	if len(state.AgentResponses) == 0 {
		e.recorder.ObserveWorkflow(outcomeFailed, time.Since(start))
		return "", fmt.Errorf("no agent responses after dispatching %d agents", len(state.SelectedAgents))
	}

	state.FinalResponse = Merge(state.AgentResponses)

	e.log.Info("workflow", "query completed", map[string]interface{}{
		"user_id":    state.UserID.String(),
		"session_id": state.SessionID.String(),
		"agents":     state.SelectedAgents,
		"model_tier": string(state.ModelTier),
	})
	e.recorder.ObserveWorkflow(outcomeCompleted, time.Since(start))
	return state.FinalResponse, nil
}
