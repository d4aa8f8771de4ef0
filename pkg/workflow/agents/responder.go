// Package agents implements the domain responders that answer a routed query:
// a fitness trainer, a nutritionist and a recovery specialist. Each responder
// assembles a context-grounded system prompt from the memory tiers and the
// retrieved knowledge documents, then asks the tier-selected model.
package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adaptive-coach-be/internal/constant"
	"adaptive-coach-be/internal/pkg/logger"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/llm"
	"adaptive-coach-be/pkg/store"
)

// maxPromptDocs bounds how many retrieved documents make it into the prompt.
const maxPromptDocs = 3

// maxDocChars bounds how much of each document is quoted.
const maxDocChars = 200

// Responder is a single domain agent. Process must always leave a response
// under the agent's name in state.AgentResponses; provider failures produce
// an apology rather than an error so one broken agent cannot sink the others.
type Responder interface {
	Name() string
	Process(ctx context.Context, state *store.WorkflowState) error
}

// responder carries the shared prompt-assembly and generation flow. The
// enhance hook lets each domain append its safety context.
type responder struct {
	name         string
	systemPrompt string
	provider     llm.LLMProvider
	enhance      func(state *store.WorkflowState) string
	log          logger.ILogger
	recorder     metrics.Recorder
}

func (r *responder) Name() string {
	return r.name
}

func (r *responder) Process(ctx context.Context, state *store.WorkflowState) error {
	start := time.Now()

	prompt := r.buildPrompt(state)
	if extra := r.enhance(state); extra != "" {
		prompt += extra
	}

	response, err := r.provider.Chat(ctx,
		[]llm.Message{
			{Role: constant.ChatMessageRoleSystem, Content: prompt},
			{Role: constant.ChatMessageRoleUser, Content: state.Query},
		},
		llm.WithModel(state.Model),
	)
	success := err == nil
	if err != nil {
		r.log.Warn("agents", "responder generation failed", map[string]interface{}{
			"agent": r.name,
			"model": state.Model,
			"error": err.Error(),
		})
		response = constant.ResponderApology
	}

	state.AgentResponses[r.name] = response
	state.CurrentAgent = r.name

	r.recorder.ObserveResponder(r.name, state.Model, countTokens(prompt), success, time.Since(start))
	return nil
}

// buildPrompt layers the memory tiers and retrieved documents onto the
// domain system prompt. Empty tiers contribute nothing.
func (r *responder) buildPrompt(state *store.WorkflowState) string {
	var sb strings.Builder
	sb.WriteString(r.systemPrompt)

	if state.LongTermContext != "" {
		sb.WriteString("\n\nUser Profile:\n")
		sb.WriteString(state.LongTermContext)
	}

	if state.ShortTermContext != "" {
		sb.WriteString("\n\nRecent Activity:\n")
		sb.WriteString(state.ShortTermContext)
	}

	if len(state.RetrievedDocs) > 0 {
		sb.WriteString("\n\nRelevant Information:\n")
		docs := state.RetrievedDocs
		if len(docs) > maxPromptDocs {
			docs = docs[:maxPromptDocs]
		}
		for i, doc := range docs {
			if i > 0 {
				sb.WriteString("\n")
			}
			content := doc.Content
			if len(content) > maxDocChars {
				content = content[:maxDocChars]
			}
			sb.WriteString(fmt.Sprintf("- %s", content))
		}
	}

	return sb.String()
}

// linesContaining returns the trimmed lines of text whose lowercase form
// contains any of the given keywords, joined by newlines.
func linesContaining(text string, keywords []string) string {
	var matched []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, strings.TrimSpace(line))
				break
			}
		}
	}
	return strings.Join(matched, "\n")
}
