// Package modelrouter picks a model-capability tier per query. Cheap pattern
// checks resolve the obvious cases; only ambiguous queries pay for a one-word
// classifier call. Selection never fails: any classifier trouble degrades to
// the standard tier.
package modelrouter

import (
	"context"
	"strings"

	"adaptive-coach-be/internal/pkg/logger"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/llm"
	"adaptive-coach-be/pkg/store"
)

// simpleThreshold is the query length below which no model reasoning is
// needed at all.
const simpleThreshold = 15

const classifierSystemPrompt = "You are a query classifier. Respond with only one word: SIMPLE, STANDARD, or COMPLEX."

const classifierPrompt = `Classify this query's complexity as SIMPLE, STANDARD, or COMPLEX:

- SIMPLE: greetings, thanks, acknowledgments, yes/no questions, single-word responses
- STANDARD: specific advice requests, single-topic questions, routine guidance
- COMPLEX: multi-part questions, detailed planning, analysis across domains, comprehensive plans

Query: "%QUERY%"

Classification (respond with one word only):`

var simpleInputs = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "thanks": {}, "thank you": {},
	"bye": {}, "goodbye": {}, "ok": {}, "okay": {}, "yes": {}, "no": {},
	"sure": {}, "cool": {}, "great": {}, "nice": {},
	"good morning": {}, "good night": {}, "good evening": {}, "how are you": {},
}

var complexPhrases = []string{
	"create a plan", "weekly plan", "full week", "detailed",
	"comprehensive", "considering my", "taking into account",
	"multiple", "combining", "both fitness and nutrition",
}

// Selector annotates workflow state with a model tier and the concrete model
// name for that tier.
type Selector struct {
	classifier      llm.LLMProvider
	classifierModel string
	models          map[store.ModelTier]string
	log             logger.ILogger
	recorder        metrics.Recorder
}

func NewSelector(classifier llm.LLMProvider, classifierModel string, models map[store.ModelTier]string, log logger.ILogger, recorder metrics.Recorder) *Selector {
	return &Selector{
		classifier:      classifier,
		classifierModel: classifierModel,
		models:          models,
		log:             log,
		recorder:        recorder,
	}
}

// Select classifies the query and writes the tier and resolved model name
// into state. It never returns an error.
func (s *Selector) Select(ctx context.Context, state *store.WorkflowState) {
	tier := s.classify(ctx, state.Query)
	state.ModelTier = tier
	state.Model = s.models[tier]
	s.recorder.IncTierSelected(string(tier))
}

func (s *Selector) classify(ctx context.Context, query string) store.ModelTier {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if _, ok := simpleInputs[normalized]; ok || len(normalized) < simpleThreshold {
		return store.TierSimple
	}

	for _, phrase := range complexPhrases {
		if strings.Contains(normalized, phrase) {
			return store.TierComplex
		}
	}

	return s.classifyWithModel(ctx, query)
}

// classifyWithModel asks a small model for a single-word verdict. Near-zero
// temperature and a tiny token cap keep the call cheap and deterministic.
func (s *Selector) classifyWithModel(ctx context.Context, query string) store.ModelTier {
	prompt := strings.ReplaceAll(classifierPrompt, "%QUERY%", query)

	answer, err := s.classifier.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: classifierSystemPrompt},
			{Role: "user", Content: prompt},
		},
		llm.WithModel(s.classifierModel),
		llm.WithTemperature(0.0),
		llm.WithMaxTokens(10),
	)
	if err != nil {
		s.log.Warn("modelrouter", "complexity classifier unavailable, defaulting to standard", map[string]interface{}{
			"error": err.Error(),
		})
		return store.TierStandard
	}

	verdict := strings.ToUpper(strings.TrimSpace(answer))
	switch {
	case strings.Contains(verdict, "SIMPLE"):
		return store.TierSimple
	case strings.Contains(verdict, "COMPLEX"):
		return store.TierComplex
	default:
		return store.TierStandard
	}
}
