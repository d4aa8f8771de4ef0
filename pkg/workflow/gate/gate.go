// Package gate classifies a raw query before any domain agent runs: harmful
// and off-topic queries terminate with a canned reply, conversational filler
// gets a category-specific response, everything else selects one or more
// domain agents through the intent taxonomy.
package gate

import (
	"regexp"
	"strings"

	"adaptive-coach-be/internal/constant"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/store"
)

// Gate verdicts, reported to metrics.
const (
	VerdictHarmful  = "harmful"
	VerdictOffTopic = "off_topic"
	VerdictFiller   = "filler"
	VerdictRouted   = "routed"
)

// minQueryLength is the threshold below which a query is treated as
// conversational filler regardless of content.
const minQueryLength = 3

// Gate holds the immutable pattern tables. Construct once at startup; Classify
// has no hidden state, so the same query always yields the same outcome.
type Gate struct {
	taxonomy []intentRule
	harmful  []*regexp.Regexp
	offTopic []*regexp.Regexp
	recorder metrics.Recorder
}

func New(recorder metrics.Recorder) *Gate {
	return &Gate{
		taxonomy: DefaultIntentTaxonomy(),
		harmful:  DefaultHarmfulPatterns(),
		offTopic: DefaultOffTopicPatterns(),
		recorder: recorder,
	}
}

// Classify inspects the query and either terminates the workflow with a fixed
// response (selected agents stays empty) or populates the selected agents and
// intent tags. Checks run in strict priority order: harmful, off-topic,
// conversational filler, taxonomy.
func (g *Gate) Classify(state *store.WorkflowState) {
	query := strings.ToLower(strings.TrimSpace(state.Query))

	if g.matchesAny(g.harmful, query) {
		state.SelectedAgents = []string{}
		state.FinalResponse = constant.HarmfulQueryResponse
		g.recorder.IncGateVerdict(VerdictHarmful)
		return
	}

	if g.matchesAny(g.offTopic, query) {
		state.SelectedAgents = []string{}
		state.FinalResponse = constant.OffTopicResponse
		g.recorder.IncGateVerdict(VerdictOffTopic)
		return
	}

	if reply, ok := g.fillerReply(query); ok {
		state.SelectedAgents = []string{}
		state.FinalResponse = reply
		g.recorder.IncGateVerdict(VerdictFiller)
		return
	}

	agents, intents := g.extractAgents(query)
	if len(agents) == 0 {
		// No keyword hits: broad-coverage default, all three domains.
		agents = []string{store.AgentTrainer, store.AgentNutritionist, store.AgentRecovery}
	}

	state.SelectedAgents = agents
	state.QueryIntent = intents
	g.recorder.IncGateVerdict(VerdictRouted)
}

func (g *Gate) matchesAny(patterns []*regexp.Regexp, query string) bool {
	for _, p := range patterns {
		if p.MatchString(query) {
			return true
		}
	}
	return false
}

// fillerReply handles greetings, thanks, farewells, status checks and bare
// acknowledgments. Triggers on exact membership in the curated short-input
// set, or on queries shorter than the minimum length.
func (g *Gate) fillerReply(query string) (string, bool) {
	_, known := knownShortInputs[query]
	if !known && len(query) >= minQueryLength {
		return "", false
	}

	switch {
	case containsAny(query, statusWords):
		return constant.StatusCheckResponse, true
	case containsAny(query, thanksWords):
		return constant.ThanksResponse, true
	case containsAny(query, farewellWords):
		return constant.FarewellResponse, true
	case containsAny(query, greetingWords):
		return constant.GreetingResponse, true
	default:
		return constant.AcknowledgmentResponse, true
	}
}

// extractAgents unions the agents whose keywords occur in the query. Agent
// order follows first keyword hit; intent tags are the matched keywords whose
// agent made the selection.
func (g *Gate) extractAgents(query string) ([]string, []string) {
	var agents []string
	var intents []string
	seen := map[string]bool{}

	for _, rule := range g.taxonomy {
		if !strings.Contains(query, rule.Keyword) {
			continue
		}
		intents = append(intents, rule.Keyword)
		if !seen[rule.Agent] {
			seen[rule.Agent] = true
			agents = append(agents, rule.Agent)
		}
	}
	return agents, intents
}

func containsAny(query string, words []string) bool {
	for _, w := range words {
		if strings.Contains(query, w) {
			return true
		}
	}
	return false
}
