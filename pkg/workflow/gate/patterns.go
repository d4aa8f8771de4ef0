package gate

import "regexp"

// intentRule maps one lowercase keyword to the agent that owns it. Matching
// is plain substring containment, so "eat" also hits "eating"; broad recall
// is preferred over precision here.
type intentRule struct {
	Keyword string
	Agent   string
}

// DefaultIntentTaxonomy returns the keyword → agent table in a stable order.
// Loaded once at startup and never mutated.
func DefaultIntentTaxonomy() []intentRule {
	return []intentRule{
		{"workout", "trainer"},
		{"exercise", "trainer"},
		{"training", "trainer"},
		{"gym", "trainer"},
		{"strength", "trainer"},
		{"cardio", "trainer"},
		{"lift", "trainer"},
		{"muscle", "trainer"},

		{"food", "nutritionist"},
		{"meal", "nutritionist"},
		{"eat", "nutritionist"},
		{"diet", "nutritionist"},
		{"nutrition", "nutritionist"},
		{"calories", "nutritionist"},
		{"protein", "nutritionist"},
		{"carbs", "nutritionist"},
		{"macro", "nutritionist"},

		{"sleep", "recovery"},
		{"rest", "recovery"},
		{"recovery", "recovery"},
		{"tired", "recovery"},
		{"fatigue", "recovery"},
		{"energy", "recovery"},
		{"soreness", "recovery"},
	}
}

// DefaultHarmfulPatterns covers disordered-eating, extreme restriction and
// banned-substance phrasing, plus unsafe "lose N pounds in M days" asks.
func DefaultHarmfulPatterns() []*regexp.Regexp {
	return compileAll([]string{
		`how\s+to\s+(starve|purge)`,
		`(anorexia|bulimia)`,
		`extreme\s+diet`,
		`steroids?`,
		`lose\s+\d+\s+pounds?\s+in\s+(one|two|\d)\s+(day|week)`,
	})
}

// DefaultOffTopicPatterns redirect clearly non-coaching questions.
func DefaultOffTopicPatterns() []*regexp.Regexp {
	return compileAll([]string{
		`weather`,
		`politics`,
		`news`,
		`movie`,
		`game\s+of\s+thrones`,
		`capital\s+of`,
		`president`,
		`who\s+is\s+\w+\s+\w+$`, // "who is [first last]"
	})
}

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

// Curated short-input word lists for the conversational-filler check.
// Categorization is substring containment on the normalized query.
var (
	greetingWords = []string{"hi", "hello", "hey", "good morning", "good evening", "good night"}
	thanksWords   = []string{"thanks", "thank you", "thx"}
	farewellWords = []string{"bye", "goodbye", "see you", "take care"}
	statusWords   = []string{"how are you", "how's it going"}
)

// knownShortInputs is the exact-match set that triggers the filler check even
// when the query is longer than the minimum length.
var knownShortInputs = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "yo": {},
	"thanks": {}, "thank you": {}, "thx": {},
	"bye": {}, "goodbye": {}, "see you": {}, "take care": {},
	"ok": {}, "okay": {}, "yes": {}, "no": {}, "sure": {},
	"cool": {}, "great": {}, "nice": {}, "got it": {},
	"good morning": {}, "good evening": {}, "good night": {},
	"how are you": {}, "how's it going": {},
}
