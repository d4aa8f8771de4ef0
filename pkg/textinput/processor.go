// Package textinput cleans and pre-screens raw user text before it enters
// the workflow: whitespace normalization, length capping, a fast harmful
// check and coarse intent tagging.
package textinput

import (
	"regexp"
	"strings"
)

// DefaultMaxLength caps query length in characters.
const DefaultMaxLength = 1000

const safetyMessage = "This query appears to be asking about potentially harmful practices. " +
	"Please consult a healthcare professional for guidance on safe approaches."

var harmfulPatterns = compilePatterns([]string{
	`how\s+to\s+(starve|purge|vomit)`,
	`(anorexia|bulimia)\s+(tips|tricks|how)`,
	`(extreme|crash|dangerous)\s+diet`,
	`lose\s+\d+\s+pounds?\s+in\s+(\d|one|two|three)\s+(day|week)`,
	`(steroids?|ped|performance.enhancing)`,
	`(laxative|diuretic)\s+(abuse|for.weight)`,
})

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[<>{}\[\]\\]`)
)

// intentCategories is the coarse tagging table, checked in order.
var intentCategories = []struct {
	name     string
	keywords []string
}{
	{"workout", []string{"workout", "exercise", "training", "gym", "lift", "strength", "cardio"}},
	{"nutrition", []string{"food", "meal", "eat", "diet", "nutrition", "calories", "protein", "carbs", "fat"}},
	{"sleep", []string{"sleep", "rest", "recovery", "tired", "fatigue", "energy"}},
	{"weight", []string{"weight", "lose", "gain", "bulk", "cut", "body"}},
	{"plan", []string{"plan", "schedule", "routine", "program", "week"}},
	{"injury", []string{"injury", "pain", "hurt", "sore", "strain"}},
}

// ProcessedQuery is the result of running raw text through the processor.
type ProcessedQuery struct {
	Original       string
	Cleaned        string
	IntentKeywords []string
	IsSafe         bool
	SafetyMessage  string
}

// Processor normalizes and screens text input.
type Processor struct {
	maxLength int
}

func NewProcessor(maxLength int) *Processor {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Processor{maxLength: maxLength}
}

// Process cleans the text, screens it for harmful phrasing and tags coarse
// intents.
func (p *Processor) Process(text string) ProcessedQuery {
	cleaned := p.clean(text)
	isSafe, message := checkSafety(cleaned)

	return ProcessedQuery{
		Original:       text,
		Cleaned:        cleaned,
		IntentKeywords: extractIntents(cleaned),
		IsSafe:         isSafe,
		SafetyMessage:  message,
	}
}

// IsEmptyOrWhitespace reports whether text has no usable content.
func (p *Processor) IsEmptyOrWhitespace(text string) bool {
	return strings.TrimSpace(text) == ""
}

// clean trims, caps length, collapses whitespace runs and strips markup-ish
// characters while keeping unicode intact.
func (p *Processor) clean(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > p.maxLength {
		text = text[:p.maxLength]
	}
	text = whitespaceRe.ReplaceAllString(text, " ")
	return unsafeRe.ReplaceAllString(text, "")
}

func checkSafety(text string) (bool, string) {
	lower := strings.ToLower(text)
	for _, pattern := range harmfulPatterns {
		if pattern.MatchString(lower) {
			return false, safetyMessage
		}
	}
	return true, ""
}

func extractIntents(text string) []string {
	lower := strings.ToLower(text)
	var detected []string
	for _, category := range intentCategories {
		for _, kw := range category.keywords {
			if strings.Contains(lower, kw) {
				detected = append(detected, category.name)
				break
			}
		}
	}
	return detected
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}
