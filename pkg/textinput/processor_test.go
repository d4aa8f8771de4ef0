package textinput

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessCleansText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims and collapses whitespace", "  hello   world \n ", "hello world"},
		{"strips markup characters", "a <b> {c} [d] \\e", "a b c d e"},
		{"keeps unicode", "crème brûlée after training", "crème brûlée after training"},
	}

	p := NewProcessor(DefaultMaxLength)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Process(tt.input)
			assert.Equal(t, tt.want, got.Cleaned)
			assert.Equal(t, tt.input, got.Original)
		})
	}
}

func TestProcessCapsLength(t *testing.T) {
	p := NewProcessor(10)
	got := p.Process(strings.Repeat("a", 50))

	assert.Equal(t, strings.Repeat("a", 10), got.Cleaned)
}

func TestProcessScreensHarmfulQueries(t *testing.T) {
	tests := []struct {
		query string
		safe  bool
	}{
		{"how to starve myself", false},
		{"crash diet that works", false},
		{"lose 20 pounds in one week", false},
		{"anorexia tips please", false},
		{"how to lose weight safely", true},
		{"high protein breakfast ideas", true},
	}

	p := NewProcessor(DefaultMaxLength)
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := p.Process(tt.query)

			assert.Equal(t, tt.safe, got.IsSafe)
			if tt.safe {
				assert.Empty(t, got.SafetyMessage)
			} else {
				assert.NotEmpty(t, got.SafetyMessage)
			}
		})
	}
}

func TestProcessTagsIntents(t *testing.T) {
	got := NewProcessor(DefaultMaxLength).Process("meal plan for the week after my workout")

	assert.Equal(t, []string{"workout", "nutrition", "plan"}, got.IntentKeywords)
}

func TestIsEmptyOrWhitespace(t *testing.T) {
	p := NewProcessor(DefaultMaxLength)

	assert.True(t, p.IsEmptyOrWhitespace(""))
	assert.True(t, p.IsEmptyOrWhitespace("   \n\t"))
	assert.False(t, p.IsEmptyOrWhitespace(" x "))
}
