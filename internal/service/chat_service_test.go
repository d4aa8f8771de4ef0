package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromQueryShortQueryKeptVerbatim(t *testing.T) {
	assert.Equal(t, "leg day ideas", titleFromQuery("leg day ideas"))
}

func TestTitleFromQueryCapsLength(t *testing.T) {
	long := strings.Repeat("workout plan ", 10)

	title := titleFromQuery(long)

	assert.Len(t, title, sessionTitleMaxLen)
	assert.Equal(t, long[:sessionTitleMaxLen], title)
}

func TestTitleFromQueryCutsOnRuneBoundary(t *testing.T) {
	// 20 three-byte runes: the 50-byte cap lands mid-rune at byte 50 and must
	// back up to the rune start at byte 48.
	long := strings.Repeat("日", 20)

	title := titleFromQuery(long)

	assert.True(t, utf8.ValidString(title))
	assert.Equal(t, strings.Repeat("日", 16), title)
}
