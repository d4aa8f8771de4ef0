package specification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetentionCutoff(t *testing.T) {
	days := 30
	cutoff := RetentionCutoff(days)

	assert.Equal(t, time.UTC, cutoff.Location())
	assert.Zero(t, cutoff.Hour())
	assert.Zero(t, cutoff.Minute())
	assert.Zero(t, cutoff.Second())

	expected := time.Now().UTC().AddDate(0, 0, -days)
	assert.Equal(t, expected.Year(), cutoff.Year())
	assert.Equal(t, expected.YearDay(), cutoff.YearDay())
}

func TestRetentionCutoffZeroDaysIsToday(t *testing.T) {
	cutoff := RetentionCutoff(0)
	now := time.Now().UTC()

	assert.Equal(t, now.Year(), cutoff.Year())
	assert.Equal(t, now.YearDay(), cutoff.YearDay())
}
