package specification

import (
	"time"

	"gorm.io/gorm"
)

// ByDate filters daily logs to one calendar date.
type ByDate struct {
	Date time.Time
}

func (s ByDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", s.Date.Format("2006-01-02"))
}

// OnOrAfterDate keeps records at or after the cutoff. Used for the rolling
// lookback window, which includes the boundary date itself.
type OnOrAfterDate struct {
	Cutoff time.Time
}

func (s OnOrAfterDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ?", s.Cutoff.Format("2006-01-02"))
}

// BeforeDate keeps records strictly older than the cutoff. Used by cleanup,
// so a record exactly at the retention boundary survives the purge.
type BeforeDate struct {
	Cutoff time.Time
}

func (s BeforeDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date < ?", s.Cutoff.Format("2006-01-02"))
}

// RetentionCutoff computes the boundary date for an N-day lookback, truncated
// to a calendar date in UTC.
func RetentionCutoff(days int) time.Time {
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -days)
	return time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)
}
