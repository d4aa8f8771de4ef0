package contract

import (
	"context"
	"time"

	"adaptive-coach-be/internal/entity"

	"github.com/google/uuid"
)

type DailyLogRepository interface {
	Upsert(ctx context.Context, log *entity.DailyLog) error
	FindByUserAndDate(ctx context.Context, userId uuid.UUID, date time.Time) (*entity.DailyLog, error)
	// FindRecent returns logs within the lookback window, most recent first.
	// The window boundary is inclusive.
	FindRecent(ctx context.Context, userId uuid.UUID, days int) ([]entity.DailyLog, error)
	// DeleteExpired removes logs strictly older than the cutoff and reports
	// how many were purged.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
