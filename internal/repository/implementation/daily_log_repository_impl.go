package implementation

import (
	"context"
	"errors"
	"time"

	"adaptive-coach-be/internal/entity"
	"adaptive-coach-be/internal/mapper"
	"adaptive-coach-be/internal/model"
	"adaptive-coach-be/internal/repository/contract"
	"adaptive-coach-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DailyLogMapper
}

func NewDailyLogRepository(db *gorm.DB) contract.DailyLogRepository {
	return &DailyLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewDailyLogMapper(),
	}
}

func (r *DailyLogRepositoryImpl) Upsert(ctx context.Context, log *entity.DailyLog) error {
	m := r.mapper.ToModel(log)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"meals", "workouts", "sleep",
			"calories_consumed", "calories_burned", "protein_total",
			"updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *DailyLogRepositoryImpl) FindByUserAndDate(ctx context.Context, userId uuid.UUID, date time.Time) (*entity.DailyLog, error) {
	var m model.DailyLog
	query := r.db.WithContext(ctx)
	query = specification.ByUserID{UserID: userId}.Apply(query)
	query = specification.ByDate{Date: date}.Apply(query)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DailyLogRepositoryImpl) FindRecent(ctx context.Context, userId uuid.UUID, days int) ([]entity.DailyLog, error) {
	cutoff := specification.RetentionCutoff(days)

	var models []*model.DailyLog
	query := r.db.WithContext(ctx)
	query = specification.ByUserID{UserID: userId}.Apply(query)
	query = specification.OnOrAfterDate{Cutoff: cutoff}.Apply(query)
	query = specification.OrderBy{Field: "date", Desc: true}.Apply(query)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DailyLogRepositoryImpl) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := r.db.WithContext(ctx)
	query = specification.BeforeDate{Cutoff: cutoff}.Apply(query)
	result := query.Delete(&model.DailyLog{})
	return result.RowsAffected, result.Error
}
