package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adaptive-coach-be/internal/dto"
	"adaptive-coach-be/internal/entity"
	"adaptive-coach-be/internal/repository/specification"
	"adaptive-coach-be/internal/repository/unitofwork"
	"adaptive-coach-be/pkg/events"
	pktNats "adaptive-coach-be/pkg/nats"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type IActivityService interface {
	LogMeal(ctx context.Context, userId uuid.UUID, req *dto.LogMealRequest) (*dto.DailyLogResponse, error)
	LogWorkout(ctx context.Context, userId uuid.UUID, req *dto.LogWorkoutRequest) (*dto.DailyLogResponse, error)
	LogSleep(ctx context.Context, userId uuid.UUID, req *dto.LogSleepRequest) (*dto.DailyLogResponse, error)
	GetDay(ctx context.Context, userId uuid.UUID, date string) (*dto.DailyLogResponse, error)
	GetSummary(ctx context.Context, userId uuid.UUID, days int) (*dto.ActivitySummaryResponse, error)
	Cleanup(ctx context.Context, retentionDays int) (int64, error)
}

type activityService struct {
	uowFactory     unitofwork.RepositoryFactory
	retentionDays  int
	eventPublisher *pktNats.Publisher
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory, retentionDays int, eventPublisher *pktNats.Publisher) IActivityService {
	return &activityService{
		uowFactory:     uowFactory,
		retentionDays:  retentionDays,
		eventPublisher: eventPublisher,
	}
}

func (s *activityService) LogMeal(ctx context.Context, userId uuid.UUID, req *dto.LogMealRequest) (*dto.DailyLogResponse, error) {
	return s.applyToDay(ctx, userId, req.Date, "meal", func(day *entity.DailyLog) {
		day.ApplyMeal(entity.MealLog{
			Time:     req.Time,
			Foods:    req.Foods,
			Calories: req.Calories,
			Protein:  req.Protein,
			Carbs:    req.Carbs,
			Fat:      req.Fat,
		})
	})
}

func (s *activityService) LogWorkout(ctx context.Context, userId uuid.UUID, req *dto.LogWorkoutRequest) (*dto.DailyLogResponse, error) {
	return s.applyToDay(ctx, userId, req.Date, "workout", func(day *entity.DailyLog) {
		day.ApplyWorkout(entity.WorkoutLog{
			Time:        req.Time,
			Type:        req.Type,
			DurationMin: req.DurationMin,
			Intensity:   req.Intensity,
			Exercises:   req.Exercises,
		})
	})
}

func (s *activityService) LogSleep(ctx context.Context, userId uuid.UUID, req *dto.LogSleepRequest) (*dto.DailyLogResponse, error) {
	return s.applyToDay(ctx, userId, req.Date, "sleep", func(day *entity.DailyLog) {
		day.SetSleep(entity.SleepLog{
			BedTime:  req.BedTime,
			WakeTime: req.WakeTime,
			Quality:  req.Quality,
		})
	})
}

// applyToDay loads (or creates) the user's log for the date, applies the
// entry and upserts the whole record.
func (s *activityService) applyToDay(ctx context.Context, userId uuid.UUID, date, kind string, apply func(day *entity.DailyLog)) (*dto.DailyLogResponse, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	day, err := uow.DailyLogRepository().FindByUserAndDate(ctx, userId, parsed)
	if err != nil {
		return nil, err
	}
	if day == nil {
		day = &entity.DailyLog{
			Id:        uuid.New(),
			UserId:    userId,
			Date:      parsed,
			CreatedAt: time.Now(),
		}
	}

	apply(day)

	if err := uow.DailyLogRepository().Upsert(ctx, day); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "ACTIVITY_LOGGED",
			Data: map[string]interface{}{
				"user_id": userId,
				"date":    date,
				"kind":    kind,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish ACTIVITY_LOGGED event: %v\n", err)
		}
	}

	return dailyLogToResponse(day), nil
}

func (s *activityService) GetDay(ctx context.Context, userId uuid.UUID, date string) (*dto.DailyLogResponse, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	day, err := uow.DailyLogRepository().FindByUserAndDate(ctx, userId, parsed)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, errors.New("no activity logged for that date")
	}
	return dailyLogToResponse(day), nil
}

func (s *activityService) GetSummary(ctx context.Context, userId uuid.UUID, days int) (*dto.ActivitySummaryResponse, error) {
	if days <= 0 || days > s.retentionDays {
		days = s.retentionDays
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.DailyLogRepository().FindRecent(ctx, userId, days)
	if err != nil {
		return nil, err
	}

	summary := entity.Summarize(logs)
	return &dto.ActivitySummaryResponse{
		Days:            len(logs),
		AvgCalories:     summary.AvgCalories,
		AvgProtein:      summary.AvgProtein,
		WorkoutCount:    summary.WorkoutCount,
		AvgSleepQuality: summary.AvgSleepQuality,
	}, nil
}

// Cleanup purges logs past the retention window. Run periodically or via the
// cleanup command.
func (s *activityService) Cleanup(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = s.retentionDays
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DailyLogRepository().DeleteExpired(ctx, specification.RetentionCutoff(retentionDays))
}

func dailyLogToResponse(day *entity.DailyLog) *dto.DailyLogResponse {
	resp := &dto.DailyLogResponse{
		Date:             day.Date.Format(dateLayout),
		Meals:            make([]dto.MealResponse, 0, len(day.Meals)),
		Workouts:         make([]dto.WorkoutResponse, 0, len(day.Workouts)),
		CaloriesConsumed: day.CaloriesConsumed,
		CaloriesBurned:   day.CaloriesBurned,
		ProteinTotal:     day.ProteinTotal,
	}
	for _, meal := range day.Meals {
		resp.Meals = append(resp.Meals, dto.MealResponse{
			Time:     meal.Time,
			Foods:    meal.Foods,
			Calories: meal.Calories,
			Protein:  meal.Protein,
			Carbs:    meal.Carbs,
			Fat:      meal.Fat,
		})
	}
	for _, workout := range day.Workouts {
		resp.Workouts = append(resp.Workouts, dto.WorkoutResponse{
			Time:        workout.Time,
			Type:        workout.Type,
			DurationMin: workout.DurationMin,
			Intensity:   workout.Intensity,
			Exercises:   workout.Exercises,
		})
	}
	if day.Sleep != nil {
		resp.Sleep = &dto.SleepResponse{
			BedTime:  day.Sleep.BedTime,
			WakeTime: day.Sleep.WakeTime,
			Quality:  day.Sleep.Quality,
		}
	}
	return resp
}
