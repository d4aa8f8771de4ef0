package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adaptive-coach-be/internal/dto"
	"adaptive-coach-be/internal/entity"
	"adaptive-coach-be/internal/repository/unitofwork"
	"adaptive-coach-be/pkg/calculator"
	"adaptive-coach-be/pkg/events"
	pktNats "adaptive-coach-be/pkg/nats"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type IProfileService interface {
	Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error)
	Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	Delete(ctx context.Context, userId uuid.UUID) error
	AddInjury(ctx context.Context, userId uuid.UUID, injury string) (*dto.ProfileResponse, error)
	RemoveInjury(ctx context.Context, userId uuid.UUID, injury string) (*dto.ProfileResponse, error)
	AddIntolerance(ctx context.Context, userId uuid.UUID, intolerance string) (*dto.ProfileResponse, error)
	MacroTargets(ctx context.Context, userId uuid.UUID, activityLevel string) (*dto.MacroTargetsResponse, error)
}

type profileService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IProfileService {
	return &profileService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Upsert creates the profile on first submission, then merges: only fields
// present in the request overwrite stored values.
func (s *profileService) Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	created := profile == nil
	if created {
		profile = &entity.UserProfile{
			Id:        uuid.New(),
			UserId:    userId,
			CreatedAt: time.Now(),
		}
	}

	mergeProfile(profile, req)

	if created {
		err = uow.ProfileRepository().Create(ctx, profile)
	} else {
		now := time.Now()
		profile.UpdatedAt = &now
		err = uow.ProfileRepository().Update(ctx, profile)
	}
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "PROFILE_UPDATED",
			Data: map[string]interface{}{
				"user_id": userId,
				"created": created,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish PROFILE_UPDATED event: %v\n", err)
		}
	}

	return profileToResponse(profile), nil
}

func (s *profileService) Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profileToResponse(profile), nil
}

func (s *profileService) Delete(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProfileRepository().DeleteByUserId(ctx, userId)
}

// AddInjury appends an injury to the safety constraints the trainer responder
// reads. Duplicate entries (case-insensitive) are a no-op.
func (s *profileService) AddInjury(ctx context.Context, userId uuid.UUID, injury string) (*dto.ProfileResponse, error) {
	return s.mutateConstraints(ctx, userId, func(profile *entity.UserProfile) bool {
		return profile.AddInjury(injury)
	})
}

func (s *profileService) RemoveInjury(ctx context.Context, userId uuid.UUID, injury string) (*dto.ProfileResponse, error) {
	return s.mutateConstraints(ctx, userId, func(profile *entity.UserProfile) bool {
		return profile.RemoveInjury(injury)
	})
}

func (s *profileService) AddIntolerance(ctx context.Context, userId uuid.UUID, intolerance string) (*dto.ProfileResponse, error) {
	return s.mutateConstraints(ctx, userId, func(profile *entity.UserProfile) bool {
		return profile.AddIntolerance(intolerance)
	})
}

func (s *profileService) mutateConstraints(ctx context.Context, userId uuid.UUID, mutate func(*entity.UserProfile) bool) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if !mutate(profile) {
		return profileToResponse(profile), nil
	}

	now := time.Now()
	profile.UpdatedAt = &now
	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "PROFILE_UPDATED",
			Data: map[string]interface{}{
				"user_id": userId,
				"created": false,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish PROFILE_UPDATED event: %v\n", err)
		}
	}

	return profileToResponse(profile), nil
}

// MacroTargets derives daily calorie and macro goals from the stored profile.
// activityLevel is caller-supplied because it is not part of the profile.
func (s *profileService) MacroTargets(ctx context.Context, userId uuid.UUID, activityLevel string) (*dto.MacroTargetsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	if profile.WeightKg <= 0 || profile.HeightCm <= 0 || profile.Age <= 0 {
		return nil, errors.New("profile is missing weight, height or age")
	}

	activity := calculator.ActivityLevel(activityLevel)
	if activityLevel == "" {
		activity = calculator.ActivityModerate
	}

	goal := calculator.GoalMaintain
	switch profile.PrimaryGoal {
	case entity.GoalLoseFat:
		goal = calculator.GoalLoseFat
	case entity.GoalBuildMuscle:
		goal = calculator.GoalBuildMuscle
	}

	isMale := profile.Gender != "female"

	bmr, err := calculator.BMR(profile.WeightKg, profile.HeightCm, profile.Age, isMale)
	if err != nil {
		return nil, err
	}
	tdee, err := calculator.TDEE(profile.WeightKg, profile.HeightCm, profile.Age, isMale, activity)
	if err != nil {
		return nil, err
	}
	macros, err := calculator.Macros(profile.WeightKg, profile.HeightCm, profile.Age, isMale, activity, goal)
	if err != nil {
		return nil, err
	}

	proteinPct, carbsPct, fatPct := calculator.MacroPercentages(macros)

	return &dto.MacroTargetsResponse{
		Bmr:        bmr,
		Tdee:       tdee,
		Calories:   macros.Calories,
		ProteinG:   macros.ProteinG,
		CarbsG:     macros.CarbsG,
		FatG:       macros.FatG,
		FiberG:     macros.FiberG,
		WaterMl:    macros.WaterMl,
		ProteinPct: proteinPct,
		CarbsPct:   carbsPct,
		FatPct:     fatPct,
	}, nil
}

func mergeProfile(profile *entity.UserProfile, req *dto.UpsertProfileRequest) {
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.Injuries != nil {
		profile.Injuries = req.Injuries
	}
	if req.Intolerances != nil {
		profile.Intolerances = req.Intolerances
	}
	if req.Allergies != nil {
		profile.Allergies = req.Allergies
	}
	if req.HealthConditions != nil {
		profile.HealthConditions = req.HealthConditions
	}
	if req.Medications != nil {
		profile.Medications = req.Medications
	}
	if req.DietaryPref != nil {
		profile.DietaryPref = entity.DietaryPref(*req.DietaryPref)
	}
	if req.FitnessLevel != nil {
		profile.FitnessLevel = entity.FitnessLevel(*req.FitnessLevel)
	}
	if req.PrimaryGoal != nil {
		profile.PrimaryGoal = entity.PrimaryGoal(*req.PrimaryGoal)
	}
	if req.TargetWeightKg != nil {
		profile.TargetWeightKg = req.TargetWeightKg
	}
}

func profileToResponse(profile *entity.UserProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id:               profile.Id,
		UserId:           profile.UserId,
		Age:              profile.Age,
		HeightCm:         profile.HeightCm,
		WeightKg:         profile.WeightKg,
		Gender:           profile.Gender,
		Injuries:         profile.Injuries,
		Intolerances:     profile.Intolerances,
		Allergies:        profile.Allergies,
		HealthConditions: profile.HealthConditions,
		Medications:      profile.Medications,
		DietaryPref:      string(profile.DietaryPref),
		FitnessLevel:     string(profile.FitnessLevel),
		PrimaryGoal:      string(profile.PrimaryGoal),
		TargetWeightKg:   profile.TargetWeightKg,
		CreatedAt:        profile.CreatedAt,
		UpdatedAt:        profile.UpdatedAt,
	}
}
