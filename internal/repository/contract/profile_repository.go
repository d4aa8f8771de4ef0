package contract

import (
	"context"

	"adaptive-coach-be/internal/entity"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error
	Update(ctx context.Context, profile *entity.UserProfile) error
	DeleteByUserId(ctx context.Context, userId uuid.UUID) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error)
}
