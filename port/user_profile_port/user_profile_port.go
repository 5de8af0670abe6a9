package user_profile_port

//go:generate go run go.uber.org/mock/mockgen -source=user_profile_port.go -destination=../../mocks/mock_user_profile_port.go -package=mocks

import (
	"context"

	"techpulse/domain"
)

type UserProfileRepository interface {
	Save(ctx context.Context, profile *domain.UserProfile) error
	FindByID(ctx context.Context, id string) (*domain.UserProfile, error)
}
