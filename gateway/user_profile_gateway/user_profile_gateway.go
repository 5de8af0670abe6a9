package user_profile_gateway

import (
	"context"

	"techpulse/domain"
	"techpulse/port/user_profile_port"
	"techpulse/utils/errors"
)

var _ user_profile_port.UserProfileRepository = (*UserProfileGateway)(nil)

type UserProfileStore interface {
	SaveUserProfile(ctx context.Context, profile *domain.UserProfile) error
	FindUserProfileByID(ctx context.Context, id string) (*domain.UserProfile, error)
}

type UserProfileGateway struct {
	store UserProfileStore
}

func NewUserProfileGateway(store UserProfileStore) *UserProfileGateway {
	return &UserProfileGateway{store: store}
}

func (g *UserProfileGateway) Save(ctx context.Context, profile *domain.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return errors.NewValidationContextError(err.Error(), "gateway", "UserProfileGateway", "Save", err, nil)
	}
	if err := g.store.SaveUserProfile(ctx, profile); err != nil {
		return errors.NewDatabaseContextError("failed to save user profile", "gateway", "UserProfileGateway", "Save",
			domain.NewRepositoryError("save user profile", err),
			map[string]any{"user_id": profile.ID})
	}
	return nil
}

func (g *UserProfileGateway) FindByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	profile, err := g.store.FindUserProfileByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to find user profile", "gateway", "UserProfileGateway", "FindByID",
			domain.NewRepositoryError("find user profile", err),
			map[string]any{"user_id": id})
	}
	return profile, nil
}
