package techpulse_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"techpulse/domain"
)

const upsertUserProfileQuery = `
	INSERT INTO user_profiles (id, display_name, interests, created_at)
	VALUES ($1, $2, $3::jsonb, $4)
	ON CONFLICT (id) DO UPDATE
	SET display_name = EXCLUDED.display_name,
	    interests = EXCLUDED.interests
`

const findUserProfileQuery = `SELECT id, display_name, interests::text, created_at FROM user_profiles WHERE id = $1`

func (r *TechPulseDB) SaveUserProfile(ctx context.Context, profile *domain.UserProfile) error {
	if r == nil || r.pool == nil {
		return errNoConnection
	}
	interests, err := json.Marshal(profile.Interests)
	if err != nil {
		return fmt.Errorf("marshal interests: %w", err)
	}
	if _, err := r.pool.Exec(ctx, upsertUserProfileQuery, profile.ID, profile.DisplayName, string(interests), profile.CreatedAt); err != nil {
		return fmt.Errorf("failed to upsert user profile: %w", err)
	}
	return nil
}

func (r *TechPulseDB) FindUserProfileByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	if r == nil || r.pool == nil {
		return nil, errNoConnection
	}

	var (
		profile   domain.UserProfile
		interests string
	)
	err := r.pool.QueryRow(ctx, findUserProfileQuery, id).
		Scan(&profile.ID, &profile.DisplayName, &interests, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	if err := json.Unmarshal([]byte(interests), &profile.Interests); err != nil {
		return nil, fmt.Errorf("decode interests: %w", err)
	}
	return &profile, nil
}
