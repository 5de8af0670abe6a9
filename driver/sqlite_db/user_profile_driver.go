package sqlite_db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"techpulse/domain"
)

func (s *SQLiteDB) SaveUserProfile(ctx context.Context, profile *domain.UserProfile) error {
	interests, err := json.Marshal(profile.Interests)
	if err != nil {
		return fmt.Errorf("marshal interests: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO user_profiles (id, display_name, interests, created_at) VALUES (?, ?, ?, ?)`,
		profile.ID, profile.DisplayName, string(interests), profile.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

func (s *SQLiteDB) FindUserProfileByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var (
		profile              domain.UserProfile
		interests, createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, display_name, interests, created_at FROM user_profiles WHERE id = ?`, id,
	).Scan(&profile.ID, &profile.DisplayName, &interests, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(interests), &profile.Interests); err != nil {
		return nil, fmt.Errorf("decode interests: %w", err)
	}
	if profile.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("decode created_at: %w", err)
	}
	return &profile, nil
}
