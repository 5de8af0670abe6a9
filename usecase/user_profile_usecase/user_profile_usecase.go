package user_profile_usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"techpulse/domain"
	"techpulse/port/article_port"
	"techpulse/port/user_profile_port"
	"techpulse/utils/keyword"
	"techpulse/utils/logger"
)

// personalWindow is how many recent articles are scanned for a personal feed.
const personalWindow = 200

type UserProfileUsecase struct {
	repo     user_profile_port.UserProfileRepository
	articles article_port.FetchLatestArticlesPort
	now      func() time.Time
}

func NewUserProfileUsecase(repo user_profile_port.UserProfileRepository, articles article_port.FetchLatestArticlesPort) *UserProfileUsecase {
	return &UserProfileUsecase{repo: repo, articles: articles, now: time.Now}
}

// Register stores a new profile with a generated id and canonical interests.
func (u *UserProfileUsecase) Register(ctx context.Context, displayName string, interests []string) (*domain.UserProfile, error) {
	profile := &domain.UserProfile{
		ID:          uuid.NewString(),
		DisplayName: strings.TrimSpace(displayName),
		Interests:   normalizeInterests(interests),
		CreatedAt:   u.now().UTC(),
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := u.repo.Save(ctx, profile); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to save user profile", "user_id", profile.ID, "error", err)
		return nil, fmt.Errorf("save user profile: %w", err)
	}

	logger.Logger.InfoContext(ctx, "user profile registered", "user_id", profile.ID, "interests", len(profile.Interests))
	return profile, nil
}

// Fetch returns the profile or domain.ErrNotFound.
func (u *UserProfileUsecase) Fetch(ctx context.Context, id string) (*domain.UserProfile, error) {
	profile, err := u.repo.FindByID(ctx, id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch user profile", "user_id", id, "error", err)
		return nil, fmt.Errorf("fetch user profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("user profile %s: %w", id, domain.ErrNotFound)
	}
	return profile, nil
}

// PersonalFeed returns recent articles whose tags or title mention one of the
// user's interests, best decayed score first.
func (u *UserProfileUsecase) PersonalFeed(ctx context.Context, id string, limit int) ([]*domain.Article, error) {
	profile, err := u.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(profile.Interests) == 0 || limit <= 0 {
		return []*domain.Article{}, nil
	}

	window, err := u.articles.FindLatest(ctx, personalWindow)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to read articles for personal feed", "user_id", id, "error", err)
		return nil, fmt.Errorf("personal feed: %w", err)
	}

	now := u.now().Unix()
	matched := make([]*domain.Article, 0, len(window))
	for _, a := range window {
		if matchesInterests(a, profile.Interests) {
			matched = append(matched, a)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CalculateScore(now) > matched[j].CalculateScore(now)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func normalizeInterests(interests []string) []string {
	seen := make(map[string]struct{}, len(interests))
	out := make([]string, 0, len(interests))
	for _, i := range interests {
		n := keyword.Normalize(i)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func matchesInterests(a *domain.Article, interests []string) bool {
	titleKeywords := keyword.Extract(a.Title)
	for _, interest := range interests {
		if a.Tags.Contains(interest) {
			return true
		}
		for _, k := range titleKeywords {
			if k == interest {
				return true
			}
		}
	}
	return false
}
