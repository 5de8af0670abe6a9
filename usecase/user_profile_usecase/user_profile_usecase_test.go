package user_profile_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"techpulse/domain"
	"techpulse/mocks"
	"techpulse/utils/logger"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newUsecase(ctrl *gomock.Controller) (*UserProfileUsecase, *mocks.MockUserProfileRepository, *mocks.MockFetchLatestArticlesPort) {
	repo := mocks.NewMockUserProfileRepository(ctrl)
	articles := mocks.NewMockFetchLatestArticlesPort(ctrl)
	u := NewUserProfileUsecase(repo, articles)
	u.now = func() time.Time { return fixedNow }
	return u, repo, articles
}

func TestUserProfileUsecase_Register(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	t.Run("normalizes interests and assigns an id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, repo, _ := newUsecase(ctrl)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		profile, err := u.Register(ctx, "  Ada ", []string{"Golang", "go", "K8s", " "})
		require.NoError(t, err)

		_, err = uuid.Parse(profile.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Ada", profile.DisplayName)
		assert.Equal(t, []string{"go", "kubernetes"}, profile.Interests)
		assert.Equal(t, fixedNow, profile.CreatedAt)
	})

	t.Run("save failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, repo, _ := newUsecase(ctrl)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(domain.NewRepositoryError("save user", errors.New("boom")))

		_, err := u.Register(ctx, "Ada", nil)
		assert.ErrorIs(t, err, domain.ErrRepository)
	})
}

func TestUserProfileUsecase_Fetch(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	u, repo, _ := newUsecase(ctrl)

	stored := &domain.UserProfile{ID: "u1", DisplayName: "Ada"}
	repo.EXPECT().FindByID(gomock.Any(), "u1").Return(stored, nil)
	repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

	got, err := u.Fetch(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = u.Fetch(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserProfileUsecase_PersonalFeed(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()
	now := fixedNow.Unix()

	rust, _ := domain.NewArticle(domain.HackerNews(), "1", "Rust 2.0 announced", "u", now-3600)
	tagged, _ := domain.NewArticle(domain.GitHub(), "2", "Some repo", "u", now)
	tagged.Tags.Add("kubernetes")
	rust.Score, tagged.Score = 10, 10
	other, _ := domain.NewArticle(domain.HackerNews(), "3", "Cooking with cast iron", "u", now)

	ctrl := gomock.NewController(t)
	u, repo, articles := newUsecase(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), "u1").
		Return(&domain.UserProfile{ID: "u1", Interests: []string{"rust", "kubernetes"}}, nil)
	articles.EXPECT().FindLatest(gomock.Any(), personalWindow).
		Return([]*domain.Article{rust, tagged, other}, nil)

	got, err := u.PersonalFeed(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, tagged.ID, got[0].ID)
	assert.Equal(t, rust.ID, got[1].ID)
}
