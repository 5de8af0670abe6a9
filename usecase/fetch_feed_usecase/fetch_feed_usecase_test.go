package fetch_feed_usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"techpulse/domain"
	"techpulse/mocks"
	"techpulse/utils/logger"
)

func TestFetchFeedUsecase_BoundLimit(t *testing.T) {
	u := NewFetchFeedUsecase(nil, 30, 100)

	assert.Equal(t, 30, u.BoundLimit(0))
	assert.Equal(t, 30, u.BoundLimit(-5))
	assert.Equal(t, 1, u.BoundLimit(1))
	assert.Equal(t, 100, u.BoundLimit(101))
	assert.Equal(t, 50, u.BoundLimit(50))
}

func TestFetchFeedUsecase_Execute(t *testing.T) {
	logger.InitLogger()
	ctrl := gomock.NewController(t)
	port := mocks.NewMockFetchLatestArticlesPort(ctrl)

	a, err := domain.NewArticle(domain.HackerNews(), "1", "Hello", "https://example.com", 100)
	require.NoError(t, err)

	port.EXPECT().FindLatest(gomock.Any(), 100).Return([]*domain.Article{a}, nil)
	port.EXPECT().FindLatest(gomock.Any(), 30).Return(nil, errors.New("boom"))

	u := NewFetchFeedUsecase(port, 30, 100)

	got, err := u.Execute(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Article{a}, got)

	_, err = u.Execute(context.Background(), 0)
	assert.Error(t, err)
}

func TestFetchFeedUsecase_ExecuteRanked(t *testing.T) {
	logger.InitLogger()
	const now = int64(1_700_000_000)

	fresh, _ := domain.NewArticle(domain.HackerNews(), "1", "fresh", "u", now)
	fresh.Score = 10
	stale, _ := domain.NewArticle(domain.HackerNews(), "2", "stale", "u", now-48*3600)
	stale.Score = 10
	hot, _ := domain.NewArticle(domain.Reddit("golang"), "3", "hot", "u", now)
	hot.Score = 10
	hot.IsHotOnSource = true

	ctrl := gomock.NewController(t)
	port := mocks.NewMockFetchLatestArticlesPort(ctrl)
	port.EXPECT().FindLatest(gomock.Any(), 100).Return([]*domain.Article{fresh, stale, hot}, nil)

	u := NewFetchFeedUsecase(port, 30, 100)
	ranked, err := u.ExecuteRanked(context.Background(), 2, now)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, hot.ID, ranked[0].Article.ID)
	assert.Equal(t, fresh.ID, ranked[1].Article.ID)
	assert.Greater(t, ranked[0].RankScore, ranked[1].RankScore)
}
