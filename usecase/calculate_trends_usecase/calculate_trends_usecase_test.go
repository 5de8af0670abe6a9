package calculate_trends_usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"techpulse/domain"
	"techpulse/mocks"
	apperrors "techpulse/utils/errors"
	"techpulse/utils/logger"
)

func newArticle(t *testing.T, nativeID, title string, ts int64) *domain.Article {
	t.Helper()
	a, err := domain.NewArticle(domain.HackerNews(), nativeID, title, "https://example.com/"+nativeID, ts)
	require.NoError(t, err)
	return a
}

func TestCalculateTrendsUsecase_Execute(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()
	const now = int64(1_700_000_000)

	rustArticle := newArticle(t, "1", "Rust is great", now-60)
	aiArticle := newArticle(t, "2", "AI is the future", now-120)
	bothArticle := newArticle(t, "3", "Rust and AI together", now-180)

	dbErr := apperrors.NewDatabaseContextError("database operation failed", "gateway", "ArticleGateway", "FindLatest",
		domain.NewRepositoryError("find latest", errors.New("connection refused")), nil)

	tests := []struct {
		name      string
		keywords  []string
		mockSetup func(*mocks.MockFetchLatestArticlesPort, *mocks.MockSaveTrendReportPort)
		check     func(*testing.T, *domain.TrendReport)
		wantErr   bool
	}{
		{
			name:     "counts keyword matches across the window",
			keywords: []string{"Rust", "AI"},
			mockSetup: func(fetch *mocks.MockFetchLatestArticlesPort, save *mocks.MockSaveTrendReportPort) {
				fetch.EXPECT().FindLatest(gomock.Any(), TrendWindowSize).
					Return([]*domain.Article{rustArticle, aiArticle, bothArticle}, nil)
				save.EXPECT().SaveReport(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, report *domain.TrendReport) {
				assert.Equal(t, now, report.Timestamp)
				assert.Empty(t, report.Metadata)
				require.Len(t, report.Trends, 2)

				rust, ok := report.FindTrend("Rust")
				require.True(t, ok)
				assert.Equal(t, uint32(2), rust.Volume)
				assert.Equal(t, 20.0, rust.Score)
				assert.Equal(t, 0.0, rust.Velocity)
				assert.Equal(t, []domain.ArticleID{rustArticle.ID, bothArticle.ID}, rust.RelatedArticles)

				ai, ok := report.FindTrend("AI")
				require.True(t, ok)
				assert.Equal(t, uint32(2), ai.Volume)
				assert.Equal(t, 20.0, ai.Score)
				assert.Equal(t, []domain.ArticleID{aiArticle.ID, bothArticle.ID}, ai.RelatedArticles)
			},
		},
		{
			name:     "matching is case-insensitive substring",
			keywords: []string{"ai"},
			mockSetup: func(fetch *mocks.MockFetchLatestArticlesPort, save *mocks.MockSaveTrendReportPort) {
				fetch.EXPECT().FindLatest(gomock.Any(), TrendWindowSize).
					Return([]*domain.Article{newArticle(t, "9", "Check your MAIL", now)}, nil)
				save.EXPECT().SaveReport(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, report *domain.TrendReport) {
				trend, ok := report.FindTrend("ai")
				require.True(t, ok)
				assert.Equal(t, uint32(1), trend.Volume)
			},
		},
		{
			name:     "keywords without matches are omitted",
			keywords: []string{"Rust", "Haskell"},
			mockSetup: func(fetch *mocks.MockFetchLatestArticlesPort, save *mocks.MockSaveTrendReportPort) {
				fetch.EXPECT().FindLatest(gomock.Any(), TrendWindowSize).
					Return([]*domain.Article{rustArticle}, nil)
				save.EXPECT().SaveReport(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, report *domain.TrendReport) {
				require.Len(t, report.Trends, 1)
				_, ok := report.FindTrend("Haskell")
				assert.False(t, ok)
			},
		},
		{
			name:     "empty corpus saves an empty report",
			keywords: []string{"Rust"},
			mockSetup: func(fetch *mocks.MockFetchLatestArticlesPort, save *mocks.MockSaveTrendReportPort) {
				fetch.EXPECT().FindLatest(gomock.Any(), TrendWindowSize).Return([]*domain.Article{}, nil)
				save.EXPECT().SaveReport(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, report *domain.TrendReport) error {
						assert.Empty(t, report.Trends)
						return nil
					})
			},
			check: func(t *testing.T, report *domain.TrendReport) {
				assert.Empty(t, report.Trends)
				assert.Equal(t, now, report.Timestamp)
			},
		},
		{
			name: "default keywords when none supplied",
			mockSetup: func(fetch *mocks.MockFetchLatestArticlesPort, save *mocks.MockSaveTrendReportPort) {
				fetch.EXPECT().FindLatest(gomock.Any(), TrendWindowSize).
					Return([]*domain.Article{newArticle(t, "4", "Linux kernel 7.0 released", now)}, nil)
				save.EXPECT().SaveReport(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, report *domain.TrendReport) {
				require.Len(t, report.Trends, 1)
				assert.Equal(t, "Linux", report.Trends[0].Keyword)
			},
		},
		{
			name:     "read failure propagates",
			keywords: []string{"Rust"},
			mockSetup: func(fetch *mocks.MockFetchLatestArticlesPort, save *mocks.MockSaveTrendReportPort) {
				fetch.EXPECT().FindLatest(gomock.Any(), TrendWindowSize).Return(nil, dbErr)
			},
			wantErr: true,
		},
		{
			name:     "save failure fails the operation",
			keywords: []string{"Rust"},
			mockSetup: func(fetch *mocks.MockFetchLatestArticlesPort, save *mocks.MockSaveTrendReportPort) {
				fetch.EXPECT().FindLatest(gomock.Any(), TrendWindowSize).
					Return([]*domain.Article{rustArticle}, nil)
				save.EXPECT().SaveReport(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetch := mocks.NewMockFetchLatestArticlesPort(ctrl)
			save := mocks.NewMockSaveTrendReportPort(ctrl)
			tt.mockSetup(fetch, save)

			usecase := NewCalculateTrendsUsecase(fetch, save)
			report, err := usecase.Execute(ctx, tt.keywords, now)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, report)
				assert.ErrorIs(t, err, domain.ErrRepository)
				return
			}
			require.NoError(t, err)
			tt.check(t, report)
		})
	}
}
