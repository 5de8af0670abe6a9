package fetch_article_usecase

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

func TestFetchArticleUsecase_Execute(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	stored, err := domain.NewArticle(domain.Reddit("golang"), "42", "Go 2", "https://example.com", 1)
	require.NoError(t, err)

	tests := []struct {
		name      string
		rawID     string
		mockSetup func(*mocks.MockFindArticlePort)
		wantErrIs error
	}{
		{
			name:  "found",
			rawID: "rd-golang-42",
			mockSetup: func(m *mocks.MockFindArticlePort) {
				m.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)
			},
		},
		{
			name:  "missing",
			rawID: "hn-1",
			mockSetup: func(m *mocks.MockFindArticlePort) {
				m.EXPECT().FindByID(gomock.Any(), domain.ArticleIDFromPersisted("hn-1")).Return(nil, nil)
			},
			wantErrIs: domain.ErrNotFound,
		},
		{
			name:      "malformed id",
			rawID:     "hn",
			mockSetup: func(m *mocks.MockFindArticlePort) {},
			wantErrIs: domain.ErrValidation,
		},
		{
			name:  "repository failure",
			rawID: "gh-7",
			mockSetup: func(m *mocks.MockFindArticlePort) {
				m.EXPECT().FindByID(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewRepositoryError("find by id", errors.New("timeout")))
			},
			wantErrIs: domain.ErrRepository,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			port := mocks.NewMockFindArticlePort(ctrl)
			tt.mockSetup(port)

			got, err := NewFetchArticleUsecase(port).Execute(ctx, tt.rawID)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, got)
		})
	}
}
