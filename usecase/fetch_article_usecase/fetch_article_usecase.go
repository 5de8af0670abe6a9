package fetch_article_usecase

import (
	"context"
	"fmt"

	"techpulse/domain"
	"techpulse/port/article_port"
	"techpulse/utils/logger"
)

type FetchArticleUsecase struct {
	findArticlePort article_port.FindArticlePort
}

func NewFetchArticleUsecase(port article_port.FindArticlePort) *FetchArticleUsecase {
	return &FetchArticleUsecase{findArticlePort: port}
}

// Execute looks up an article by its external id. Unknown ids yield
// domain.ErrNotFound.
func (u *FetchArticleUsecase) Execute(ctx context.Context, rawID string) (*domain.Article, error) {
	id, err := domain.ParseArticleID(rawID)
	if err != nil {
		return nil, err
	}

	article, err := u.findArticlePort.FindByID(ctx, id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch article", "article_id", rawID, "error", err)
		return nil, fmt.Errorf("fetch article %s: %w", rawID, err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %s: %w", rawID, domain.ErrNotFound)
	}
	return article, nil
}
