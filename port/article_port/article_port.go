package article_port

//go:generate go run go.uber.org/mock/mockgen -source=article_port.go -destination=../../mocks/mock_article_port.go -package=mocks

import (
	"context"

	"techpulse/domain"
)

// SaveArticlePort upserts an article by id, replacing every stored field.
type SaveArticlePort interface {
	Save(ctx context.Context, article *domain.Article) error
}

// FindArticlePort returns nil, nil when the id is unknown.
type FindArticlePort interface {
	FindByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error)
}

// FetchLatestArticlesPort returns at most limit articles, newest timestamp first.
type FetchLatestArticlesPort interface {
	FindLatest(ctx context.Context, limit int) ([]*domain.Article, error)
}

type ArticleRepository interface {
	SaveArticlePort
	FindArticlePort
	FetchLatestArticlesPort
}
