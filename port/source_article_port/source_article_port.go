package source_article_port

//go:generate go run go.uber.org/mock/mockgen -source=source_article_port.go -destination=../../mocks/mock_source_article_port.go -package=mocks

import (
	"context"

	"techpulse/domain"
)

// SourceArticlePort fetches the current top articles from an upstream source.
// Items that cannot be fetched or converted are skipped; an error means the
// source could not be read at all.
type SourceArticlePort interface {
	Name() string
	FetchTopArticles(ctx context.Context, limit int) ([]*domain.Article, error)
}
