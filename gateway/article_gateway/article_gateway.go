package article_gateway

import (
	"context"
	"maps"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"techpulse/domain"
	"techpulse/port/article_port"
	"techpulse/utils/errors"
	"techpulse/utils/metrics"
)

var _ article_port.ArticleRepository = (*ArticleGateway)(nil)

const cacheName = "article"

type ArticleStore interface {
	SaveArticle(ctx context.Context, article *domain.Article) error
	FindArticleByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error)
	FindLatestArticles(ctx context.Context, limit int) ([]*domain.Article, error)
}

// ArticleGateway adapts a storage driver to the article ports. Lookups by id
// go through an expiring LRU that Save keeps current. Writes made through
// another gateway on the same store become visible once the entry expires,
// so stores shared between processes should run without the cache.
type ArticleGateway struct {
	store ArticleStore
	cache *expirable.LRU[string, *domain.Article]
}

// NewArticleGateway disables the cache when cacheSize is not positive.
// A non-positive ttl keeps entries until they are evicted.
func NewArticleGateway(store ArticleStore, cacheSize int, ttl time.Duration) (*ArticleGateway, error) {
	g := &ArticleGateway{store: store}
	if cacheSize > 0 {
		g.cache = expirable.NewLRU[string, *domain.Article](cacheSize, nil, ttl)
	}
	return g, nil
}

func (g *ArticleGateway) Save(ctx context.Context, article *domain.Article) error {
	if article == nil {
		return errors.NewValidationContextError("article is required", "gateway", "ArticleGateway", "Save", domain.ErrValidation, nil)
	}
	if err := g.store.SaveArticle(ctx, article); err != nil {
		if g.cache != nil {
			g.cache.Remove(article.ID.String())
		}
		return errors.NewDatabaseContextError("failed to save article", "gateway", "ArticleGateway", "Save",
			domain.NewRepositoryError("save article", err),
			map[string]any{"article_id": article.ID.String()})
	}
	if g.cache != nil {
		g.cache.Add(article.ID.String(), clone(article))
	}
	return nil
}

func (g *ArticleGateway) FindByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	if g.cache != nil {
		if cached, ok := g.cache.Get(id.String()); ok {
			metrics.RecordCache(cacheName, true)
			return clone(cached), nil
		}
		metrics.RecordCache(cacheName, false)
	}

	article, err := g.store.FindArticleByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to find article", "gateway", "ArticleGateway", "FindByID",
			domain.NewRepositoryError("find article by id", err),
			map[string]any{"article_id": id.String()})
	}
	if article != nil && g.cache != nil {
		g.cache.Add(id.String(), clone(article))
	}
	return article, nil
}

func (g *ArticleGateway) FindLatest(ctx context.Context, limit int) ([]*domain.Article, error) {
	if limit <= 0 {
		return []*domain.Article{}, nil
	}
	articles, err := g.store.FindLatestArticles(ctx, limit)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to list latest articles", "gateway", "ArticleGateway", "FindLatest",
			domain.NewRepositoryError("find latest articles", err),
			map[string]any{"limit": limit})
	}
	return articles, nil
}

// clone keeps cached entries independent of caller mutations.
func clone(a *domain.Article) *domain.Article {
	c := *a
	c.Tags = maps.Clone(a.Tags)
	return &c
}
