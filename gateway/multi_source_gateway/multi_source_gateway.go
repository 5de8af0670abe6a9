package multi_source_gateway

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"techpulse/domain"
	"techpulse/port/source_article_port"
	"techpulse/utils/errors"
	"techpulse/utils/logger"
)

var _ source_article_port.SourceArticlePort = (*MultiSourceGateway)(nil)

// MultiSourceGateway queries every configured source concurrently and
// concatenates their articles in source order.
type MultiSourceGateway struct {
	sources []source_article_port.SourceArticlePort
	timeout time.Duration
}

// NewMultiSourceGateway bounds each source call by timeout when it is positive.
func NewMultiSourceGateway(timeout time.Duration, sources ...source_article_port.SourceArticlePort) *MultiSourceGateway {
	return &MultiSourceGateway{sources: sources, timeout: timeout}
}

func (g *MultiSourceGateway) Name() string {
	names := make([]string, len(g.sources))
	for i, s := range g.sources {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

// FetchTopArticles asks every source for an even share of limit (rounded up)
// and returns at most limit articles. A failing source is logged and
// skipped; the call fails only when all of them fail.
func (g *MultiSourceGateway) FetchTopArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	if len(g.sources) == 0 || limit <= 0 {
		return []*domain.Article{}, nil
	}
	share := (limit + len(g.sources) - 1) / len(g.sources)

	results := make([][]*domain.Article, len(g.sources))
	failures := make([]error, len(g.sources))

	var eg errgroup.Group
	for i, src := range g.sources {
		eg.Go(func() error {
			srcCtx := ctx
			if g.timeout > 0 {
				var cancel context.CancelFunc
				srcCtx, cancel = context.WithTimeout(ctx, g.timeout)
				defer cancel()
			}
			results[i], failures[i] = src.FetchTopArticles(srcCtx, share)
			return nil
		})
	}
	_ = eg.Wait()

	var (
		articles []*domain.Article
		errs     []error
	)
	for i, src := range g.sources {
		if failures[i] != nil {
			logger.FromContext(ctx).Warn("source fetch failed, skipping", "source", src.Name(), "error", failures[i])
			errs = append(errs, failures[i])
			continue
		}
		articles = append(articles, results[i]...)
	}

	if len(errs) == len(g.sources) {
		return nil, errors.NewExternalAPIContextError("every source failed",
			"gateway", "MultiSourceGateway", "FetchTopArticles", stderrors.Join(errs...),
			map[string]any{"sources": g.Name()})
	}
	if len(articles) > limit {
		articles = articles[:limit]
	}
	if articles == nil {
		articles = []*domain.Article{}
	}
	return articles, nil
}
