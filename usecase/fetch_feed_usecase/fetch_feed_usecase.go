package fetch_feed_usecase

import (
	"context"
	"fmt"
	"sort"

	"techpulse/domain"
	"techpulse/port/article_port"
	"techpulse/utils/logger"
)

// RankedArticle pairs an article with its decayed score at ranking time.
type RankedArticle struct {
	Article   *domain.Article `json:"article"`
	RankScore float64         `json:"rank_score"`
}

type FetchFeedUsecase struct {
	fetchLatestArticlesPort article_port.FetchLatestArticlesPort
	defaultLimit            int
	maxLimit                int
}

func NewFetchFeedUsecase(port article_port.FetchLatestArticlesPort, defaultLimit, maxLimit int) *FetchFeedUsecase {
	return &FetchFeedUsecase{
		fetchLatestArticlesPort: port,
		defaultLimit:            defaultLimit,
		maxLimit:                maxLimit,
	}
}

// BoundLimit maps a requested limit onto [1, maxLimit], using the default
// for non-positive values.
func (u *FetchFeedUsecase) BoundLimit(limit int) int {
	if limit <= 0 {
		limit = u.defaultLimit
	}
	if limit > u.maxLimit {
		limit = u.maxLimit
	}
	return limit
}

// Execute returns the newest articles.
func (u *FetchFeedUsecase) Execute(ctx context.Context, limit int) ([]*domain.Article, error) {
	limit = u.BoundLimit(limit)
	articles, err := u.fetchLatestArticlesPort.FindLatest(ctx, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch feed", "error", err, "limit", limit)
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	return articles, nil
}

// ExecuteRanked scores the newest maxLimit articles at now and returns the
// best limit of them, highest score first.
func (u *FetchFeedUsecase) ExecuteRanked(ctx context.Context, limit int, now int64) ([]RankedArticle, error) {
	limit = u.BoundLimit(limit)
	articles, err := u.fetchLatestArticlesPort.FindLatest(ctx, u.maxLimit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch ranked feed", "error", err, "limit", limit)
		return nil, fmt.Errorf("fetch ranked feed: %w", err)
	}

	ranked := make([]RankedArticle, 0, len(articles))
	for _, a := range articles {
		ranked = append(ranked, RankedArticle{Article: a, RankScore: a.CalculateScore(now)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankScore > ranked[j].RankScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	logger.Logger.DebugContext(ctx, "ranked feed built", "window", len(articles), "returned", len(ranked))
	return ranked, nil
}
