package hackernews_gateway

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"techpulse/domain"
	"techpulse/port/source_article_port"
	"techpulse/utils/errors"
	"techpulse/utils/html_parser"
	"techpulse/utils/keyword"
	"techpulse/utils/logger"
	"techpulse/utils/metrics"
	"techpulse/utils/rate_limiter"
)

var _ source_article_port.SourceArticlePort = (*HackerNewsGateway)(nil)

const (
	sourceName     = "hackernews"
	pointsPerScore = 5
	hotPoints      = 300
	discussionURL  = "https://news.ycombinator.com/item?id="
)

type hnItem struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	By          string `json:"by"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Time        int64  `json:"time"`
	Score       int    `json:"score"`
	Descendants uint32 `json:"descendants"`
	Deleted     bool   `json:"deleted"`
	Dead        bool   `json:"dead"`
}

type HackerNewsGateway struct {
	baseURL     string
	userAgent   string
	concurrency int
	httpClient  *http.Client
	rateLimiter *rate_limiter.HostRateLimiter
}

func NewHackerNewsGateway(baseURL, userAgent string, concurrency int, httpClient *http.Client, rateLimiter *rate_limiter.HostRateLimiter) *HackerNewsGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &HackerNewsGateway{
		baseURL:     baseURL,
		userAgent:   userAgent,
		concurrency: concurrency,
		httpClient:  httpClient,
		rateLimiter: rateLimiter,
	}
}

func (g *HackerNewsGateway) Name() string { return sourceName }

// FetchTopArticles reads the top story index, then fetches up to limit items
// in parallel. Items that fail to load or convert are skipped.
func (g *HackerNewsGateway) FetchTopArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	ctx = logger.WithSource(ctx, sourceName)
	start := time.Now()
	if limit <= 0 {
		return []*domain.Article{}, nil
	}

	var ids []int64
	if err := g.getJSON(ctx, g.baseURL+"/topstories.json", &ids); err != nil {
		metrics.RecordSourceFetch(sourceName, "error", time.Since(start).Seconds())
		errCtx := map[string]any{"base_url": g.baseURL}
		var httpErr *domain.ExternalHTTPError
		if stderrors.As(err, &httpErr) && httpErr.StatusCode == http.StatusTooManyRequests {
			return nil, errors.NewRateLimitContextError(
				"hacker news rate limit exceeded", "gateway", "HackerNewsGateway", "FetchTopArticles", err, errCtx)
		}
		return nil, errors.NewExternalAPIContextError(
			"failed to fetch hacker news top stories", "gateway", "HackerNewsGateway", "FetchTopArticles", err, errCtx)
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}

	slots := make([]*domain.Article, len(ids))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)
	for i, id := range ids {
		eg.Go(func() error {
			slots[i] = g.fetchArticle(egCtx, id)
			return nil
		})
	}
	_ = eg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	articles := make([]*domain.Article, 0, len(slots))
	for _, a := range slots {
		if a != nil {
			articles = append(articles, a)
		}
	}

	metrics.RecordSourceFetch(sourceName, "success", time.Since(start).Seconds())
	logger.FromContext(ctx).Info("fetched hacker news stories", "requested", len(ids), "converted", len(articles))
	return articles, nil
}

func (g *HackerNewsGateway) fetchArticle(ctx context.Context, id int64) *domain.Article {
	var item *hnItem
	if err := g.getJSON(ctx, fmt.Sprintf("%s/item/%d.json", g.baseURL, id), &item); err != nil {
		metrics.RecordSkippedItem(sourceName, "fetch_failed")
		logger.FromContext(ctx).Warn("failed to fetch hacker news item", "item_id", id, "error", err)
		return nil
	}
	if item == nil || item.Deleted || item.Dead || item.Title == "" {
		metrics.RecordSkippedItem(sourceName, "incomplete")
		return nil
	}

	article, err := toArticle(item)
	if err != nil {
		metrics.RecordSkippedItem(sourceName, "invalid")
		logger.FromContext(ctx).Warn("skipping hacker news item", "item_id", id, "error", err)
		return nil
	}
	return article
}

func toArticle(item *hnItem) (*domain.Article, error) {
	nativeID := strconv.FormatInt(item.ID, 10)
	url := item.URL
	if url == "" {
		url = discussionURL + nativeID
	}
	title := html_parser.CleanTitle(item.Title)

	article, err := domain.NewArticle(domain.HackerNews(), nativeID, title, url, item.Time)
	if err != nil {
		return nil, err
	}
	if item.By != "" {
		article.Author = item.By
	}
	article.CommentCount = item.Descendants
	article.Score = domain.NormalizeScore(item.Score, pointsPerScore*int(domain.MaxBaseScore))
	article.IsHotOnSource = item.Score >= hotPoints
	article.Tags = domain.NewTagSet(keyword.Extract(title)...)
	return article, nil
}

func (g *HackerNewsGateway) getJSON(ctx context.Context, url string, out any) error {
	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, url); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.ExternalHTTPError{StatusCode: resp.StatusCode, URL: url}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
