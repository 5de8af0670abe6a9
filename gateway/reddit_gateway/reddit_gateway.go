package reddit_gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
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

var _ source_article_port.SourceArticlePort = (*RedditGateway)(nil)

const (
	sourceName         = "reddit"
	upvotesForFullMark = 500
)

type listing struct {
	Data struct {
		Children []struct {
			Data post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type post struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments uint32  `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Stickied    bool    `json:"stickied"`
}

type RedditGateway struct {
	client      *resty.Client
	rateLimiter *rate_limiter.HostRateLimiter
	baseURL     string
	subreddits  []string
}

func NewRedditGateway(baseURL, userAgent string, subreddits []string, timeout time.Duration, rateLimiter *rate_limiter.HostRateLimiter) *RedditGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &RedditGateway{
		client:      client,
		rateLimiter: rateLimiter,
		baseURL:     baseURL,
		subreddits:  subreddits,
	}
}

func (g *RedditGateway) Name() string { return sourceName }

// FetchTopArticles splits limit evenly (rounding up) across subreddits and
// reads their hot listings in parallel, returning at most limit articles.
// A subreddit that fails is skipped; the call fails only if every subreddit
// fails.
func (g *RedditGateway) FetchTopArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	ctx = logger.WithSource(ctx, sourceName)
	start := time.Now()
	if limit <= 0 || len(g.subreddits) == 0 {
		return []*domain.Article{}, nil
	}
	perSub := (limit + len(g.subreddits) - 1) / len(g.subreddits)

	results := make([][]*domain.Article, len(g.subreddits))
	failures := make([]error, len(g.subreddits))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, sub := range g.subreddits {
		eg.Go(func() error {
			results[i], failures[i] = g.fetchSubreddit(egCtx, sub, perSub)
			if failures[i] != nil {
				logger.FromContext(egCtx).Warn("failed to fetch subreddit", "subreddit", sub, "error", failures[i])
			}
			return nil
		})
	}
	_ = eg.Wait()

	var (
		articles []*domain.Article
		failed   int
		lastErr  error
	)
	for i := range results {
		if failures[i] != nil {
			failed++
			lastErr = failures[i]
			continue
		}
		articles = append(articles, results[i]...)
	}

	if failed == len(g.subreddits) {
		metrics.RecordSourceFetch(sourceName, "error", time.Since(start).Seconds())
		return nil, errors.NewExternalAPIContextError("failed to fetch every subreddit",
			"gateway", "RedditGateway", "FetchTopArticles", lastErr,
			map[string]any{"subreddits": g.subreddits})
	}

	metrics.RecordSourceFetch(sourceName, "success", time.Since(start).Seconds())
	if len(articles) > limit {
		articles = articles[:limit]
	}
	if articles == nil {
		articles = []*domain.Article{}
	}
	return articles, nil
}

func (g *RedditGateway) fetchSubreddit(ctx context.Context, sub string, limit int) ([]*domain.Article, error) {
	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, g.baseURL); err != nil {
			return nil, err
		}
	}

	var body listing
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("sub", sub).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&body).
		Get("/r/{sub}/hot.json")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &domain.ExternalHTTPError{StatusCode: resp.StatusCode(), URL: resp.Request.URL}
	}

	source := domain.Reddit(sub)
	articles := make([]*domain.Article, 0, len(body.Data.Children))
	for _, child := range body.Data.Children {
		p := child.Data
		if p.Stickied {
			metrics.RecordSkippedItem(sourceName, "stickied")
			continue
		}
		article, err := toArticle(source, &p)
		if err != nil {
			metrics.RecordSkippedItem(sourceName, "invalid")
			logger.FromContext(ctx).Warn("skipping reddit post", "subreddit", sub, "post_id", p.ID, "error", err)
			continue
		}
		articles = append(articles, article)
	}
	return articles, nil
}

func toArticle(source domain.Source, p *post) (*domain.Article, error) {
	if p.Title == "" {
		return nil, fmt.Errorf("post %q has no title", p.ID)
	}
	title := html_parser.CleanTitle(p.Title)

	article, err := domain.NewArticle(source, p.ID, title, p.URL, int64(p.CreatedUTC))
	if err != nil {
		return nil, err
	}
	article.Score = domain.NormalizeScore(p.Score, upvotesForFullMark)
	article.CommentCount = p.NumComments
	if p.Author != "" {
		article.Author = p.Author
	}
	article.Tags = domain.NewTagSet(keyword.Extract(title + " " + p.Subreddit)...)
	return article, nil
}
