package producthunt_gateway

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"techpulse/domain"
	"techpulse/port/source_article_port"
	"techpulse/utils/errors"
	"techpulse/utils/html_parser"
	"techpulse/utils/keyword"
	"techpulse/utils/logger"
	"techpulse/utils/metrics"
	"techpulse/utils/rate_limiter"
)

var _ source_article_port.SourceArticlePort = (*ProductHuntGateway)(nil)

const (
	sourceName    = "producthunt"
	launchScore   = 80.0
	defaultAuthor = "Product Hunt"
)

type ProductHuntGateway struct {
	feedURL     string
	userAgent   string
	httpClient  *http.Client
	rateLimiter *rate_limiter.HostRateLimiter
}

func NewProductHuntGateway(feedURL, userAgent string, httpClient *http.Client, rateLimiter *rate_limiter.HostRateLimiter) *ProductHuntGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ProductHuntGateway{
		feedURL:     feedURL,
		userAgent:   userAgent,
		httpClient:  httpClient,
		rateLimiter: rateLimiter,
	}
}

func (g *ProductHuntGateway) Name() string { return sourceName }

func (g *ProductHuntGateway) FetchTopArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	ctx = logger.WithSource(ctx, sourceName)
	start := time.Now()
	if limit <= 0 {
		return []*domain.Article{}, nil
	}

	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, g.feedURL); err != nil {
			return nil, err
		}
	}

	fp := gofeed.NewParser()
	fp.Client = g.httpClient
	if g.userAgent != "" {
		fp.UserAgent = g.userAgent
	}
	feed, err := fp.ParseURLWithContext(g.feedURL, ctx)
	if err != nil {
		metrics.RecordSourceFetch(sourceName, "error", time.Since(start).Seconds())
		return nil, errors.NewExternalAPIContextError("failed to read product hunt feed",
			"gateway", "ProductHuntGateway", "FetchTopArticles", err,
			map[string]any{"feed_url": g.feedURL})
	}

	articles := make([]*domain.Article, 0, min(limit, len(feed.Items)))
	for _, item := range feed.Items {
		if len(articles) == limit {
			break
		}
		article, err := toArticle(item)
		if err != nil {
			metrics.RecordSkippedItem(sourceName, "invalid")
			logger.FromContext(ctx).Warn("skipping product hunt item", "guid", item.GUID, "error", err)
			continue
		}
		articles = append(articles, article)
	}

	metrics.RecordSourceFetch(sourceName, "success", time.Since(start).Seconds())
	return articles, nil
}

func toArticle(item *gofeed.Item) (*domain.Article, error) {
	nativeID := nativeIDFromGUID(item.GUID)
	if nativeID == "" {
		return nil, fmt.Errorf("item %q has no usable guid", item.Title)
	}

	title := html_parser.CleanTitle(item.Title)
	var ts int64
	if item.PublishedParsed != nil {
		ts = item.PublishedParsed.Unix()
	} else if item.UpdatedParsed != nil {
		ts = item.UpdatedParsed.Unix()
	}

	article, err := domain.NewArticle(domain.ProductHunt(), nativeID, title, item.Link, ts)
	if err != nil {
		return nil, err
	}
	article.Score = launchScore
	article.Author = defaultAuthor
	switch {
	case item.Author != nil && item.Author.Name != "":
		article.Author = item.Author.Name
	case len(item.Authors) > 0 && item.Authors[0] != nil && item.Authors[0].Name != "":
		article.Author = item.Authors[0].Name
	}

	description := item.Description
	if description == "" {
		description = item.Content
	}
	text := title + " " + strings.Join(item.Categories, " ") + " " + html_parser.ExtractText(description)
	article.Tags = domain.NewTagSet(keyword.Extract(text)...)
	return article, nil
}

// nativeIDFromGUID takes the last path segment of guids such as
// "tag:www.producthunt.com,2005:Post/123456" or a permalink.
func nativeIDFromGUID(guid string) string {
	guid = strings.TrimRight(strings.TrimSpace(guid), "/")
	if guid == "" {
		return ""
	}
	return path.Base(guid)
}
