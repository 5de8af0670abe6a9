package arxiv_gateway

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"
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

var _ source_article_port.SourceArticlePort = (*ArXivGateway)(nil)

const (
	sourceName    = "arxiv"
	paperScore    = 60.0
	titlePrefix   = "[Paper] "
	defaultAuthor = "ArXiv"
)

// ArXivGateway queries the arXiv Atom export API for the newest submissions
// in the configured categories.
type ArXivGateway struct {
	baseURL     string
	categories  []string
	userAgent   string
	httpClient  *http.Client
	rateLimiter *rate_limiter.HostRateLimiter
}

func NewArXivGateway(baseURL string, categories []string, userAgent string, httpClient *http.Client, rateLimiter *rate_limiter.HostRateLimiter) *ArXivGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ArXivGateway{
		baseURL:     baseURL,
		categories:  categories,
		userAgent:   userAgent,
		httpClient:  httpClient,
		rateLimiter: rateLimiter,
	}
}

func (g *ArXivGateway) Name() string { return sourceName }

func (g *ArXivGateway) queryURL(limit int) string {
	terms := make([]string, 0, len(g.categories))
	for _, c := range g.categories {
		terms = append(terms, "cat:"+c)
	}
	q := url.Values{}
	q.Set("search_query", strings.Join(terms, " OR "))
	q.Set("start", "0")
	q.Set("max_results", strconv.Itoa(limit))
	q.Set("sortBy", "submittedDate")
	q.Set("sortOrder", "descending")
	return g.baseURL + "?" + q.Encode()
}

func (g *ArXivGateway) FetchTopArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	ctx = logger.WithSource(ctx, sourceName)
	start := time.Now()
	if limit <= 0 || len(g.categories) == 0 {
		return []*domain.Article{}, nil
	}

	feedURL := g.queryURL(limit)
	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, feedURL); err != nil {
			return nil, err
		}
	}

	fp := gofeed.NewParser()
	fp.Client = g.httpClient
	if g.userAgent != "" {
		fp.UserAgent = g.userAgent
	}
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		metrics.RecordSourceFetch(sourceName, "error", time.Since(start).Seconds())
		return nil, errors.NewExternalAPIContextError("failed to query arxiv",
			"gateway", "ArXivGateway", "FetchTopArticles", err,
			map[string]any{"categories": g.categories})
	}

	articles := make([]*domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(articles) == limit {
			break
		}
		article, err := toArticle(item)
		if err != nil {
			metrics.RecordSkippedItem(sourceName, "invalid")
			logger.FromContext(ctx).Warn("skipping arxiv entry", "entry_id", item.GUID, "error", err)
			continue
		}
		articles = append(articles, article)
	}

	metrics.RecordSourceFetch(sourceName, "success", time.Since(start).Seconds())
	return articles, nil
}

func toArticle(item *gofeed.Item) (*domain.Article, error) {
	abstractURL := item.GUID
	if abstractURL == "" {
		abstractURL = item.Link
	}
	nativeID := path.Base(strings.TrimRight(abstractURL, "/"))

	title := html_parser.CleanTitle(item.Title)
	var ts int64
	if item.PublishedParsed != nil {
		ts = item.PublishedParsed.Unix()
	}

	article, err := domain.NewArticle(domain.ArXiv(), nativeID, titlePrefix+title, pdfLink(item, abstractURL), ts)
	if err != nil {
		return nil, err
	}
	article.Score = paperScore
	article.Author = defaultAuthor
	if len(item.Authors) > 0 && item.Authors[0] != nil && item.Authors[0].Name != "" {
		article.Author = item.Authors[0].Name
	}
	article.Tags = domain.NewTagSet(keyword.Extract(title + " " + html_parser.ExtractText(item.Description))...)
	return article, nil
}

// pdfLink prefers the entry's PDF link over its abstract page.
func pdfLink(item *gofeed.Item, fallback string) string {
	for _, l := range item.Links {
		if strings.Contains(l, "/pdf/") {
			return l
		}
	}
	return fallback
}
