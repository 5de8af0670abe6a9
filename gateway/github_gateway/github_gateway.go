package github_gateway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"techpulse/domain"
	"techpulse/port/source_article_port"
	"techpulse/utils/errors"
	"techpulse/utils/html_parser"
	"techpulse/utils/keyword"
	"techpulse/utils/logger"
	"techpulse/utils/metrics"
	"techpulse/utils/rate_limiter"
)

var _ source_article_port.SourceArticlePort = (*GitHubGateway)(nil)

const (
	sourceName       = "github"
	starsForFullMark = 1000
	maxPerPage       = 100
	noDescription    = "No description"
)

type searchResponse struct {
	Items []repository `json:"items"`
}

type repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       uint32 `json:"forks_count"`
	CreatedAt   string `json:"created_at"`
	Owner       *struct {
		Login string `json:"login"`
	} `json:"owner"`
}

// GitHubGateway lists repositories created in the last windowDays, most starred first.
type GitHubGateway struct {
	client      *resty.Client
	rateLimiter *rate_limiter.HostRateLimiter
	baseURL     string
	windowDays  int
	now         func() time.Time
}

func NewGitHubGateway(baseURL, token, userAgent string, windowDays int, timeout time.Duration, rateLimiter *rate_limiter.HostRateLimiter) *GitHubGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/vnd.github.v3+json")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	if token != "" {
		client.SetAuthToken(token)
	}

	return &GitHubGateway{
		client:      client,
		rateLimiter: rateLimiter,
		baseURL:     baseURL,
		windowDays:  windowDays,
		now:         time.Now,
	}
}

func (g *GitHubGateway) Name() string { return sourceName }

// FetchTopArticles returns an empty list when GitHub rate limits the search.
func (g *GitHubGateway) FetchTopArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	ctx = logger.WithSource(ctx, sourceName)
	start := time.Now()
	if limit <= 0 {
		return []*domain.Article{}, nil
	}
	if limit > maxPerPage {
		limit = maxPerPage
	}

	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, g.baseURL); err != nil {
			return nil, err
		}
	}

	since := g.now().UTC().AddDate(0, 0, -g.windowDays).Format("2006-01-02")
	var body searchResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        "created:>" + since,
			"sort":     "stars",
			"order":    "desc",
			"per_page": strconv.Itoa(limit),
		}).
		SetResult(&body).
		Get("/search/repositories")
	if err != nil {
		metrics.RecordSourceFetch(sourceName, "error", time.Since(start).Seconds())
		return nil, errors.NewExternalAPIContextError("failed to search github repositories",
			"gateway", "GitHubGateway", "FetchTopArticles", err, nil)
	}

	switch {
	case resp.StatusCode() == http.StatusForbidden || resp.StatusCode() == http.StatusTooManyRequests:
		metrics.RecordSourceFetch(sourceName, "rate_limited", time.Since(start).Seconds())
		logger.FromContext(ctx).Warn("github rate limit exceeded, returning no repositories", "status", resp.StatusCode())
		return []*domain.Article{}, nil
	case resp.IsError():
		metrics.RecordSourceFetch(sourceName, "error", time.Since(start).Seconds())
		return nil, errors.NewExternalAPIContextError("github search returned an error status",
			"gateway", "GitHubGateway", "FetchTopArticles",
			&domain.ExternalHTTPError{StatusCode: resp.StatusCode(), URL: resp.Request.URL}, nil)
	}

	articles := make([]*domain.Article, 0, len(body.Items))
	for i := range body.Items {
		article, err := toArticle(&body.Items[i])
		if err != nil {
			metrics.RecordSkippedItem(sourceName, "invalid")
			logger.FromContext(ctx).Warn("skipping github repository", "repo", body.Items[i].FullName, "error", err)
			continue
		}
		articles = append(articles, article)
	}

	metrics.RecordSourceFetch(sourceName, "success", time.Since(start).Seconds())
	return articles, nil
}

func toArticle(repo *repository) (*domain.Article, error) {
	description := html_parser.CleanTitle(repo.Description)
	titleDesc := description
	if titleDesc == "" {
		titleDesc = noDescription
	}

	var ts int64
	if created, err := time.Parse(time.RFC3339, repo.CreatedAt); err == nil {
		ts = created.Unix()
	}

	article, err := domain.NewArticle(domain.GitHub(), strconv.FormatInt(repo.ID, 10),
		repo.FullName+": "+titleDesc, repo.HTMLURL, ts)
	if err != nil {
		return nil, err
	}
	article.Score = domain.NormalizeScore(repo.Stars, starsForFullMark)
	article.CommentCount = repo.Forks
	if repo.Owner != nil && repo.Owner.Login != "" {
		article.Author = repo.Owner.Login
	}
	article.Tags = domain.NewTagSet(keyword.Extract(repo.Name + " " + description + " " + repo.Language)...)
	return article, nil
}
