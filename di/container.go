package di

import (
	"context"
	"crypto/tls"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"techpulse/config"
	"techpulse/driver/bolt_db"
	"techpulse/driver/memory_db"
	"techpulse/driver/publisher_driver"
	"techpulse/driver/redis_driver"
	"techpulse/driver/sqlite_db"
	"techpulse/driver/techpulse_db"
	"techpulse/gateway/article_gateway"
	"techpulse/gateway/arxiv_gateway"
	"techpulse/gateway/github_gateway"
	"techpulse/gateway/hackernews_gateway"
	"techpulse/gateway/multi_source_gateway"
	"techpulse/gateway/producthunt_gateway"
	"techpulse/gateway/reddit_gateway"
	"techpulse/gateway/timeline_gateway"
	"techpulse/gateway/trend_event_gateway"
	"techpulse/gateway/trend_report_gateway"
	"techpulse/gateway/user_profile_gateway"
	"techpulse/port/source_article_port"
	"techpulse/usecase/calculate_trends_usecase"
	"techpulse/usecase/fetch_article_usecase"
	"techpulse/usecase/fetch_feed_usecase"
	"techpulse/usecase/fetch_latest_trend_report_usecase"
	"techpulse/usecase/ingest_articles_usecase"
	"techpulse/usecase/refresh_trends_usecase"
	"techpulse/usecase/timeline_usecase"
	"techpulse/usecase/user_profile_usecase"
	"techpulse/utils/logger"
	"techpulse/utils/rate_limiter"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"

	publishTimeout = 10 * time.Second
)

// Store is the method set every storage driver provides.
type Store interface {
	article_gateway.ArticleStore
	trend_report_gateway.TrendReportStore
	timeline_gateway.TimelineStore
	user_profile_gateway.UserProfileStore
	Close() error
}

type ApplicationComponents struct {
	Config *config.Config

	FetchFeedUsecase              *fetch_feed_usecase.FetchFeedUsecase
	FetchArticleUsecase           *fetch_article_usecase.FetchArticleUsecase
	CalculateTrendsUsecase        *calculate_trends_usecase.CalculateTrendsUsecase
	RefreshTrendsUsecase          *refresh_trends_usecase.RefreshTrendsUsecase
	FetchLatestTrendReportUsecase *fetch_latest_trend_report_usecase.FetchLatestTrendReportUsecase
	IngestArticlesUsecase         *ingest_articles_usecase.IngestArticlesUsecase
	TimelineUsecase               *timeline_usecase.TimelineUsecase
	UserProfileUsecase            *user_profile_usecase.UserProfileUsecase

	SourceGateway source_article_port.SourceArticlePort

	closers []func() error
}

// NewApplicationComponents opens the configured store, optional Redis cache
// and publishers, and wires the usecases over them.
func NewApplicationComponents(ctx context.Context, cfg *config.Config) (*ApplicationComponents, error) {
	return NewApplicationComponentsWithSource(ctx, cfg, nil)
}

// NewApplicationComponentsWithSource uses source instead of the sources file
// when it is non-nil.
func NewApplicationComponentsWithSource(ctx context.Context, cfg *config.Config, source source_article_port.SourceArticlePort) (*ApplicationComponents, error) {
	c := &ApplicationComponents{Config: cfg}

	store, err := OpenStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, store.Close)

	if source == nil {
		source, err = buildSources(cfg)
		if err != nil {
			c.Close()
			return nil, err
		}
	}
	c.SourceGateway = source

	articles, err := article_gateway.NewArticleGateway(store, articleCacheSize(cfg), cfg.Cache.ArticleTTL)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("article gateway: %w", err)
	}

	reports := trend_report_gateway.NewTrendReportGateway(store, c.openReportCache(ctx, cfg.Cache), cfg.Cache.ReportTTL)

	events, err := c.buildTrendEvents(ctx, cfg.Ingest.PublishersFile)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.FetchFeedUsecase = fetch_feed_usecase.NewFetchFeedUsecase(articles, cfg.Feed.DefaultLimit, cfg.Feed.MaxLimit)
	c.FetchArticleUsecase = fetch_article_usecase.NewFetchArticleUsecase(articles)
	c.CalculateTrendsUsecase = calculate_trends_usecase.NewCalculateTrendsUsecase(articles, reports)
	c.RefreshTrendsUsecase = refresh_trends_usecase.NewRefreshTrendsUsecase(c.CalculateTrendsUsecase, events)
	c.FetchLatestTrendReportUsecase = fetch_latest_trend_report_usecase.NewFetchLatestTrendReportUsecase(reports)
	c.IngestArticlesUsecase = ingest_articles_usecase.NewIngestArticlesUsecase(source, articles)
	c.TimelineUsecase = timeline_usecase.NewTimelineUsecase(timeline_gateway.NewTimelineGateway(store))
	c.UserProfileUsecase = user_profile_usecase.NewUserProfileUsecase(user_profile_gateway.NewUserProfileGateway(store), articles)

	logger.Logger.Info("application components ready",
		"storage", cfg.Database.Driver,
		"sources", source.Name())
	return c, nil
}

// Close releases every resource in reverse order of acquisition.
func (c *ApplicationComponents) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return stderrors.Join(errs...)
}

func OpenStore(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return memory_db.NewMemoryDB(), nil
	case DriverSQLite:
		return sqlite_db.Open(ctx, cfg.SQLitePath)
	case DriverBolt:
		return bolt_db.Open(cfg.BoltPath)
	case DriverPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectionTimeout)
		defer cancel()
		return techpulse_db.Connect(connectCtx, cfg.URL, int32(cfg.MaxConnections))
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// articleCacheSize turns the article cache off for sqlite and postgres,
// which `serve` and one-shot CLI commands may write concurrently.
func articleCacheSize(cfg *config.Config) int {
	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres:
		return 0
	default:
		return cfg.Cache.ArticleLRUSize
	}
}

// openReportCache returns nil when Redis is not configured or unreachable;
// the report gateway then reads the store directly.
func (c *ApplicationComponents) openReportCache(ctx context.Context, cfg config.CacheConfig) trend_report_gateway.ReportCache {
	if cfg.RedisURL == "" {
		return nil
	}

	driver, err := redis_driver.NewRedisDriverWithURL(cfg.RedisURL)
	if err != nil {
		logger.Logger.Warn("invalid REDIS_URL, report cache disabled", "error", err)
		return nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := driver.Ping(pingCtx); err != nil {
		logger.Logger.Warn("redis unreachable, report cache disabled", "error", err)
		_ = driver.Close()
		return nil
	}

	c.closers = append(c.closers, driver.Close)
	return driver
}

func (c *ApplicationComponents) buildTrendEvents(ctx context.Context, publishersFile string) (*trend_event_gateway.TrendEventGateway, error) {
	cfgs, err := config.LoadPublishers(publishersFile)
	if err != nil {
		return nil, err
	}
	pubs, err := publisher_driver.BuildAll(ctx, cfgs)
	if err != nil {
		return nil, err
	}

	gw := trend_event_gateway.NewTrendEventGateway(publishTimeout, pubs...)
	c.closers = append(c.closers, func() error {
		gw.Close()
		return nil
	})
	if len(pubs) > 0 {
		logger.Logger.Info("trend report publishers ready", "count", len(pubs))
	}
	return gw, nil
}

func buildSources(cfg *config.Config) (source_article_port.SourceArticlePort, error) {
	sources, err := config.LoadSources(cfg.Ingest.SourcesFile)
	if err != nil {
		return nil, err
	}

	limiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.HostInterval)
	httpClient := newHTTPClient(cfg.HTTP.ClientTimeout)
	userAgent := cfg.HTTP.UserAgent

	var ports []source_article_port.SourceArticlePort
	if sources.HackerNews.Enabled {
		ports = append(ports, hackernews_gateway.NewHackerNewsGateway(
			sources.HackerNews.BaseURL, userAgent, cfg.RateLimit.SourceConcurrency, httpClient, limiter))
	}
	if sources.GitHub.Enabled {
		ports = append(ports, github_gateway.NewGitHubGateway(
			sources.GitHub.BaseURL, sources.GitHub.Token, userAgent, sources.GitHub.WindowDays, cfg.HTTP.ClientTimeout, limiter))
	}
	if sources.Reddit.Enabled {
		ports = append(ports, reddit_gateway.NewRedditGateway(
			sources.Reddit.BaseURL, userAgent, sources.Reddit.Subreddits, cfg.HTTP.ClientTimeout, limiter))
	}
	if sources.ArXiv.Enabled {
		ports = append(ports, arxiv_gateway.NewArXivGateway(
			sources.ArXiv.BaseURL, sources.ArXiv.Categories, userAgent, httpClient, limiter))
	}
	if sources.ProductHunt.Enabled {
		ports = append(ports, producthunt_gateway.NewProductHuntGateway(
			sources.ProductHunt.FeedURL, userAgent, httpClient, limiter))
	}

	if len(ports) == 1 {
		return ports[0], nil
	}
	return multi_source_gateway.NewMultiSourceGateway(cfg.Ingest.JobTimeout, ports...), nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}
