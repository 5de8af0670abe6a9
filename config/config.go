package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Logging   LoggingConfig   `json:"logging"`
	HTTP      HTTPConfig      `json:"http"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Ingest    IngestConfig    `json:"ingest"`
	Cache     CacheConfig     `json:"cache"`
	OTel      OTelConfig      `json:"otel"`
	Feed      FeedConfig      `json:"feed"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	RequestTimeout  time.Duration `json:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" default:"45s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type DatabaseConfig struct {
	Driver            string        `json:"driver" env:"STORAGE_DRIVER" default:"sqlite"`
	URL               string        `json:"-" env:"DATABASE_URL"`
	SQLitePath        string        `json:"sqlite_path" env:"SQLITE_PATH" default:"techpulse.db"`
	BoltPath          string        `json:"bolt_path" env:"BOLT_PATH" default:"techpulse.bolt"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"10"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"10s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	ClientTimeout time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"15s"`
	UserAgent     string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"techpulse/1.0"`
}

type RateLimitConfig struct {
	HostInterval      time.Duration `json:"host_interval" env:"RATE_LIMIT_HOST_INTERVAL" default:"100ms"`
	SourceConcurrency int           `json:"source_concurrency" env:"RATE_LIMIT_SOURCE_CONCURRENCY" default:"8"`
}

type IngestConfig struct {
	Limit          int           `json:"limit" env:"INGEST_LIMIT" default:"30"`
	Schedule       string        `json:"schedule" env:"INGEST_SCHEDULE" default:"@every 30m"`
	TrendSchedule  string        `json:"trend_schedule" env:"TREND_SCHEDULE" default:"@hourly"`
	JobTimeout     time.Duration `json:"job_timeout" env:"JOB_TIMEOUT" default:"5m"`
	SourcesFile    string        `json:"sources_file" env:"SOURCES_FILE" default:"sources.yaml"`
	Keywords       []string      `json:"keywords" env:"TREND_KEYWORDS"`
	PublishersFile string        `json:"publishers_file" env:"PUBLISHERS_FILE"`
}

type CacheConfig struct {
	RedisURL       string        `json:"-" env:"REDIS_URL"`
	ReportTTL      time.Duration `json:"report_ttl" env:"CACHE_REPORT_TTL" default:"10m"`
	ArticleLRUSize int           `json:"article_lru_size" env:"CACHE_ARTICLE_LRU_SIZE" default:"1024"`
	ArticleTTL     time.Duration `json:"article_ttl" env:"CACHE_ARTICLE_TTL" default:"30s"`
}

type OTelConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	Endpoint       string  `json:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"techpulse"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"0.0.0"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
}

type FeedConfig struct {
	DefaultLimit int `json:"default_limit" env:"FEED_DEFAULT_LIMIT" default:"30"`
	MaxLimit     int `json:"max_limit" env:"FEED_MAX_LIMIT" default:"100"`
}

// NewConfig reads an optional .env file, then fills the configuration from
// environment variables falling back to tag defaults.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return loadAndValidate()
}

// NewConfigFromEnv skips the .env file.
func NewConfigFromEnv() (*Config, error) {
	return loadAndValidate()
}

func loadAndValidate() (*Config, error) {
	config := &Config{}
	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}
