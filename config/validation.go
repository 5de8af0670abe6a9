package config

import (
	"fmt"
	"strings"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
)

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}
	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}
	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}
	if err := validateIngestConfig(&config.Ingest); err != nil {
		return fmt.Errorf("ingest config validation failed: %w", err)
	}
	if err := validateOTelConfig(&config.OTel); err != nil {
		return fmt.Errorf("otel config validation failed: %w", err)
	}
	if err := validateFeedConfig(&config.Feed); err != nil {
		return fmt.Errorf("feed config validation failed: %w", err)
	}
	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}
	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive")
	}
	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	switch config.Driver {
	case DriverMemory:
	case DriverSQLite:
		if config.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if config.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	case DriverBolt:
		if config.BoltPath == "" {
			return fmt.Errorf("BOLT_PATH is required for the bolt driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Driver)
	}
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}
	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", config.Level)
	}
	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", config.Format)
	}
	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	if config.HostInterval < 0 {
		return fmt.Errorf("host interval must not be negative, got %v", config.HostInterval)
	}
	if config.SourceConcurrency < 1 {
		return fmt.Errorf("source concurrency must be at least 1, got %d", config.SourceConcurrency)
	}
	return nil
}

func validateIngestConfig(config *IngestConfig) error {
	if config.Limit < 1 || config.Limit > 500 {
		return fmt.Errorf("ingest limit must be between 1 and 500, got %d", config.Limit)
	}
	if config.Schedule == "" || config.TrendSchedule == "" {
		return fmt.Errorf("job schedules must not be empty")
	}
	if config.JobTimeout <= 0 {
		return fmt.Errorf("job timeout must be positive, got %v", config.JobTimeout)
	}
	return nil
}

func validateOTelConfig(config *OTelConfig) error {
	if config.SampleRatio < 0 || config.SampleRatio > 1 {
		return fmt.Errorf("sample ratio must be between 0 and 1, got %v", config.SampleRatio)
	}
	return nil
}

func validateFeedConfig(config *FeedConfig) error {
	if config.MaxLimit < 1 {
		return fmt.Errorf("max feed limit must be at least 1, got %d", config.MaxLimit)
	}
	if config.DefaultLimit < 1 || config.DefaultLimit > config.MaxLimit {
		return fmt.Errorf("default feed limit must be between 1 and %d, got %d", config.MaxLimit, config.DefaultLimit)
	}
	return nil
}
