package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "@every 30m", cfg.Ingest.Schedule)
	assert.Equal(t, 30, cfg.Feed.DefaultLimit)
	assert.Equal(t, 100, cfg.Feed.MaxLimit)
	assert.False(t, cfg.OTel.Enabled)
	assert.InDelta(t, 0.1, cfg.OTel.SampleRatio, 1e-9)
	assert.Empty(t, cfg.Ingest.Keywords)
}

func TestNewConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8088")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/techpulse")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("TREND_KEYWORDS", "Go, WASM ,,Kubernetes")
	t.Setenv("CACHE_REPORT_TTL", "90s")

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.OTel.Enabled)
	assert.Equal(t, []string{"Go", "WASM", "Kubernetes"}, cfg.Ingest.Keywords)
	assert.Equal(t, 90*time.Second, cfg.Cache.ReportTTL)
}

func TestNewConfigFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "SERVER_PORT", "70000"},
		{"non numeric port", "SERVER_PORT", "abc"},
		{"bad duration", "SERVER_READ_TIMEOUT", "soon"},
		{"unknown driver", "STORAGE_DRIVER", "mongo"},
		{"postgres without url", "STORAGE_DRIVER", "postgres"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad bool", "OTEL_ENABLED", "maybe"},
		{"bad ratio", "OTEL_TRACE_SAMPLE_RATIO", "1.5"},
		{"ingest limit too high", "INGEST_LIMIT", "1000"},
		{"default feed over max", "FEED_DEFAULT_LIMIT", "500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := NewConfigFromEnv()
			assert.Error(t, err)
		})
	}
}
