package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSources(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSources_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadSources(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.HackerNews.Enabled)
	assert.False(t, cfg.GitHub.Enabled)
	assert.Equal(t, "https://hacker-news.firebaseio.com/v0", cfg.HackerNews.BaseURL)
}

func TestLoadSources_OverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("GH_TOKEN", "secret")
	path := writeSources(t, `
hackernews:
  enabled: false
github:
  enabled: true
  window_days: 3
  token: ${GH_TOKEN}
reddit:
  enabled: true
  subreddits: [golang, rust]
`)

	cfg, err := LoadSources(path)
	require.NoError(t, err)
	assert.False(t, cfg.HackerNews.Enabled)
	assert.True(t, cfg.GitHub.Enabled)
	assert.Equal(t, 3, cfg.GitHub.WindowDays)
	assert.Equal(t, "secret", cfg.GitHub.Token)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Equal(t, []string{"golang", "rust"}, cfg.Reddit.Subreddits)
}

func TestLoadSources_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"dashed subreddit", "reddit:\n  enabled: true\n  subreddits: [machine-learning]\n"},
		{"nothing enabled", "hackernews:\n  enabled: false\n"},
		{"broken yaml", "hackernews: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSources(writeSources(t, tt.body))
			assert.Error(t, err)
		})
	}
}
