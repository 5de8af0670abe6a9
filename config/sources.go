package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourcesConfig lists the upstream sources ingestion pulls from.
type SourcesConfig struct {
	HackerNews  HackerNewsSource  `yaml:"hackernews"`
	GitHub      GitHubSource      `yaml:"github"`
	Reddit      RedditSource      `yaml:"reddit"`
	ArXiv       ArXivSource       `yaml:"arxiv"`
	ProductHunt ProductHuntSource `yaml:"producthunt"`
}

type HackerNewsSource struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
}

type GitHubSource struct {
	Enabled    bool   `yaml:"enabled"`
	BaseURL    string `yaml:"base_url"`
	WindowDays int    `yaml:"window_days"`
	Token      string `yaml:"token"`
}

type RedditSource struct {
	Enabled    bool     `yaml:"enabled"`
	BaseURL    string   `yaml:"base_url"`
	Subreddits []string `yaml:"subreddits"`
}

type ArXivSource struct {
	Enabled    bool     `yaml:"enabled"`
	BaseURL    string   `yaml:"base_url"`
	Categories []string `yaml:"categories"`
}

type ProductHuntSource struct {
	Enabled bool   `yaml:"enabled"`
	FeedURL string `yaml:"feed_url"`
}

// DefaultSources enables only Hacker News, matching the upstream the service
// was first built around.
func DefaultSources() *SourcesConfig {
	return &SourcesConfig{
		HackerNews: HackerNewsSource{Enabled: true, BaseURL: "https://hacker-news.firebaseio.com/v0"},
		GitHub:     GitHubSource{BaseURL: "https://api.github.com", WindowDays: 7},
		Reddit: RedditSource{
			BaseURL:    "https://www.reddit.com",
			Subreddits: []string{"programming", "technology", "machinelearning", "javascript", "webdev"},
		},
		ArXiv: ArXivSource{
			BaseURL:    "http://export.arxiv.org/api/query",
			Categories: []string{"cs.AI", "cs.SE", "cs.LG", "cs.CV"},
		},
		ProductHunt: ProductHuntSource{FeedURL: "https://www.producthunt.com/feed"},
	}
}

// LoadSources reads path over the defaults. A missing file yields the defaults.
// Values are expanded with os.ExpandEnv so tokens can stay out of the file.
func LoadSources(path string) (*SourcesConfig, error) {
	cfg := DefaultSources()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), cfg); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SourcesConfig) Validate() error {
	if c.Reddit.Enabled {
		if len(c.Reddit.Subreddits) == 0 {
			return fmt.Errorf("reddit enabled without subreddits")
		}
		for _, sub := range c.Reddit.Subreddits {
			if strings.TrimSpace(sub) == "" || strings.Contains(sub, "-") {
				return fmt.Errorf("invalid subreddit %q", sub)
			}
		}
	}
	if c.GitHub.Enabled && c.GitHub.WindowDays < 1 {
		return fmt.Errorf("github window_days must be at least 1")
	}
	if c.ArXiv.Enabled && len(c.ArXiv.Categories) == 0 {
		return fmt.Errorf("arxiv enabled without categories")
	}
	if !c.AnyEnabled() {
		return fmt.Errorf("no sources enabled")
	}
	return nil
}

func (c *SourcesConfig) AnyEnabled() bool {
	return c.HackerNews.Enabled || c.GitHub.Enabled || c.Reddit.Enabled || c.ArXiv.Enabled || c.ProductHunt.Enabled
}
