// Package memory_db keeps every collection in process memory. It backs tests
// and single-process deployments that do not need durability.
package memory_db

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"techpulse/domain"
)

type MemoryDB struct {
	articlesMu sync.RWMutex
	articles   map[string]*domain.Article

	reportsMu sync.RWMutex
	reports   []*domain.TrendReport

	timelineMu sync.RWMutex
	timeline   map[string]*domain.TimelineEvent

	usersMu sync.RWMutex
	users   map[string]*domain.UserProfile
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		articles: make(map[string]*domain.Article),
		timeline: make(map[string]*domain.TimelineEvent),
		users:    make(map[string]*domain.UserProfile),
	}
}

func (db *MemoryDB) Close() error { return nil }

func (db *MemoryDB) SaveArticle(ctx context.Context, article *domain.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.articlesMu.Lock()
	defer db.articlesMu.Unlock()
	db.articles[article.ID.String()] = cloneArticle(article)
	return nil
}

func (db *MemoryDB) FindArticleByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.articlesMu.RLock()
	defer db.articlesMu.RUnlock()
	a, ok := db.articles[id.String()]
	if !ok {
		return nil, nil
	}
	return cloneArticle(a), nil
}

func (db *MemoryDB) FindLatestArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []*domain.Article{}, nil
	}

	db.articlesMu.RLock()
	all := make([]*domain.Article, 0, len(db.articles))
	for _, a := range db.articles {
		all = append(all, a)
	}
	db.articlesMu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].Timestamp != all[j].Timestamp {
			return all[i].Timestamp > all[j].Timestamp
		}
		return all[i].ID.String() < all[j].ID.String()
	})

	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]*domain.Article, len(all))
	for i, a := range all {
		out[i] = cloneArticle(a)
	}
	return out, nil
}

func (db *MemoryDB) SaveTrendReport(ctx context.Context, report *domain.TrendReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.reportsMu.Lock()
	defer db.reportsMu.Unlock()
	db.reports = append(db.reports, cloneReport(report))
	return nil
}

// FindLatestTrendReport returns the report with the greatest timestamp; among
// equal timestamps the one saved last wins.
func (db *MemoryDB) FindLatestTrendReport(ctx context.Context) (*domain.TrendReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.reportsMu.RLock()
	defer db.reportsMu.RUnlock()

	var latest *domain.TrendReport
	for _, r := range db.reports {
		if latest == nil || r.Timestamp >= latest.Timestamp {
			latest = r
		}
	}
	if latest == nil {
		return nil, nil
	}
	return cloneReport(latest), nil
}

func (db *MemoryDB) SaveTimelineEvent(ctx context.Context, event *domain.TimelineEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.timelineMu.Lock()
	defer db.timelineMu.Unlock()
	e := *event
	db.timeline[event.ID] = &e
	return nil
}

func (db *MemoryDB) ListTimelineEvents(ctx context.Context) ([]*domain.TimelineEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.timelineMu.RLock()
	out := make([]*domain.TimelineEvent, 0, len(db.timeline))
	for _, e := range db.timeline {
		c := *e
		out = append(out, &c)
	}
	db.timelineMu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (db *MemoryDB) SaveUserProfile(ctx context.Context, profile *domain.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.usersMu.Lock()
	defer db.usersMu.Unlock()
	db.users[profile.ID] = cloneProfile(profile)
	return nil
}

func (db *MemoryDB) FindUserProfileByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.usersMu.RLock()
	defer db.usersMu.RUnlock()
	p, ok := db.users[id]
	if !ok {
		return nil, nil
	}
	return cloneProfile(p), nil
}

func cloneArticle(a *domain.Article) *domain.Article {
	c := *a
	c.Tags = domain.NewTagSet(a.Tags.Slice()...)
	return &c
}

func cloneReport(r *domain.TrendReport) *domain.TrendReport {
	c := &domain.TrendReport{
		Timestamp: r.Timestamp,
		Trends:    slices.Clone(r.Trends),
		Metadata:  maps.Clone(r.Metadata),
	}
	for i := range c.Trends {
		c.Trends[i].RelatedArticles = slices.Clone(c.Trends[i].RelatedArticles)
	}
	return c
}

func cloneProfile(p *domain.UserProfile) *domain.UserProfile {
	c := *p
	c.Interests = slices.Clone(p.Interests)
	return &c
}
