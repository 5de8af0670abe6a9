// Package contract holds the behaviour every storage driver must share.
package contract

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/domain"
)

// Store is the method set every storage driver exposes.
type Store interface {
	SaveArticle(ctx context.Context, article *domain.Article) error
	FindArticleByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error)
	FindLatestArticles(ctx context.Context, limit int) ([]*domain.Article, error)
	SaveTrendReport(ctx context.Context, report *domain.TrendReport) error
	FindLatestTrendReport(ctx context.Context) (*domain.TrendReport, error)
	SaveTimelineEvent(ctx context.Context, event *domain.TimelineEvent) error
	ListTimelineEvents(ctx context.Context) ([]*domain.TimelineEvent, error)
	SaveUserProfile(ctx context.Context, profile *domain.UserProfile) error
	FindUserProfileByID(ctx context.Context, id string) (*domain.UserProfile, error)
}

// RunStoreContract runs the shared behaviour checks. newStore must return an
// empty store for every call.
func RunStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("FindLatestArticles caps and orders", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		for i, ts := range []int64{300, 100, 500, 200, 400} {
			require.NoError(t, store.SaveArticle(ctx, article(t, fmt.Sprintf("%d", i), ts)))
		}

		got, err := store.FindLatestArticles(ctx, 3)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []int64{500, 400, 300}, timestamps(got))

		all, err := store.FindLatestArticles(ctx, 50)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("FindLatestArticles breaks timestamp ties by id", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.SaveArticle(ctx, article(t, "b", 100)))
		require.NoError(t, store.SaveArticle(ctx, article(t, "a", 100)))
		require.NoError(t, store.SaveArticle(ctx, article(t, "c", 100)))

		got, err := store.FindLatestArticles(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "hn-a", got[0].ID.String())
		assert.Equal(t, "hn-b", got[1].ID.String())
		assert.Equal(t, "hn-c", got[2].ID.String())
	})

	t.Run("FindLatestArticles with non-positive limit", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		require.NoError(t, store.SaveArticle(ctx, article(t, "1", 1)))

		got, err := store.FindLatestArticles(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("SaveArticle replaces every field", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		original := article(t, "42", 100)
		original.Tags.Add("old")
		original.CommentCount = 7
		original.IsHotOnSource = true
		require.NoError(t, store.SaveArticle(ctx, original))

		replacement := article(t, "42", 200)
		replacement.Title = "Replaced"
		replacement.URL = "https://example.com/replaced"
		replacement.Score = 55.5
		replacement.Author = "someone"
		replacement.Tags.Add("new")
		require.NoError(t, store.SaveArticle(ctx, replacement))

		got, err := store.FindArticleByID(ctx, replacement.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, replacement, got)

		all, err := store.FindLatestArticles(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("FindArticleByID round-trips and misses", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		a, err := domain.NewArticle(domain.Reddit("golang"), "9", "Generics", "https://example.com/9", 1234)
		require.NoError(t, err)
		a.Tags.Add("go")
		a.Tags.Add("generics")
		require.NoError(t, store.SaveArticle(ctx, a))

		got, err := store.FindArticleByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a, got)
		assert.Equal(t, domain.Reddit("golang"), got.Source)

		missing, err := store.FindArticleByID(ctx, domain.ArticleIDFromPersisted("hn-missing"))
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("FindLatestTrendReport is nil when empty", func(t *testing.T) {
		store := newStore(t)
		got, err := store.FindLatestTrendReport(context.Background())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("FindLatestTrendReport picks max timestamp ascending inserts", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.SaveTrendReport(ctx, report(100, "Rust")))
		require.NoError(t, store.SaveTrendReport(ctx, report(200, "AI")))

		got, err := store.FindLatestTrendReport(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, report(200, "AI"), got)
	})

	t.Run("FindLatestTrendReport picks max timestamp descending inserts", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.SaveTrendReport(ctx, report(200, "AI")))
		require.NoError(t, store.SaveTrendReport(ctx, report(100, "Rust")))

		got, err := store.FindLatestTrendReport(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(200), got.Timestamp)
	})

	t.Run("FindLatestTrendReport prefers last saved on equal timestamps", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.SaveTrendReport(ctx, report(100, "First")))
		require.NoError(t, store.SaveTrendReport(ctx, report(100, "Second")))

		got, err := store.FindLatestTrendReport(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		_, ok := got.FindTrend("Second")
		assert.True(t, ok)
	})

	t.Run("timeline events upsert and list newest first", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.SaveTimelineEvent(ctx, event(t, "b", "2020-01-01", "B")))
		require.NoError(t, store.SaveTimelineEvent(ctx, event(t, "a", "2020-01-01", "A")))
		require.NoError(t, store.SaveTimelineEvent(ctx, event(t, "c", "2021-06-01", "C")))
		require.NoError(t, store.SaveTimelineEvent(ctx, event(t, "b", "2019-01-01", "B2")))

		got, err := store.ListTimelineEvents(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].ID, got[1].ID, got[2].ID})
		assert.Equal(t, "B2", got[2].Title)
		assert.Equal(t, "2019-01-01", got[2].DateString())
	})

	t.Run("user profiles save and find", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		profile := &domain.UserProfile{
			ID:          "u1",
			DisplayName: "Ada",
			Interests:   []string{"rust", "go"},
			CreatedAt:   time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		}
		require.NoError(t, store.SaveUserProfile(ctx, profile))

		got, err := store.FindUserProfileByID(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, profile.DisplayName, got.DisplayName)
		assert.Equal(t, profile.Interests, got.Interests)
		assert.True(t, profile.CreatedAt.Equal(got.CreatedAt))

		missing, err := store.FindUserProfileByID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func article(t *testing.T, nativeID string, ts int64) *domain.Article {
	t.Helper()
	a, err := domain.NewArticle(domain.HackerNews(), nativeID, "Title "+nativeID, "https://example.com/"+nativeID, ts)
	require.NoError(t, err)
	return a
}

func report(ts int64, keyword string) *domain.TrendReport {
	return &domain.TrendReport{
		Timestamp: ts,
		Trends: []domain.Trend{{
			Keyword:         keyword,
			Score:           10,
			Volume:          1,
			Velocity:        0,
			RelatedArticles: []domain.ArticleID{domain.ArticleIDFromPersisted("hn-1")},
		}},
		Metadata: map[string]string{"window": "100"},
	}
}

func event(t *testing.T, id, date, title string) *domain.TimelineEvent {
	t.Helper()
	e, err := domain.NewTimelineEvent(id, title, date, "description", "release", 5)
	require.NoError(t, err)
	return e
}

func timestamps(articles []*domain.Article) []int64 {
	out := make([]int64, len(articles))
	for i, a := range articles {
		out[i] = a.Timestamp
	}
	return out
}
