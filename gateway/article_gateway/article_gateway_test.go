package article_gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/domain"
	"techpulse/driver/memory_db"
	apperrors "techpulse/utils/errors"
)

type countingStore struct {
	*memory_db.MemoryDB
	finds int
	err   error
}

func (s *countingStore) FindArticleByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	s.finds++
	if s.err != nil {
		return nil, s.err
	}
	return s.MemoryDB.FindArticleByID(ctx, id)
}

func (s *countingStore) SaveArticle(ctx context.Context, a *domain.Article) error {
	if s.err != nil {
		return s.err
	}
	return s.MemoryDB.SaveArticle(ctx, a)
}

func (s *countingStore) FindLatestArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.MemoryDB.FindLatestArticles(ctx, limit)
}

func newArticle(t *testing.T, id string, ts int64) *domain.Article {
	t.Helper()
	a, err := domain.NewArticle(domain.HackerNews(), id, "Title "+id, "https://example.com", ts)
	require.NoError(t, err)
	a.Tags.Add("go")
	return a
}

func TestArticleGateway_SaveAndFindUsesCache(t *testing.T) {
	store := &countingStore{MemoryDB: memory_db.NewMemoryDB()}
	gw, err := NewArticleGateway(store, 8, time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	a := newArticle(t, "1", 100)
	require.NoError(t, gw.Save(ctx, a))

	got, err := gw.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.Equal(t, 0, store.finds)

	got.Tags.Add("mutated")
	again, err := gw.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, again.Tags.Contains("mutated"))
}

func TestArticleGateway_MissIsNotCached(t *testing.T) {
	store := &countingStore{MemoryDB: memory_db.NewMemoryDB()}
	gw, err := NewArticleGateway(store, 8, time.Minute)
	require.NoError(t, err)

	id := domain.ArticleIDFromPersisted("hn-404")
	for i := 0; i < 2; i++ {
		got, err := gw.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	assert.Equal(t, 2, store.finds)
}

func TestArticleGateway_NoCache(t *testing.T) {
	store := &countingStore{MemoryDB: memory_db.NewMemoryDB()}
	gw, err := NewArticleGateway(store, 0, time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	a := newArticle(t, "1", 100)
	require.NoError(t, gw.Save(ctx, a))
	_, err = gw.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, store.finds)
}

func TestArticleGateway_FindLatest(t *testing.T) {
	gw, err := NewArticleGateway(memory_db.NewMemoryDB(), 0, time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, gw.Save(ctx, newArticle(t, "1", 100)))
	require.NoError(t, gw.Save(ctx, newArticle(t, "2", 300)))
	require.NoError(t, gw.Save(ctx, newArticle(t, "3", 200)))

	latest, err := gw.FindLatest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "hn-2", latest[0].ID.String())
	assert.Equal(t, "hn-3", latest[1].ID.String())

	none, err := gw.FindLatest(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestArticleGateway_WrapsStoreErrors(t *testing.T) {
	store := &countingStore{MemoryDB: memory_db.NewMemoryDB(), err: errors.New("disk full")}
	gw, err := NewArticleGateway(store, 8, time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	checks := map[string]error{}
	checks["save"] = gw.Save(ctx, newArticle(t, "1", 1))
	_, checks["find"] = gw.FindByID(ctx, domain.ArticleIDFromPersisted("hn-1"))
	_, checks["latest"] = gw.FindLatest(ctx, 5)

	for name, err := range checks {
		t.Run(name, func(t *testing.T) {
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrRepository)
			var appErr *apperrors.AppContextError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.CodeDatabase, appErr.Code)
			assert.ErrorContains(t, err, "disk full")
		})
	}
}

func TestArticleGateway_SaveNil(t *testing.T) {
	gw, err := NewArticleGateway(memory_db.NewMemoryDB(), 0, time.Minute)
	require.NoError(t, err)
	assert.ErrorIs(t, gw.Save(context.Background(), nil), domain.ErrValidation)
}

func TestArticleGateway_CachedEntryExpires(t *testing.T) {
	store := &countingStore{MemoryDB: memory_db.NewMemoryDB()}
	gw, err := NewArticleGateway(store, 8, 20*time.Millisecond)
	require.NoError(t, err)
	ctx := context.Background()

	a := newArticle(t, "1", 100)
	require.NoError(t, gw.Save(ctx, a))

	// a write that bypasses this gateway, as another process would make
	updated := newArticle(t, "1", 100)
	updated.Title = "Title 1 (updated)"
	require.NoError(t, store.MemoryDB.SaveArticle(ctx, updated))

	assert.Eventually(t, func() bool {
		got, err := gw.FindByID(ctx, a.ID)
		return err == nil && got != nil && got.Title == "Title 1 (updated)"
	}, time.Second, 10*time.Millisecond)
}
