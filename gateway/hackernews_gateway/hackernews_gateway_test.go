package hackernews_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/domain"
	apperrors "techpulse/utils/errors"
	"techpulse/utils/logger"
)

func init() {
	logger.NewDiscardLogger()
}

func newHNServer(t *testing.T, items map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[101, 102, 103, 104, 105, 106]`))
	})
	mux.HandleFunc("/item/", func(w http.ResponseWriter, r *http.Request) {
		body, ok := items[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(body))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHackerNewsGateway_FetchTopArticles(t *testing.T) {
	srv := newHNServer(t, map[string]string{
		"/item/101.json": `{"id":101,"type":"story","by":"pg","title":"Rust 2.0 &amp; AI","url":"https://example.com/rust","time":1700000000,"score":450,"descendants":120}`,
		"/item/102.json": `{"id":102,"type":"story","by":"x","time":1700000001,"score":10}`,
		"/item/103.json": `{"id":103,"type":"story","title":"Ask HN: Linux laptops?","score":12}`,
		"/item/105.json": `null`,
		"/item/106.json": `{"id":106,"title":"Dead","dead":true}`,
	})

	gw := NewHackerNewsGateway(srv.URL, "techpulse-test", 3, srv.Client(), nil)
	assert.Equal(t, "hackernews", gw.Name())

	articles, err := gw.FetchTopArticles(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "hn-101", first.ID.String())
	assert.Equal(t, "Rust 2.0 & AI", first.Title)
	assert.Equal(t, "https://example.com/rust", first.URL)
	assert.Equal(t, "pg", first.Author)
	assert.Equal(t, int64(1700000000), first.Timestamp)
	assert.Equal(t, uint32(120), first.CommentCount)
	assert.Equal(t, 90.0, first.Score)
	assert.True(t, first.IsHotOnSource)
	assert.True(t, first.Tags.Contains("rust"))
	assert.Equal(t, domain.HackerNews(), first.Source)

	second := articles[1]
	assert.Equal(t, "hn-103", second.ID.String())
	assert.Equal(t, "https://news.ycombinator.com/item?id=103", second.URL)
	assert.Equal(t, int64(0), second.Timestamp)
	assert.Equal(t, domain.DefaultAuthor, second.Author)
	assert.False(t, second.IsHotOnSource)
}

func TestHackerNewsGateway_RespectsLimit(t *testing.T) {
	srv := newHNServer(t, map[string]string{
		"/item/101.json": `{"id":101,"title":"One"}`,
		"/item/102.json": `{"id":102,"title":"Two"}`,
	})
	gw := NewHackerNewsGateway(srv.URL, "", 2, srv.Client(), nil)

	articles, err := gw.FetchTopArticles(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "hn-101", articles[0].ID.String())

	none, err := gw.FetchTopArticles(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHackerNewsGateway_ScoreCapped(t *testing.T) {
	article, err := toArticle(&hnItem{ID: 1, Title: "Huge", Score: 4000})
	require.NoError(t, err)
	assert.Equal(t, 100.0, article.Score)
}

func TestHackerNewsGateway_IndexFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := NewHackerNewsGateway(srv.URL, "", 2, srv.Client(), nil)
	_, err := gw.FetchTopArticles(context.Background(), 5)
	require.Error(t, err)

	var appErr *apperrors.AppContextError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeExternalAPI, appErr.Code)

	var httpErr *domain.ExternalHTTPError
	assert.ErrorAs(t, err, &httpErr)
}

func TestHackerNewsGateway_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	gw := NewHackerNewsGateway(srv.URL, "", 2, srv.Client(), nil)
	_, err := gw.FetchTopArticles(context.Background(), 5)

	var appErr *apperrors.AppContextError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeRateLimit, appErr.Code)
	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPStatusCode())
	assert.True(t, appErr.IsRetryable())
}
