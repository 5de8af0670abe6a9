package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"techpulse/config"
	"techpulse/di"
	"techpulse/domain"
	"techpulse/mocks"
	"techpulse/utils/logger"
)

func init() {
	logger.NewDiscardLogger()
}

type testServer struct {
	e      *echo.Echo
	source *mocks.MockSourceArticlePort
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{RequestTimeout: 5 * time.Second},
		Database: config.DatabaseConfig{Driver: di.DriverMemory},
		Ingest:   config.IngestConfig{Limit: 10, JobTimeout: time.Second},
		Cache:    config.CacheConfig{ArticleLRUSize: 8, ReportTTL: time.Minute},
		Feed:     config.FeedConfig{DefaultLimit: 30, MaxLimit: 100},
	}

	ctrl := gomock.NewController(t)
	source := mocks.NewMockSourceArticlePort(ctrl)
	source.EXPECT().Name().Return("fake").AnyTimes()

	container, err := di.NewApplicationComponentsWithSource(context.Background(), cfg, source)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	e := echo.New()
	RegisterRoutes(e, container, cfg)
	return &testServer{e: e, source: source}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func articles(t *testing.T) []*domain.Article {
	t.Helper()
	now := time.Now().Unix()
	a, err := domain.NewArticle(domain.HackerNews(), "100", "Rust 2.0 announced", "https://example.com/rust", now-3600)
	require.NoError(t, err)
	a.Score = 90
	a.Tags.Add("rust")
	b, err := domain.NewArticle(domain.Reddit("golang"), "abc", "Go generics deep dive", "https://example.com/go", now-60)
	require.NoError(t, err)
	b.Score = 10
	b.Tags.Add("go")
	return []*domain.Article{a, b}
}

func (s *testServer) ingest(t *testing.T) {
	t.Helper()
	s.source.EXPECT().FetchTopArticles(gomock.Any(), 2).Return(articles(t), nil)
	rec := s.do(t, http.MethodPost, "/v1/ingest", `{"limit":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestIngest(t *testing.T) {
	s := newTestServer(t)

	t.Run("runs ingestion", func(t *testing.T) {
		s.source.EXPECT().FetchTopArticles(gomock.Any(), 2).Return(articles(t), nil)
		rec := s.do(t, http.MethodPost, "/v1/ingest", `{"limit":2}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"fetched":2,"source":"fake"}`, rec.Body.String())
	})

	t.Run("limit out of range", func(t *testing.T) {
		for _, body := range []string{`{"limit":0}`, `{"limit":501}`, `{}`} {
			rec := s.do(t, http.MethodPost, "/v1/ingest", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/v1/ingest", `{"limit":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unclassified failure is internal without detail", func(t *testing.T) {
		s.source.EXPECT().FetchTopArticles(gomock.Any(), 5).Return(nil, &domain.ExternalHTTPError{StatusCode: 503, URL: "https://secret.internal/topstories"})
		rec := s.do(t, http.MethodPost, "/v1/ingest", `{"limit":5}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret.internal")
	})
}

func TestFeed(t *testing.T) {
	s := newTestServer(t)
	s.ingest(t)

	t.Run("chronological", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/v1/feed?limit=1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[struct {
			Articles []domain.Article `json:"articles"`
			Count    int              `json:"count"`
		}](t, rec)
		require.Equal(t, 1, body.Count)
		assert.Equal(t, "rd-golang-abc", body.Articles[0].ID.String())
	})

	t.Run("ranked puts the stronger base score first", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/v1/feed?ranked=true", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[struct {
			Articles []struct {
				Article   domain.Article `json:"article"`
				RankScore float64        `json:"rank_score"`
			} `json:"articles"`
		}](t, rec)
		require.Len(t, body.Articles, 2)
		assert.Equal(t, "hn-100", body.Articles[0].Article.ID.String())
		assert.Greater(t, body.Articles[0].RankScore, body.Articles[1].RankScore)
	})

	t.Run("bad params", func(t *testing.T) {
		for _, q := range []string{"limit=abc", "limit=-1", "ranked=maybe"} {
			rec := s.do(t, http.MethodGet, "/v1/feed?"+q, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		}
	})
}

func TestFetchArticle(t *testing.T) {
	s := newTestServer(t)
	s.ingest(t)

	rec := s.do(t, http.MethodGet, "/v1/articles/hn-100", "")
	require.Equal(t, http.StatusOK, rec.Code)
	article := decode[domain.Article](t, rec)
	assert.Equal(t, "Rust 2.0 announced", article.Title)
	assert.True(t, article.Tags.Contains("rust"))

	rec = s.do(t, http.MethodGet, "/v1/articles/hn-999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")

	rec = s.do(t, http.MethodGet, "/v1/articles/nodash", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrends(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/trends/latest", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	s.ingest(t)

	rec = s.do(t, http.MethodPost, "/v1/trends", `{"keywords":["rust","python"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	report := decode[domain.TrendReport](t, rec)
	require.Len(t, report.Trends, 1)
	assert.Equal(t, "rust", report.Trends[0].Keyword)
	assert.Equal(t, uint32(1), report.Trends[0].Volume)
	assert.Equal(t, 10.0, report.Trends[0].Score)

	rec = s.do(t, http.MethodGet, "/v1/trends/latest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	latest := decode[domain.TrendReport](t, rec)
	assert.Equal(t, report.Timestamp, latest.Timestamp)

	t.Run("empty body uses default keywords", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/v1/trends", `{}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		report := decode[domain.TrendReport](t, rec)
		_, ok := report.FindTrend("Rust")
		assert.True(t, ok)
	})

	t.Run("blank keyword rejected", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/v1/trends", `{"keywords":[""]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTimeline(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/v1/timeline", `{"id":"go1","title":"Go 1.0","date":"2012-03-28","category":"language","importance_score":9}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"date":"2012-03-28"`)

	rec = s.do(t, http.MethodPost, "/v1/timeline", `{"title":"Rust 1.0","date":"2015-05-15"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/timeline", `{"title":"bad","date":"28/03/2012"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")

	rec = s.do(t, http.MethodGet, "/v1/timeline", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Events []timelineEventResponse `json:"events"`
		Count  int                     `json:"count"`
	}](t, rec)
	require.Equal(t, 2, body.Count)
	assert.Equal(t, "Rust 1.0", body.Events[0].Title)
	assert.Equal(t, "go1", body.Events[1].ID)
}

func TestUsers(t *testing.T) {
	s := newTestServer(t)
	s.ingest(t)

	rec := s.do(t, http.MethodPost, "/v1/users", `{"display_name":"Ada","interests":["Rust"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	profile := decode[domain.UserProfile](t, rec)
	require.NotEmpty(t, profile.ID)
	assert.Equal(t, []string{"rust"}, profile.Interests)

	rec = s.do(t, http.MethodGet, "/v1/users/"+profile.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, profile.ID, decode[domain.UserProfile](t, rec).ID)

	rec = s.do(t, http.MethodGet, "/v1/users/"+profile.ID+"/feed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	feed := decode[struct {
		Articles []domain.Article `json:"articles"`
	}](t, rec)
	require.Len(t, feed.Articles, 1)
	assert.Equal(t, "hn-100", feed.Articles[0].ID.String())

	rec = s.do(t, http.MethodGet, "/v1/users/nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/v1/health", "")

	rec := s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "techpulse_http_requests_total")
}
