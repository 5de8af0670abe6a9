package reddit_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/domain"
	"techpulse/utils/logger"
)

func init() {
	logger.NewDiscardLogger()
}

const golangListing = `{"data":{"children":[
  {"data":{"id":"p1","title":"Go 1.30 released","url":"https://go.dev/blog","author":"gopher","subreddit":"golang","score":1000,"num_comments":87,"created_utc":1700000000.0,"stickied":false}},
  {"data":{"id":"p0","title":"Weekly thread","stickied":true}},
  {"data":{"id":"p2","title":"","stickied":false}},
  {"data":{"id":"","title":"Post without id","stickied":false}}
]}}`

const rustListing = `{"data":{"children":[
  {"data":{"id":"r1","title":"Rust in the kernel","url":"https://lwn.net","author":"crab","subreddit":"rust","score":250,"num_comments":3,"created_utc":1700000500.5}}
]}}`

func newRedditServer(t *testing.T, limits *sync.Map) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/r/golang/hot.json":
			limits.Store("golang", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(golangListing))
		case "/r/rust/hot.json":
			limits.Store("rust", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(rustListing))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRedditGateway_FetchTopArticles(t *testing.T) {
	limits := &sync.Map{}
	srv := newRedditServer(t, limits)

	gw := NewRedditGateway(srv.URL, "techpulse-test", []string{"golang", "rust"}, time.Second, nil)
	articles, err := gw.FetchTopArticles(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	golangLimit, _ := limits.Load("golang")
	rustLimit, _ := limits.Load("rust")
	assert.Equal(t, "3", golangLimit)
	assert.Equal(t, "3", rustLimit)

	goPost := articles[0]
	assert.Equal(t, "rd-golang-p1", goPost.ID.String())
	assert.Equal(t, domain.Reddit("golang"), goPost.Source)
	assert.Equal(t, 100.0, goPost.Score)
	assert.Equal(t, uint32(87), goPost.CommentCount)
	assert.Equal(t, "gopher", goPost.Author)
	assert.Equal(t, int64(1700000000), goPost.Timestamp)
	assert.True(t, goPost.Tags.Contains("go"))
	assert.True(t, goPost.Tags.Contains("released"))

	rustPost := articles[1]
	assert.Equal(t, "rd-rust-r1", rustPost.ID.String())
	assert.Equal(t, 50.0, rustPost.Score)
	assert.Equal(t, int64(1700000500), rustPost.Timestamp)
}

func TestRedditGateway_SkipsFailingSubreddit(t *testing.T) {
	srv := newRedditServer(t, &sync.Map{})

	gw := NewRedditGateway(srv.URL, "", []string{"golang", "missing"}, time.Second, nil)
	articles, err := gw.FetchTopArticles(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "rd-golang-p1", articles[0].ID.String())
}

func TestRedditGateway_AllSubredditsFail(t *testing.T) {
	srv := newRedditServer(t, &sync.Map{})

	gw := NewRedditGateway(srv.URL, "", []string{"missing", "gone"}, time.Second, nil)
	_, err := gw.FetchTopArticles(context.Background(), 4)
	assert.Error(t, err)
}

func TestRedditGateway_TruncatesToLimit(t *testing.T) {
	limits := &sync.Map{}
	srv := newRedditServer(t, limits)

	gw := NewRedditGateway(srv.URL, "techpulse-test", []string{"golang", "rust"}, time.Second, nil)
	articles, err := gw.FetchTopArticles(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "rd-golang-p1", articles[0].ID.String())

	golangLimit, _ := limits.Load("golang")
	assert.Equal(t, "1", golangLimit)
}
