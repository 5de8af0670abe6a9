package arxiv_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/utils/logger"
)

func init() {
	logger.NewDiscardLogger()
}

const atomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query</title>
  <id>http://arxiv.org/api/query</id>
  <updated>2024-01-02T00:00:00Z</updated>
  <entry>
    <id>http://arxiv.org/abs/2401.00001v1</id>
    <updated>2024-01-01T10:00:00Z</updated>
    <published>2024-01-01T10:00:00Z</published>
    <title>Scaling Rust
      Compilers with AI</title>
    <summary>We study LLM guided optimisation.</summary>
    <author><name>Ada Lovelace</name></author>
    <author><name>Alan Turing</name></author>
    <link href="http://arxiv.org/abs/2401.00001v1" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2401.00001v1" rel="related" type="application/pdf"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2401.00002v2</id>
    <published>2024-01-01T09:00:00Z</published>
    <title>No PDF Link</title>
    <summary>Plain.</summary>
    <link href="http://arxiv.org/abs/2401.00002v2" rel="alternate" type="text/html"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/bad-id</id>
    <published>2024-01-01T08:00:00Z</published>
    <title>Broken</title>
  </entry>
</feed>`

func TestArXivGateway_FetchTopArticles(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query().Get("search_query")
		assert.Equal(t, "submittedDate", r.URL.Query().Get("sortBy"))
		assert.Equal(t, "10", r.URL.Query().Get("max_results"))
		w.Header().Set("Content-Type", "application/atom+xml")
		_, _ = w.Write([]byte(atomFeed))
	}))
	defer srv.Close()

	gw := NewArXivGateway(srv.URL, []string{"cs.AI", "cs.SE"}, "techpulse-test", srv.Client(), nil)
	articles, err := gw.FetchTopArticles(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "cat:cs.AI OR cat:cs.SE", query)

	first := articles[0]
	assert.Equal(t, "arxiv-2401.00001v1", first.ID.String())
	assert.Equal(t, "[Paper] Scaling Rust Compilers with AI", first.Title)
	assert.Equal(t, "http://arxiv.org/pdf/2401.00001v1", first.URL)
	assert.Equal(t, "Ada Lovelace", first.Author)
	assert.Equal(t, 60.0, first.Score)
	assert.Equal(t, int64(1704103200), first.Timestamp)
	assert.True(t, first.Tags.Contains("llm"))

	second := articles[1]
	assert.Equal(t, "arxiv-2401.00002v2", second.ID.String())
	assert.Equal(t, "http://arxiv.org/abs/2401.00002v2", second.URL)
	assert.Equal(t, "ArXiv", second.Author)
}

func TestArXivGateway_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	gw := NewArXivGateway(srv.URL, []string{"cs.AI"}, "", srv.Client(), nil)
	_, err := gw.FetchTopArticles(context.Background(), 5)
	assert.Error(t, err)
}

func TestArXivGateway_NoCategories(t *testing.T) {
	gw := NewArXivGateway("http://unused", nil, "", nil, nil)
	articles, err := gw.FetchTopArticles(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, articles)
}
