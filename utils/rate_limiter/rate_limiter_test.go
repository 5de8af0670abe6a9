package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRateLimiter_WaitForHost(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		wantErr bool
	}{
		{name: "https url", rawURL: "https://hacker-news.firebaseio.com/v0/topstories.json"},
		{name: "http url with query", rawURL: "http://export.arxiv.org/api/query?x=1"},
		{name: "no host", rawURL: "not-a-url", wantErr: true},
		{name: "empty", rawURL: "", wantErr: true},
	}

	limiter := NewHostRateLimiter(10 * time.Millisecond)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := limiter.WaitForHost(context.Background(), tt.rawURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHostRateLimiter_SpacesSameHost(t *testing.T) {
	limiter := NewHostRateLimiter(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://example.com/a"))
	require.NoError(t, limiter.WaitForHost(ctx, "https://example.com/b"))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)

	start = time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://other.example.com/"))
	assert.Less(t, time.Since(start), 40*time.Millisecond)
}

func TestHostRateLimiter_Disabled(t *testing.T) {
	limiter := NewHostRateLimiter(0)
	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.WaitForHost(context.Background(), "https://example.com"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, limiter.WaitForHost(ctx, "https://example.com"), context.Canceled)
}

func TestHostRateLimiter_CanceledWhileWaiting(t *testing.T) {
	limiter := NewHostRateLimiter(time.Hour)
	require.NoError(t, limiter.WaitForHost(context.Background(), "https://example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, limiter.WaitForHost(ctx, "https://example.com"))
}
