package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArticle(t *testing.T, ts int64) *Article {
	t.Helper()
	a, err := NewArticle(HackerNews(), "1", "Title", "https://example.com", ts)
	require.NoError(t, err)
	return a
}

func TestNewArticle_Defaults(t *testing.T) {
	a := newTestArticle(t, 1700000000)

	assert.Equal(t, "hn-1", a.ID.String())
	assert.Equal(t, 0.0, a.Score)
	assert.Equal(t, "unknown", a.Author)
	assert.Equal(t, 0, a.Tags.Len())
	assert.Equal(t, uint32(0), a.CommentCount)
	assert.False(t, a.IsHotOnSource)
}

func TestNewArticle_InvalidID(t *testing.T) {
	for _, nativeID := range []string{"1-2", "", "   "} {
		_, err := NewArticle(HackerNews(), nativeID, "Title", "", 0)
		assert.ErrorIs(t, err, ErrValidation, "native id %q", nativeID)
	}
}

func TestNewArticle_IDRoundTrips(t *testing.T) {
	a, err := NewArticle(Reddit("golang"), "abc", "Title", "", 0)
	require.NoError(t, err)

	parsed, err := ParseArticleID(a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, a.ID, parsed)
}

func TestCalculateScore_Formula(t *testing.T) {
	a := newTestArticle(t, 0)
	a.Score = 50
	a.CommentCount = 9
	a.IsHotOnSource = true

	now := int64(3 * 3600)
	want := (50 + math.Log(10)) * (1 / math.Pow(3+2.0, 1.8)) * 1.2
	assert.InDelta(t, want, a.CalculateScore(now), 1e-12)
}

func TestCalculateScore_NonIncreasingWithAge(t *testing.T) {
	a := newTestArticle(t, 0)
	a.Score = 80
	a.CommentCount = 25

	prev := a.CalculateScore(0)
	for hours := int64(1); hours <= 72; hours++ {
		cur := a.CalculateScore(hours * 3600)
		assert.LessOrEqual(t, cur, prev, "hour %d", hours)
		prev = cur
	}
}

func TestCalculateScore_FutureTimestampClampsToZeroAge(t *testing.T) {
	a := newTestArticle(t, 10000)
	a.Score = 30

	atPublish := a.CalculateScore(a.Timestamp)
	assert.Equal(t, atPublish, a.CalculateScore(a.Timestamp-7200))
	assert.Equal(t, atPublish, a.CalculateScore(0))
}

func TestCalculateScore_EngagementAndHotBoost(t *testing.T) {
	base := newTestArticle(t, 0)
	base.Score = 10
	now := int64(5 * 3600)

	withComments := *base
	withComments.CommentCount = 40
	assert.Greater(t, withComments.CalculateScore(now), base.CalculateScore(now))

	hot := withComments
	hot.IsHotOnSource = true
	assert.Greater(t, hot.CalculateScore(now), withComments.CalculateScore(now))
}

func TestNormalizeScore(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeScore(0, 1000))
	assert.Equal(t, 50.0, NormalizeScore(500, 1000))
	assert.Equal(t, 100.0, NormalizeScore(1000, 1000))
	assert.Equal(t, 100.0, NormalizeScore(5000, 500))
	assert.Equal(t, 0.0, NormalizeScore(10, 0))
}

func TestTagSet_JSON(t *testing.T) {
	tags := NewTagSet("rust", "ai", "rust", "")
	assert.Equal(t, 2, tags.Len())

	payload, err := json.Marshal(tags)
	require.NoError(t, err)
	assert.JSONEq(t, `["ai","rust"]`, string(payload))

	var decoded TagSet
	require.NoError(t, json.Unmarshal([]byte(`["go","go","wasm"]`), &decoded))
	assert.True(t, decoded.Contains("go"))
	assert.True(t, decoded.Contains("wasm"))
	assert.Equal(t, 2, decoded.Len())
}
