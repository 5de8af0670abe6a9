package domain

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
)

const (
	DefaultAuthor = "unknown"
	MaxBaseScore  = 100.0

	scoreAgeOffsetHours = 2.0
	scoreGravity        = 1.8
	hotMultiplier       = 1.2
)

type Article struct {
	ID            ArticleID `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Source        Source    `json:"source"`
	Score         float64   `json:"score"`
	Author        string    `json:"author"`
	Timestamp     int64     `json:"timestamp"`
	Tags          TagSet    `json:"tags"`
	CommentCount  uint32    `json:"comment_count"`
	IsHotOnSource bool      `json:"is_hot_on_source"`
}

// NewArticle creates an article with ingestion defaults.
func NewArticle(source Source, nativeID, title, url string, timestamp int64) (*Article, error) {
	if strings.TrimSpace(nativeID) == "" {
		return nil, newValidationError("native_id", "native ID is required")
	}
	id, err := NewArticleID(source, nativeID)
	if err != nil {
		return nil, err
	}
	return &Article{
		ID:        id,
		Title:     title,
		URL:       url,
		Source:    source,
		Score:     0,
		Author:    DefaultAuthor,
		Timestamp: timestamp,
		Tags:      NewTagSet(),
	}, nil
}

// CalculateScore returns the base score plus a comment boost, decayed by
// age in hours. Articles dated after now are treated as zero hours old.
func (a *Article) CalculateScore(now int64) float64 {
	ageHours := math.Max(0, float64(now-a.Timestamp)/3600.0)
	decay := 1.0 / math.Pow(ageHours+scoreAgeOffsetHours, scoreGravity)
	engagement := math.Log(float64(a.CommentCount) + 1.0)

	mult := 1.0
	if a.IsHotOnSource {
		mult = hotMultiplier
	}

	return (a.Score + engagement) * decay * mult
}

// NormalizeScore scales value against the count that maps to a full score.
func NormalizeScore(value, full int) float64 {
	if full <= 0 || value <= 0 {
		return 0
	}
	if value >= full {
		return MaxBaseScore
	}
	return math.Min(MaxBaseScore, math.Round(float64(value)/float64(full)*MaxBaseScore))
}

// TagSet is an unordered set of tags. It serializes as a sorted JSON array.
type TagSet map[string]struct{}

func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, t := range tags {
		set.Add(t)
	}
	return set
}

func (s TagSet) Add(tag string) {
	if tag == "" {
		return
	}
	s[tag] = struct{}{}
}

func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

func (s TagSet) Len() int { return len(s) }

// Slice returns the tags in lexical order.
func (s TagSet) Slice() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}
