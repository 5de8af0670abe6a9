package domain

// Trend aggregates how often a keyword appeared in a window of articles.
type Trend struct {
	Keyword         string      `json:"keyword"`
	Score           float64     `json:"score"`
	Volume          uint32      `json:"volume"`
	Velocity        float64     `json:"velocity"`
	RelatedArticles []ArticleID `json:"related_articles"`
}

type TrendReport struct {
	Timestamp int64             `json:"timestamp"`
	Trends    []Trend           `json:"trends"`
	Metadata  map[string]string `json:"metadata"`
}

// FindTrend returns the trend for keyword, if present.
func (r *TrendReport) FindTrend(keyword string) (Trend, bool) {
	for _, t := range r.Trends {
		if t.Keyword == keyword {
			return t, true
		}
	}
	return Trend{}, false
}
