package calculate_trends_usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"techpulse/domain"
	"techpulse/port/article_port"
	"techpulse/port/trend_report_port"
	"techpulse/utils/logger"
	"techpulse/utils/metrics"
)

// TrendWindowSize is the number of most recent articles scanned per report.
const TrendWindowSize = 100

const scorePerMatch = 10.0

// DefaultKeywords is used when the caller supplies no keywords.
var DefaultKeywords = []string{"Rust", "AI", "Cloud", "Crypto", "Apple", "Linux"}

var tracer = otel.Tracer("techpulse/usecase/calculate_trends")

type CalculateTrendsUsecase struct {
	fetchLatestArticlesPort article_port.FetchLatestArticlesPort
	saveTrendReportPort     trend_report_port.SaveTrendReportPort
}

func NewCalculateTrendsUsecase(
	fetchLatestArticlesPort article_port.FetchLatestArticlesPort,
	saveTrendReportPort trend_report_port.SaveTrendReportPort,
) *CalculateTrendsUsecase {
	return &CalculateTrendsUsecase{
		fetchLatestArticlesPort: fetchLatestArticlesPort,
		saveTrendReportPort:     saveTrendReportPort,
	}
}

// Execute scans the latest window of articles for each keyword and appends
// the resulting report. Keywords match titles as case-insensitive substrings;
// keywords without a match are left out of the report.
func (u *CalculateTrendsUsecase) Execute(ctx context.Context, keywords []string, now int64) (*domain.TrendReport, error) {
	ctx, span := tracer.Start(ctx, "CalculateTrends")
	defer span.End()

	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	span.SetAttributes(attribute.Int("trends.keywords", len(keywords)))

	articles, err := u.fetchLatestArticlesPort.FindLatest(ctx, TrendWindowSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch latest articles")
		metrics.RecordTrendReport("failure", 0)
		logger.Logger.ErrorContext(ctx, "failed to read articles for trends", "error", err)
		return nil, fmt.Errorf("read latest articles: %w", err)
	}

	report := &domain.TrendReport{
		Timestamp: now,
		Trends:    aggregate(articles, keywords),
		Metadata:  map[string]string{},
	}

	if err := u.saveTrendReportPort.SaveReport(ctx, report); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save trend report")
		metrics.RecordTrendReport("failure", 0)
		logger.Logger.ErrorContext(ctx, "failed to save trend report", "error", err, "timestamp", now)
		return nil, fmt.Errorf("save trend report: %w", err)
	}

	metrics.RecordTrendReport("success", len(report.Trends))
	span.SetAttributes(
		attribute.Int("trends.articles_scanned", len(articles)),
		attribute.Int("trends.matched", len(report.Trends)),
	)
	logger.Logger.InfoContext(ctx, "trend report calculated",
		"articles_scanned", len(articles),
		"keywords", len(keywords),
		"trends", len(report.Trends),
		"timestamp", now)

	return report, nil
}

func aggregate(articles []*domain.Article, keywords []string) []domain.Trend {
	lowerTitles := make([]string, len(articles))
	for i, a := range articles {
		lowerTitles[i] = strings.ToLower(a.Title)
	}

	trends := make([]domain.Trend, 0, len(keywords))
	for _, keyword := range keywords {
		needle := strings.ToLower(keyword)
		trend := domain.Trend{Keyword: keyword, RelatedArticles: []domain.ArticleID{}}
		for i, a := range articles {
			if strings.Contains(lowerTitles[i], needle) {
				trend.Volume++
				trend.RelatedArticles = append(trend.RelatedArticles, a.ID)
			}
		}
		if trend.Volume == 0 {
			continue
		}
		trend.Score = float64(trend.Volume) * scorePerMatch
		trends = append(trends, trend)
	}
	return trends
}
