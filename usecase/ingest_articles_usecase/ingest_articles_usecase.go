package ingest_articles_usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"techpulse/port/article_port"
	"techpulse/port/source_article_port"
	"techpulse/utils/logger"
	"techpulse/utils/metrics"
)

var tracer = otel.Tracer("techpulse/usecase/ingest_articles")

type IngestArticlesUsecase struct {
	sourcePort      source_article_port.SourceArticlePort
	saveArticlePort article_port.SaveArticlePort
}

func NewIngestArticlesUsecase(
	sourcePort source_article_port.SourceArticlePort,
	saveArticlePort article_port.SaveArticlePort,
) *IngestArticlesUsecase {
	return &IngestArticlesUsecase{
		sourcePort:      sourcePort,
		saveArticlePort: saveArticlePort,
	}
}

// Execute fetches up to limit articles and saves them one by one. It returns
// the number fetched. The first save error stops the run; articles saved
// before it stay saved.
func (u *IngestArticlesUsecase) Execute(ctx context.Context, limit int) (int, error) {
	ctx = logger.WithOperation(ctx, "ingest_articles")
	ctx, span := tracer.Start(ctx, "IngestArticles")
	defer span.End()
	span.SetAttributes(
		attribute.Int("ingest.limit", limit),
		attribute.String("ingest.source", u.sourcePort.Name()),
	)
	start := time.Now()

	articles, err := u.sourcePort.FetchTopArticles(ctx, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch top articles")
		logger.FromContext(ctx).Error("failed to fetch articles", "source", u.sourcePort.Name(), "error", err)
		return 0, fmt.Errorf("fetch top articles from %s: %w", u.sourcePort.Name(), err)
	}

	for i, article := range articles {
		if err := u.saveArticlePort.Save(ctx, article); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "save article")
			metrics.RecordIngested("saved", i)
			metrics.RecordIngested("failed", 1)
			logger.FromContext(ctx).Error("failed to save article",
				"article_id", article.ID.String(),
				"saved", i,
				"error", err)
			return 0, fmt.Errorf("save article %s: %w", article.ID, err)
		}
	}

	metrics.RecordIngested("saved", len(articles))
	span.SetAttributes(attribute.Int("ingest.fetched", len(articles)))
	logger.FromContext(ctx).Info("ingestion completed",
		"source", u.sourcePort.Name(),
		"fetched", len(articles),
		"duration_ms", time.Since(start).Milliseconds())

	return len(articles), nil
}
