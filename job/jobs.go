package job

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"techpulse/domain"
	"techpulse/utils/logger"
	"techpulse/utils/otel"
)

type articleIngester interface {
	Execute(ctx context.Context, limit int) (int, error)
}

type trendRefresher interface {
	Execute(ctx context.Context, keywords []string, now int64) (*domain.TrendReport, error)
}

const (
	IngestJobName = "ingest_articles"
	TrendJobName  = "refresh_trends"
)

func IngestJob(spec string, timeout time.Duration, limit int, ingester articleIngester) Job {
	return Job{
		Name:       IngestJobName,
		Spec:       spec,
		Timeout:    timeout,
		RunOnStart: true,
		Fn: func(ctx context.Context) error {
			n, err := ingester.Execute(ctx, limit)
			if err != nil {
				return err
			}
			if m := otel.Metrics; m != nil {
				m.ArticlesPerRun.Record(ctx, int64(n), metric.WithAttributes(attribute.String("job", IngestJobName)))
			}
			logger.FromContext(ctx).Info("scheduled ingestion finished", "fetched", n)
			return nil
		},
	}
}

// TrendJob recomputes the report with keywords; nil keywords use the default set.
func TrendJob(spec string, timeout time.Duration, keywords []string, refresher trendRefresher, now func() time.Time) Job {
	if now == nil {
		now = time.Now
	}
	return Job{
		Name:    TrendJobName,
		Spec:    spec,
		Timeout: timeout,
		Fn: func(ctx context.Context) error {
			report, err := refresher.Execute(ctx, keywords, now().Unix())
			if err != nil {
				return err
			}
			if m := otel.Metrics; m != nil {
				m.TrendsPerRun.Record(ctx, int64(len(report.Trends)), metric.WithAttributes(attribute.String("job", TrendJobName)))
			}
			return nil
		},
	}
}
