package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "techpulse"

// Metrics holds the OTel instruments used by scheduled jobs.
var Metrics *JobMetrics

type JobMetrics struct {
	JobRunsTotal   metric.Int64Counter
	JobErrorsTotal metric.Int64Counter
	JobDuration    metric.Float64Histogram
	ArticlesPerRun metric.Int64Histogram
	TrendsPerRun   metric.Int64Histogram
}

// InitMetrics creates the instruments from the current global meter provider.
func InitMetrics() error {
	m, err := NewJobMetrics(otel.Meter(meterName))
	if err != nil {
		return err
	}
	Metrics = m
	return nil
}

func NewJobMetrics(meter metric.Meter) (*JobMetrics, error) {
	runs, err := meter.Int64Counter("techpulse_job_runs",
		metric.WithDescription("Total number of scheduled job runs"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("techpulse_job_errors",
		metric.WithDescription("Total number of failed scheduled job runs"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("techpulse_job_duration",
		metric.WithDescription("Scheduled job duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	articles, err := meter.Int64Histogram("techpulse_job_articles",
		metric.WithDescription("Articles ingested per job run"),
	)
	if err != nil {
		return nil, err
	}

	trends, err := meter.Int64Histogram("techpulse_job_trends",
		metric.WithDescription("Trends found per job run"),
	)
	if err != nil {
		return nil, err
	}

	return &JobMetrics{
		JobRunsTotal:   runs,
		JobErrorsTotal: errs,
		JobDuration:    duration,
		ArticlesPerRun: articles,
		TrendsPerRun:   trends,
	}, nil
}
