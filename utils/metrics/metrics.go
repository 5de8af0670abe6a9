// Package metrics provides Prometheus metrics for techpulse.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "techpulse"

var (
	// ArticlesIngestedTotal counts articles handled by ingestion runs.
	ArticlesIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_ingested_total",
			Help:      "Total number of articles fetched and saved by ingestion",
		},
		[]string{"status"},
	)

	// SourceFetchTotal counts upstream fetches by source.
	SourceFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_fetch_total",
			Help:      "Total number of upstream source fetches",
		},
		[]string{"source", "status"},
	)

	// SourceFetchDuration measures upstream fetch duration.
	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_fetch_duration_seconds",
			Help:      "Duration of upstream source fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// SourceItemsSkipped counts upstream items dropped during conversion.
	SourceItemsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_items_skipped_total",
			Help:      "Total number of upstream items skipped",
		},
		[]string{"source", "reason"},
	)

	// TrendReportsTotal counts trend aggregation runs.
	TrendReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trend_reports_total",
			Help:      "Total number of trend reports computed",
		},
		[]string{"status"},
	)

	// TrendsPerReport observes how many keywords matched per report.
	TrendsPerReport = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trends_per_report",
			Help:      "Distribution of matched keywords per trend report",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		},
	)

	// CacheRequestsTotal counts cache lookups by cache and result.
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Total number of cache lookups",
		},
		[]string{"cache", "result"},
	)

	// HTTPRequestsTotal counts REST requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures REST request duration.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordSourceFetch records one upstream fetch.
func RecordSourceFetch(source, status string, duration float64) {
	SourceFetchTotal.WithLabelValues(source, status).Inc()
	SourceFetchDuration.WithLabelValues(source).Observe(duration)
}

// RecordSkippedItem records an upstream item dropped for reason.
func RecordSkippedItem(source, reason string) {
	SourceItemsSkipped.WithLabelValues(source, reason).Inc()
}

// RecordIngested records count articles with the given status.
func RecordIngested(status string, count int) {
	ArticlesIngestedTotal.WithLabelValues(status).Add(float64(count))
}

// RecordTrendReport records a trend aggregation outcome.
func RecordTrendReport(status string, trends int) {
	TrendReportsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		TrendsPerReport.Observe(float64(trends))
	}
}

// RecordCache records a cache hit or miss.
func RecordCache(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheRequestsTotal.WithLabelValues(cache, result).Inc()
}

// RecordHTTPRequest records a served REST request.
func RecordHTTPRequest(method, route, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration)
}
