// Package redis_driver caches the latest trend report and streams report
// events through Redis.
package redis_driver

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"techpulse/domain"
)

const (
	latestReportKey = "techpulse:trend_report:latest"
	// latestReportMarkKey holds the highest timestamp ever cached. It never
	// expires, so a reader holding an older report cannot refill the cache
	// after the entry times out.
	latestReportMarkKey = "techpulse:trend_report:latest_ts"
	// DefaultTrendStream receives one entry per computed report.
	DefaultTrendStream = "techpulse:trends"
)

type RedisDriver struct {
	client *redis.Client
}

// NewRedisDriverWithURL creates a driver from a redis:// URL.
func NewRedisDriverWithURL(url string) (*RedisDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisDriver{client: redis.NewClient(opts)}, nil
}

func (d *RedisDriver) Close() error {
	return d.client.Close()
}

func (d *RedisDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// GetLatestReport returns the cached report; ok is false on a miss.
func (d *RedisDriver) GetLatestReport(ctx context.Context) (report *domain.TrendReport, ok bool, err error) {
	data, err := d.client.Get(ctx, latestReportKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var r domain.TrendReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false, err
	}
	return &r, true, nil
}

// KEYS[1] entry, KEYS[2] timestamp mark; ARGV[1] timestamp, ARGV[2] payload,
// ARGV[3] ttl in milliseconds (0 keeps the entry).
var setLatestReportScript = redis.NewScript(`
local mark = redis.call('GET', KEYS[2])
if mark and tonumber(mark) > tonumber(ARGV[1]) then
	return 0
end
redis.call('SET', KEYS[2], ARGV[1])
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// SetLatestReport caches report unless a report with a later timestamp was
// cached before. stored reports whether the entry was written.
func (d *RedisDriver) SetLatestReport(ctx context.Context, report *domain.TrendReport, ttl time.Duration) (stored bool, err error) {
	if report == nil {
		return false, errors.New("report is nil")
	}
	data, err := json.Marshal(report)
	if err != nil {
		return false, err
	}
	n, err := setLatestReportScript.Run(ctx, d.client,
		[]string{latestReportKey, latestReportMarkKey},
		strconv.FormatInt(report.Timestamp, 10), data, ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// InvalidateLatestReport drops the cached entry but keeps the timestamp mark.
func (d *RedisDriver) InvalidateLatestReport(ctx context.Context) error {
	return d.client.Del(ctx, latestReportKey).Err()
}

// AppendTrendReport adds the report to stream and returns the entry id.
func (d *RedisDriver) AppendTrendReport(ctx context.Context, stream string, report *domain.TrendReport) (string, error) {
	if report == nil {
		return "", errors.New("report is nil")
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return "", err
	}

	return d.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"event_type": "trend_report.created",
			"timestamp":  strconv.FormatInt(report.Timestamp, 10),
			"trends":     strconv.Itoa(len(report.Trends)),
			"payload":    string(payload),
		},
	}).Result()
}
