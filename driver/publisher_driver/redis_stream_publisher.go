package publisher_driver

import (
	"context"
	"fmt"

	"techpulse/config"
	"techpulse/driver/redis_driver"
	"techpulse/utils/logger"
)

type redisStreamPublisher struct {
	id     string
	stream string
	driver *redis_driver.RedisDriver
}

func newRedisStreamPublisher(_ context.Context, cfg config.PublisherConfig) (Publisher, error) {
	if cfg.Redis == nil {
		return nil, fmt.Errorf("redis configuration is missing")
	}

	driver, err := redis_driver.NewRedisDriverWithURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	stream := cfg.Redis.Stream
	if stream == "" {
		stream = redis_driver.DefaultTrendStream
	}
	return &redisStreamPublisher{id: cfg.ID, stream: stream, driver: driver}, nil
}

func (p *redisStreamPublisher) ID() string { return p.id }

func (p *redisStreamPublisher) Publish(ctx context.Context, evt TrendReportEvent) error {
	entryID, err := p.driver.AppendTrendReport(ctx, p.stream, evt.Report)
	if err != nil {
		return fmt.Errorf("append to stream %s: %w", p.stream, err)
	}

	logger.FromContext(ctx).DebugContext(ctx, "redis stream publisher delivered event",
		"publisher", p.id, "stream", p.stream, "entry_id", entryID)
	return nil
}

func (p *redisStreamPublisher) Close() error { return p.driver.Close() }
