package publisher_driver

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"techpulse/config"
	"techpulse/domain"
	"techpulse/utils/logger"
)

type httpPublisher struct {
	id     string
	url    string
	method string
	client *resty.Client
}

func newHTTPPublisher(_ context.Context, cfg config.PublisherConfig) (Publisher, error) {
	if cfg.HTTP == nil {
		return nil, fmt.Errorf("http configuration is missing")
	}

	client := resty.New().
		SetTimeout(time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeaders(cfg.HTTP.Headers)

	return &httpPublisher{
		id:     cfg.ID,
		url:    cfg.HTTP.URL,
		method: cfg.HTTP.Method,
		client: client,
	}, nil
}

func (p *httpPublisher) ID() string { return p.id }

func (p *httpPublisher) Publish(ctx context.Context, evt TrendReportEvent) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("X-Event-Type", evt.EventType).
		SetBody(evt).
		Execute(p.method, p.url)
	if err != nil {
		return fmt.Errorf("send event to %s: %w", p.url, err)
	}
	if resp.IsError() {
		return &domain.ExternalHTTPError{StatusCode: resp.StatusCode(), URL: p.url}
	}

	logger.FromContext(ctx).DebugContext(ctx, "http publisher delivered event",
		"publisher", p.id, "status", resp.StatusCode())
	return nil
}

func (p *httpPublisher) Close() error { return nil }
