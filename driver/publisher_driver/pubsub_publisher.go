package publisher_driver

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"techpulse/config"
	"techpulse/utils/logger"
)

type pubsubPublisher struct {
	id     string
	client *pubsub.Client
	topic  *pubsub.Topic
}

func newPubSubPublisher(ctx context.Context, cfg config.PublisherConfig) (Publisher, error) {
	if cfg.PubSub == nil {
		return nil, fmt.Errorf("pubsub configuration is missing")
	}

	var opts []option.ClientOption
	if cfg.PubSub.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.PubSub.CredentialsFile))
	}

	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}
	return newPubSubPublisherWithClient(cfg.ID, client, cfg.PubSub.Topic), nil
}

func newPubSubPublisherWithClient(id string, client *pubsub.Client, topic string) *pubsubPublisher {
	return &pubsubPublisher{id: id, client: client, topic: client.Topic(topic)}
}

func (p *pubsubPublisher) ID() string { return p.id }

func (p *pubsubPublisher) Publish(ctx context.Context, evt TrendReportEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	res := p.topic.Publish(ctx, &pubsub.Message{Data: payload, Attributes: evt.attributes()})
	msgID, err := res.Get(ctx)
	if err != nil {
		return fmt.Errorf("send message to pubsub: %w", err)
	}

	logger.FromContext(ctx).DebugContext(ctx, "pubsub publisher delivered event",
		"publisher", p.id, "message_id", msgID)
	return nil
}

func (p *pubsubPublisher) Close() error {
	p.topic.Stop()
	return p.client.Close()
}
