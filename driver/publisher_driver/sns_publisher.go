package publisher_driver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"

	"techpulse/config"
	"techpulse/utils/logger"
)

// snsClient is the subset of the SNS client the publisher calls.
type snsClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsPublisher struct {
	id       string
	topicARN string
	client   snsClient
}

func newSNSPublisher(ctx context.Context, cfg config.PublisherConfig) (Publisher, error) {
	if cfg.SNS == nil {
		return nil, fmt.Errorf("sns configuration is missing")
	}
	awsCfg, err := loadAWSConfig(ctx, cfg.SNS.AWSCredentials)
	if err != nil {
		return nil, err
	}

	client := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
		if cfg.SNS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.SNS.Endpoint)
		}
	})
	return &snsPublisher{id: cfg.ID, topicARN: cfg.SNS.TopicARN, client: client}, nil
}

func (p *snsPublisher) ID() string { return p.id }

func (p *snsPublisher) Publish(ctx context.Context, evt TrendReportEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	attrs := make(map[string]snstypes.MessageAttributeValue)
	for k, v := range evt.attributes() {
		attrs[k] = snstypes.MessageAttributeValue{DataType: aws.String("String"), StringValue: aws.String(v)}
	}

	resp, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn:          aws.String(p.topicARN),
		Message:           aws.String(string(payload)),
		MessageAttributes: attrs,
	})
	if err != nil {
		return fmt.Errorf("send message to sns: %w", err)
	}

	logger.FromContext(ctx).DebugContext(ctx, "sns publisher delivered event",
		"publisher", p.id, "message_id", aws.ToString(resp.MessageId))
	return nil
}

func (p *snsPublisher) Close() error { return nil }
