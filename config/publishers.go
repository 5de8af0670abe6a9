package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	PublisherHTTP        = "http"
	PublisherSQS         = "aws-sqs"
	PublisherSNS         = "aws-sns"
	PublisherPubSub      = "gcp-pubsub"
	PublisherRedisStream = "redis-stream"

	publisherDefaultMethod  = "POST"
	publisherDefaultTimeout = 5
)

type publishersFile struct {
	Publishers []PublisherConfig `json:"publishers" yaml:"publishers"`
}

// PublisherConfig declares one downstream sink for trend report events.
type PublisherConfig struct {
	ID      string             `json:"id" yaml:"id"`
	Type    string             `json:"type" yaml:"type"`
	Enabled *bool              `json:"enabled" yaml:"enabled"`
	HTTP    *HTTPPublisher     `json:"http" yaml:"http"`
	SQS     *SQSPublisher      `json:"sqs" yaml:"sqs"`
	SNS     *SNSPublisher      `json:"sns" yaml:"sns"`
	PubSub  *PubSubPublisher   `json:"pubsub" yaml:"pubsub"`
	Redis   *RedisStreamConfig `json:"redis" yaml:"redis"`
}

type HTTPPublisher struct {
	URL            string            `json:"url" yaml:"url"`
	Method         string            `json:"method" yaml:"method"`
	Headers        map[string]string `json:"headers" yaml:"headers"`
	TimeoutSeconds int               `json:"timeout_seconds" yaml:"timeout_seconds"`
}

type AWSCredentials struct {
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"access_key_id" yaml:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key" yaml:"secret_access_key"`
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
}

type SQSPublisher struct {
	AWSCredentials `yaml:",inline"`
	QueueURL       string `json:"queue_url" yaml:"queue_url"`
}

type SNSPublisher struct {
	AWSCredentials `yaml:",inline"`
	TopicARN       string `json:"topic_arn" yaml:"topic_arn"`
}

type PubSubPublisher struct {
	ProjectID       string `json:"project_id" yaml:"project_id"`
	Topic           string `json:"topic" yaml:"topic"`
	CredentialsFile string `json:"credentials_file" yaml:"credentials_file"`
}

type RedisStreamConfig struct {
	URL    string `json:"url" yaml:"url"`
	Stream string `json:"stream" yaml:"stream"`
}

// IsEnabled defaults to true when the flag is omitted.
func (p PublisherConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// LoadPublishers reads the publishers file. An empty path means no publishers.
// The file is expanded with os.ExpandEnv before decoding; .json files are
// decoded as JSON, everything else as YAML.
func LoadPublishers(path string) ([]PublisherConfig, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read publishers file: %w", err)
	}
	expanded := []byte(os.ExpandEnv(string(raw)))

	var file publishersFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(expanded, &file)
	} else {
		err = yaml.Unmarshal(expanded, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("parse publishers file: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Publishers))
	out := make([]PublisherConfig, 0, len(file.Publishers))
	for i, p := range file.Publishers {
		p = sanitizePublisher(p)
		if err := validatePublisher(p); err != nil {
			return nil, fmt.Errorf("publishers[%d]: %w", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate publisher id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.IsEnabled() {
			out = append(out, p)
		}
	}
	return out, nil
}

func sanitizePublisher(p PublisherConfig) PublisherConfig {
	p.ID = strings.TrimSpace(p.ID)
	p.Type = strings.ToLower(strings.TrimSpace(p.Type))

	if p.HTTP != nil {
		h := *p.HTTP
		h.URL = strings.TrimSpace(h.URL)
		h.Method = strings.ToUpper(strings.TrimSpace(h.Method))
		if h.Method == "" {
			h.Method = publisherDefaultMethod
		}
		if h.TimeoutSeconds <= 0 {
			h.TimeoutSeconds = publisherDefaultTimeout
		}
		headers := make(map[string]string, len(h.Headers))
		for k, v := range h.Headers {
			k, v = strings.TrimSpace(k), strings.TrimSpace(v)
			if k != "" && v != "" {
				headers[k] = v
			}
		}
		h.Headers = headers
		p.HTTP = &h
	}
	if p.SQS != nil {
		s := *p.SQS
		s.QueueURL = strings.TrimSpace(s.QueueURL)
		s.AWSCredentials = trimCredentials(s.AWSCredentials)
		p.SQS = &s
	}
	if p.SNS != nil {
		s := *p.SNS
		s.TopicARN = strings.TrimSpace(s.TopicARN)
		s.AWSCredentials = trimCredentials(s.AWSCredentials)
		p.SNS = &s
	}
	if p.PubSub != nil {
		g := *p.PubSub
		g.ProjectID = strings.TrimSpace(g.ProjectID)
		g.Topic = strings.TrimSpace(g.Topic)
		g.CredentialsFile = strings.TrimSpace(g.CredentialsFile)
		p.PubSub = &g
	}
	if p.Redis != nil {
		r := *p.Redis
		r.URL = strings.TrimSpace(r.URL)
		r.Stream = strings.TrimSpace(r.Stream)
		p.Redis = &r
	}
	return p
}

func trimCredentials(c AWSCredentials) AWSCredentials {
	c.Region = strings.TrimSpace(c.Region)
	c.AccessKeyID = strings.TrimSpace(c.AccessKeyID)
	c.SecretAccessKey = strings.TrimSpace(c.SecretAccessKey)
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	return c
}

func validatePublisher(p PublisherConfig) error {
	if p.ID == "" {
		return errors.New("id is required")
	}

	switch p.Type {
	case PublisherHTTP:
		if p.HTTP == nil || p.HTTP.URL == "" {
			return fmt.Errorf("http.url is required for publisher %q", p.ID)
		}
	case PublisherSQS:
		if p.SQS == nil || p.SQS.QueueURL == "" {
			return fmt.Errorf("sqs.queue_url is required for publisher %q", p.ID)
		}
		return validateCredentials(p.ID, "sqs", p.SQS.AWSCredentials)
	case PublisherSNS:
		if p.SNS == nil || p.SNS.TopicARN == "" {
			return fmt.Errorf("sns.topic_arn is required for publisher %q", p.ID)
		}
		return validateCredentials(p.ID, "sns", p.SNS.AWSCredentials)
	case PublisherPubSub:
		if p.PubSub == nil || p.PubSub.ProjectID == "" || p.PubSub.Topic == "" {
			return fmt.Errorf("pubsub.project_id and pubsub.topic are required for publisher %q", p.ID)
		}
	case PublisherRedisStream:
		if p.Redis == nil || p.Redis.URL == "" {
			return fmt.Errorf("redis.url is required for publisher %q", p.ID)
		}
	case "":
		return fmt.Errorf("type is required for publisher %q", p.ID)
	default:
		return fmt.Errorf("type %q not supported for publisher %q", p.Type, p.ID)
	}
	return nil
}

func validateCredentials(id, section string, c AWSCredentials) error {
	if c.Region == "" {
		return fmt.Errorf("%s.region is required for publisher %q", section, id)
	}
	if c.AccessKeyID == "" || c.SecretAccessKey == "" {
		return fmt.Errorf("%s credentials are required for publisher %q", section, id)
	}
	return nil
}
