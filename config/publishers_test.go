package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePublishers(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadPublishers_EmptyPath(t *testing.T) {
	pubs, err := LoadPublishers("")
	require.NoError(t, err)
	assert.Empty(t, pubs)
}

func TestLoadPublishers_YAML(t *testing.T) {
	t.Setenv("AWS_KEY", "AKIA")
	t.Setenv("AWS_SECRET", "shh")
	path := writePublishers(t, "publishers.yaml", `
publishers:
  - id: " webhook "
    type: HTTP
    http:
      url: https://hooks.example.com/trends
      headers:
        Authorization: "Bearer x"
        "": dropped
  - id: queue
    type: aws-sqs
    sqs:
      region: eu-west-1
      access_key_id: ${AWS_KEY}
      secret_access_key: ${AWS_SECRET}
      queue_url: https://sqs.eu-west-1.amazonaws.com/1/trends
  - id: disabled
    type: redis-stream
    enabled: false
    redis:
      url: redis://localhost:6379
`)

	pubs, err := LoadPublishers(path)
	require.NoError(t, err)
	require.Len(t, pubs, 2)

	assert.Equal(t, "webhook", pubs[0].ID)
	assert.Equal(t, PublisherHTTP, pubs[0].Type)
	assert.Equal(t, "POST", pubs[0].HTTP.Method)
	assert.Equal(t, 5, pubs[0].HTTP.TimeoutSeconds)
	assert.Equal(t, map[string]string{"Authorization": "Bearer x"}, pubs[0].HTTP.Headers)

	assert.Equal(t, "AKIA", pubs[1].SQS.AccessKeyID)
	assert.Equal(t, "eu-west-1", pubs[1].SQS.Region)
}

func TestLoadPublishers_JSON(t *testing.T) {
	path := writePublishers(t, "publishers.json", `{"publishers":[{"id":"ps","type":"gcp-pubsub","pubsub":{"project_id":"p","topic":"t"}}]}`)

	pubs, err := LoadPublishers(path)
	require.NoError(t, err)
	require.Len(t, pubs, 1)
	assert.Equal(t, "t", pubs[0].PubSub.Topic)
}

func TestLoadPublishers_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing id", "publishers:\n  - type: http\n    http:\n      url: http://x\n"},
		{"missing type", "publishers:\n  - id: a\n"},
		{"unknown type", "publishers:\n  - id: a\n    type: azure\n"},
		{"http without url", "publishers:\n  - id: a\n    type: http\n    http: {}\n"},
		{"sqs without credentials", "publishers:\n  - id: a\n    type: aws-sqs\n    sqs:\n      queue_url: q\n      region: r\n"},
		{"sns without topic", "publishers:\n  - id: a\n    type: aws-sns\n    sns:\n      region: r\n"},
		{"duplicate ids", "publishers:\n  - id: a\n    type: http\n    http:\n      url: http://x\n  - id: a\n    type: http\n    http:\n      url: http://y\n"},
		{"broken yaml", "publishers: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPublishers(writePublishers(t, "publishers.yaml", tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadPublishers_MissingFile(t *testing.T) {
	_, err := LoadPublishers(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
