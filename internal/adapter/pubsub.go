package adapter

import (
	"context"

	"cloud.google.com/go/pubsub"
)

// PubSubMessage is one message to publish to a Pub/Sub topic
type PubSubMessage struct {
	// Topic is the topic ID within the client's project
	Topic string
	// Body is the message payload
	Body []byte
	// Attributes are string message attributes
	Attributes map[string]string
}

// PubSubClient defines an interface for Pub/Sub publish operations to enable mocking
//
//go:generate mockgen -source=pubsub.go -destination=../mocks/pubsub.go -package=mocks -mock_names=PubSubClient=MockPubSubClient,PubSubClientFactory=MockPubSubClientFactory
type PubSubClient interface {
	// Publish publishes one message and blocks until the publish result is
	// known, returning the server-assigned message ID
	Publish(ctx context.Context, msg PubSubMessage) (string, error)

	// Close releases the underlying client
	Close() error
}

// PubSubClientFactory builds Pub/Sub clients per project
type PubSubClientFactory interface {
	NewClient(ctx context.Context, projectID string) (PubSubClient, error)
}

// RealPubSubClientFactory implements PubSubClientFactory using the GCP SDK
type RealPubSubClientFactory struct{}

// NewPubSubClientFactory creates a new real Pub/Sub client factory
func NewPubSubClientFactory() PubSubClientFactory {
	return &RealPubSubClientFactory{}
}

func (f *RealPubSubClientFactory) NewClient(ctx context.Context, projectID string) (PubSubClient, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &realPubSubClient{client: client}, nil
}

type realPubSubClient struct {
	client *pubsub.Client
}

func (c *realPubSubClient) Publish(ctx context.Context, msg PubSubMessage) (string, error) {
	topic := c.client.Topic(msg.Topic)
	defer topic.Stop()

	result := topic.Publish(ctx, &pubsub.Message{
		Data:       msg.Body,
		Attributes: msg.Attributes,
	})

	// Publishing is fire-and-forget by default; waiting here makes the
	// delivery result observable so the attempt row reflects reality
	return result.Get(ctx)
}

func (c *realPubSubClient) Close() error {
	return c.client.Close()
}
