package transport

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/webhook"
)

// pubsubTransport delivers payloads to Google Cloud Pub/Sub topics. Targets
// look like gcpubsub://cloud.google.com/projects/<project>/topics/<topic>.
type pubsubTransport struct {
	factory adapter.PubSubClientFactory
}

// NewPubSubTransport creates the gcpubsub transport
func NewPubSubTransport(factory adapter.PubSubClientFactory) Transport {
	return &pubsubTransport{factory: factory}
}

// parsePubSubTarget extracts the project and topic IDs from the target path
func parsePubSubTarget(target *url.URL) (project, topic string, err error) {
	parts := strings.Split(strings.Trim(target.Path, "/"), "/")
	if len(parts) != 4 || parts[0] != "projects" || parts[2] != "topics" || parts[1] == "" || parts[3] == "" {
		return "", "", fmt.Errorf("pubsub target path must be /projects/<project>/topics/<topic>, got %q", target.Path)
	}

	return parts[1], parts[3], nil
}

func (t *pubsubTransport) Send(ctx context.Context, target *url.URL, req Request) webhook.Response {
	project, topic, err := parsePubSubTarget(target)
	if err != nil {
		return webhook.FailedResponse(err.Error())
	}

	client, err := t.factory.NewClient(ctx, project)
	if err != nil {
		return webhook.FailedResponse(fmt.Sprintf("failed to create pubsub client: %v", err))
	}
	defer func() {
		_ = client.Close()
	}()

	attributes := map[string]string{
		webhook.PubSubAttrDomain:    req.Domain,
		webhook.PubSubAttrAPIURL:    req.APIURL,
		webhook.PubSubAttrEventType: req.EventType.String(),
	}
	if signature := webhook.SignPayload(req.Payload, req.Secret); signature != "" {
		attributes[webhook.PubSubAttrSignature] = signature
	}

	messageID, err := client.Publish(ctx, adapter.PubSubMessage{
		Topic:      topic,
		Body:       req.Payload,
		Attributes: attributes,
	})
	if err != nil {
		return webhook.FailedResponse(err.Error())
	}

	return webhook.Response{
		Content: messageID,
		Status:  webhook.ResponseStatusSuccess,
	}
}
