package transport

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/webhook"
)

// defaultSQSRegion is assumed when the queue hostname carries no region
const defaultSQSRegion = "us-east-1"

// sqsTransport delivers payloads to AWS SQS queues. Targets look like
// awssqs://<key>:<secret>@sqs.<region>.amazonaws.com/<account>/<queue>;
// credentials travel in the URL userinfo because each webhook owns its queue.
type sqsTransport struct {
	factory adapter.SQSClientFactory
}

// NewSQSTransport creates the awssqs transport
func NewSQSTransport(factory adapter.SQSClientFactory) Transport {
	return &sqsTransport{factory: factory}
}

// sqsTarget is the decoded form of an awssqs target URL
type sqsTarget struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	QueueURL        string
	FIFO            bool
}

// parseSQSTarget decodes an awssqs target URL. The secret access key is
// percent-unescaped: AWS secrets regularly contain characters that must be
// escaped to survive inside a URL.
func parseSQSTarget(target *url.URL) (*sqsTarget, error) {
	if target.User == nil {
		return nil, fmt.Errorf("sqs target URL carries no credentials")
	}

	accessKeyID := target.User.Username()
	rawSecret, hasSecret := target.User.Password()
	if accessKeyID == "" || !hasSecret {
		return nil, fmt.Errorf("sqs target URL carries incomplete credentials")
	}

	secret, err := url.PathUnescape(rawSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to unescape sqs secret access key: %w", err)
	}

	region := defaultSQSRegion
	if strings.HasPrefix(target.Host, "sqs.") {
		if parts := strings.Split(target.Host, "."); len(parts) >= 2 && parts[1] != "" {
			region = parts[1]
		}
	}

	return &sqsTarget{
		Region:          region,
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secret,
		QueueURL:        fmt.Sprintf("https://%s%s", target.Host, target.Path),
		FIFO:            strings.HasSuffix(target.Path, ".fifo"),
	}, nil
}

func (t *sqsTransport) Send(ctx context.Context, target *url.URL, req Request) webhook.Response {
	parsed, err := parseSQSTarget(target)
	if err != nil {
		return webhook.FailedResponse(err.Error())
	}

	client, err := t.factory.NewClient(ctx, parsed.Region, parsed.AccessKeyID, parsed.SecretAccessKey)
	if err != nil {
		return webhook.FailedResponse(fmt.Sprintf("failed to create sqs client: %v", err))
	}

	msg := adapter.SQSMessage{
		QueueURL: parsed.QueueURL,
		Body:     string(req.Payload),
		Attributes: map[string]string{
			webhook.SQSAttrDomain:    req.Domain,
			webhook.SQSAttrAPIURL:    req.APIURL,
			webhook.SQSAttrEventType: req.EventType.String(),
		},
	}
	if signature := webhook.SignPayload(req.Payload, req.Secret); signature != "" {
		msg.Attributes[webhook.SQSAttrSignature] = signature
	}
	if parsed.FIFO {
		// FIFO queues require a message group; all deliveries of one platform
		// domain share ordering
		msg.GroupID = req.Domain
	}

	messageID, err := client.SendMessage(ctx, msg)
	if err != nil {
		return webhook.FailedResponse(err.Error())
	}

	return webhook.Response{
		Content: messageID,
		Status:  webhook.ResponseStatusSuccess,
	}
}
