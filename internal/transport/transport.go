// Package transport sends rendered webhook payloads over the wire. A
// Dispatcher routes each request by its target URL scheme to one of the
// registered transports; the scheme table is closed at construction so an
// unrecognized scheme fails before any network activity.
package transport

import (
	"context"
	"fmt"
	"net/url"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/webhook"
)

// Request is one payload to deliver to one target
type Request struct {
	// TargetURL is the webhook's registered target; its scheme picks the transport
	TargetURL string
	// EventType is the event being delivered
	EventType domain.EventType
	// Payload is the rendered payload bytes
	Payload []byte
	// Secret is the webhook signing secret; empty disables signing
	Secret string
	// Domain is the platform domain reported to receivers
	Domain string
	// APIURL is the platform API URL reported to receivers
	APIURL string
}

// Transport sends one request over a specific wire protocol. Implementations
// never return transport errors as Go errors: every outcome, including a
// network failure, is a webhook.Response so an attempt row can always be
// recorded.
type Transport interface {
	Send(ctx context.Context, target *url.URL, req Request) webhook.Response
}

// Dispatcher routes requests to transports by target URL scheme
type Dispatcher struct {
	transports map[string]Transport
	clock      adapter.Clock
}

// NewDispatcher creates a dispatcher with the standard scheme table:
// http/https, awssqs and gcpubsub.
func NewDispatcher(
	httpClient adapter.HTTPClient,
	sqsFactory adapter.SQSClientFactory,
	pubsubFactory adapter.PubSubClientFactory,
	clock adapter.Clock,
) *Dispatcher {
	httpTransport := NewHTTPTransport(httpClient)
	return &Dispatcher{
		transports: map[string]Transport{
			webhook.SchemeHTTP:   httpTransport,
			webhook.SchemeHTTPS:  httpTransport,
			webhook.SchemeAWSSQS: NewSQSTransport(sqsFactory),
			webhook.SchemePubSub: NewPubSubTransport(pubsubFactory),
		},
		clock: clock,
	}
}

// NewDispatcherWithTransports creates a dispatcher over an explicit scheme table
func NewDispatcherWithTransports(transports map[string]Transport, clock adapter.Clock) *Dispatcher {
	return &Dispatcher{transports: transports, clock: clock}
}

// Dispatch sends one request via the transport its target scheme selects.
// Unknown schemes return domain.ErrUnknownWebhookScheme without touching the
// network. The response duration covers the transport call only.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (webhook.Response, error) {
	target, err := url.Parse(req.TargetURL)
	if err != nil {
		return webhook.Response{}, fmt.Errorf("failed to parse target URL: %w", err)
	}

	t, ok := d.transports[target.Scheme]
	if !ok {
		return webhook.Response{}, fmt.Errorf("scheme %q: %w", target.Scheme, domain.ErrUnknownWebhookScheme)
	}

	start := d.clock.Now()
	resp := t.Send(ctx, target, req)
	resp.Duration = d.clock.Since(start)

	return resp, nil
}

// Supports reports whether the dispatcher has a transport for the URL's scheme
func (d *Dispatcher) Supports(targetURL string) bool {
	target, err := url.Parse(targetURL)
	if err != nil {
		return false
	}
	_, ok := d.transports[target.Scheme]
	return ok
}
