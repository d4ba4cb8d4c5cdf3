package delivery

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/logger"
	"github.com/commercekit/event-delivery/internal/store"
	"github.com/commercekit/event-delivery/internal/store/schema"
	"github.com/commercekit/event-delivery/internal/transport"
	"github.com/commercekit/event-delivery/internal/webhook"
)

// ResponseAcceptor inspects one parsed sync webhook response and either
// accepts it, producing the coordinator result, or rejects it so polling
// moves to the next webhook.
type ResponseAcceptor func(parsed map[string]interface{}) (interface{}, bool)

// TriggerSync performs one synchronous webhook call and returns the parsed
// JSON response. Unlike the fan-out paths this fails loudly: a nil webhook,
// an empty subscription projection, a non-HTTP target or an unparseable
// response are all errors, because exactly one party was asked and its answer
// is required.
func (s *Service) TriggerSync(ctx context.Context, event *domain.DomainEvent, wh *schema.Webhook) (map[string]interface{}, error) {
	if wh == nil {
		return nil, fmt.Errorf("event type %s: %w", event.EventType, domain.ErrNoWebhook)
	}

	rc := domain.NewRenderContext(event.Requestor, true, s.clock.Now())

	rendered, err := s.renderPayloadFor(wh, event, rc)
	if err != nil {
		return nil, err
	}
	if rendered == nil {
		return nil, fmt.Errorf("webhook %s, event type %s: %w", wh.WebhookID, event.EventType, domain.ErrEmptySubscriptionPayload)
	}

	d, err := s.store.CreateDelivery(ctx, event.EventType, wh.ID, rendered)
	if err != nil {
		return nil, err
	}

	return s.sendSync(ctx, d, wh, rendered)
}

// TriggerAllSync polls every webhook subscribed to a sync event in
// registration order until accept admits a response. Shared work is lazy: the
// render context and the shared fixed payload are built at most once, on
// first need, and reused for every webhook in the loop. Per-webhook failures
// degrade gracefully by moving on to the next candidate.
func (s *Service) TriggerAllSync(ctx context.Context, event *domain.DomainEvent, accept ResponseAcceptor) (interface{}, error) {
	webhooks, err := s.store.GetWebhooksForEvent(ctx, event.EventType)
	if err != nil {
		return nil, err
	}

	var rc *domain.RenderContext
	var sharedFixed []byte
	renderContext := func() *domain.RenderContext {
		if rc == nil {
			rc = domain.NewRenderContext(event.Requestor, true, s.clock.Now())
		}
		return rc
	}

	for _, wh := range webhooks {
		var rendered []byte
		if wh.HasSubscriptionQuery() {
			rendered, err = s.renderer.RenderSubscription(*wh.SubscriptionQuery, event, renderContext())
			if err != nil || rendered == nil {
				logger.WarnCtx(ctx, "subscription render yielded no sync payload, trying next webhook",
					zap.String("webhook_id", wh.WebhookID),
					zap.String("event_type", event.EventType.String()),
					zap.Error(err))
				continue
			}
		} else {
			if sharedFixed == nil {
				sharedFixed, err = s.renderer.RenderFixed(event, renderContext())
				if err != nil {
					return nil, fmt.Errorf("failed to render fixed payload: %w", err)
				}
			}
			rendered = sharedFixed
		}

		d, err := s.store.CreateDelivery(ctx, event.EventType, wh.ID, rendered)
		if err != nil {
			return nil, err
		}

		parsed, err := s.sendSync(ctx, d, wh, rendered)
		if err != nil {
			logger.WarnCtx(ctx, "sync webhook call failed, trying next webhook",
				zap.String("webhook_id", wh.WebhookID),
				zap.String("event_type", event.EventType.String()),
				zap.Error(err))
			continue
		}

		if result, ok := accept(parsed); ok {
			return result, nil
		}
	}

	return nil, nil
}

// renderPayloadFor renders the payload a single webhook should receive
func (s *Service) renderPayloadFor(wh *schema.Webhook, event *domain.DomainEvent, rc *domain.RenderContext) ([]byte, error) {
	if wh.HasSubscriptionQuery() {
		return s.renderer.RenderSubscription(*wh.SubscriptionQuery, event, rc)
	}
	return s.renderer.RenderFixed(event, rc)
}

// sendSync performs the in-line transport call for a sync delivery and
// records the attempt and delivery rows around it
func (s *Service) sendSync(ctx context.Context, d *schema.EventDelivery, wh *schema.Webhook, rendered []byte) (map[string]interface{}, error) {
	// Sync calls need an answer now; only HTTP(S) targets can give one
	if !isHTTPScheme(wh.TargetURL) {
		if err := s.store.UpdateDeliveryStatus(ctx, d.ID, schema.EventDeliveryStatusFailed); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("webhook %s target %q: %w", wh.WebhookID, wh.TargetURL, domain.ErrUnknownWebhookScheme)
	}

	attempt, err := s.store.CreateAttempt(ctx, d.ID, nil)
	if err != nil {
		return nil, err
	}

	// The caller is blocked on this answer; cap how long the receiver may take
	sendCtx := ctx
	if s.syncTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.syncTimeout)
		defer cancel()
	}

	resp, err := s.dispatcher.Dispatch(sendCtx, transport.Request{
		TargetURL: wh.TargetURL,
		EventType: domain.EventType(d.EventType),
		Payload:   rendered,
		Secret:    wh.SecretKey,
		Domain:    s.platformDomain,
		APIURL:    s.apiURL,
	})
	if err != nil {
		resp = webhook.FailedResponse(err.Error())
	}

	if err := s.recordOutcome(ctx, d, attempt, resp, nil); err != nil {
		return nil, err
	}

	if resp.Status != webhook.ResponseStatusSuccess {
		if err := s.store.UpdateDeliveryStatus(ctx, d.ID, schema.EventDeliveryStatusFailed); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("sync webhook call to %s failed: %s", wh.WebhookID, resp.Content)
	}

	parsed, parseErr := parseJSONBody(resp.Content)
	if parseErr != nil {
		// The receiver answered but unusably; the delivery is failed even
		// though the transport call went through
		if err := s.store.UpdateDeliveryStatus(ctx, d.ID, schema.EventDeliveryStatusFailed); err != nil {
			return nil, err
		}
		return nil, parseErr
	}

	if err := s.MarkDeliverySucceeded(ctx, d.ID); err != nil {
		return nil, err
	}

	return parsed, nil
}
