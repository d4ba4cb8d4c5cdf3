// Package delivery is the core of the webhook subsystem: it fans domain
// events out to subscribed webhooks, performs synchronous webhook calls, and
// executes the per-delivery send path the async scheduler drives.
package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/logger"
	"github.com/commercekit/event-delivery/internal/payload"
	"github.com/commercekit/event-delivery/internal/store"
	"github.com/commercekit/event-delivery/internal/store/schema"
	"github.com/commercekit/event-delivery/internal/transport"
	"github.com/commercekit/event-delivery/internal/webhook"
)

// Scheduler enqueues a delivery for asynchronous execution. Implementations
// own the retry timing; callers only say when the next run may start.
//
//go:generate mockgen -source=delivery.go -destination=../mocks/delivery.go -package=mocks -mock_names=Scheduler=MockScheduler,AttemptObserver=MockAttemptObserver
type Scheduler interface {
	Enqueue(ctx context.Context, deliveryID uint64, runAfter time.Duration) error
}

// AttemptObserver receives every recorded attempt for observability
// reporting. Implementations must never block the delivery path.
type AttemptObserver interface {
	ObserveAttempt(ctx context.Context, delivery *schema.EventDelivery, attempt *schema.DeliveryAttempt, nextRetry *time.Time)
}

// SendResult is the outcome of one SendDelivery call
type SendResult struct {
	// DeliveryMissing is set when the delivery row vanished; the scheduler
	// stops without treating this as an error
	DeliveryMissing bool
	// WebhookInactive is set when the webhook was disabled after scheduling;
	// the delivery is marked failed without an attempt
	WebhookInactive bool
	// Status is the delivery status after this call
	Status schema.EventDeliveryStatus
	// StatusCode is the HTTP status code of the attempt, when one was received
	StatusCode *int
	// Retryable reports whether another attempt may fix the failure
	Retryable bool
}

// Service implements event fan-out and webhook sending
type Service struct {
	store      store.Store
	renderer   *payload.Renderer
	dispatcher *transport.Dispatcher
	scheduler  Scheduler
	observer   AttemptObserver
	clock      adapter.Clock

	// platformDomain and apiURL identify this installation to receivers
	platformDomain string
	apiURL         string

	// syncTimeout bounds the in-line transport call of a sync delivery;
	// zero disables the bound. Async sends are bounded by the scheduler's
	// activity timeout instead.
	syncTimeout time.Duration
}

// NewService creates the delivery service. observer may be nil.
func NewService(
	s store.Store,
	renderer *payload.Renderer,
	dispatcher *transport.Dispatcher,
	scheduler Scheduler,
	observer AttemptObserver,
	clock adapter.Clock,
	platformDomain string,
	apiURL string,
	syncTimeout time.Duration,
) *Service {
	return &Service{
		store:          s,
		renderer:       renderer,
		dispatcher:     dispatcher,
		scheduler:      scheduler,
		observer:       observer,
		clock:          clock,
		platformDomain: platformDomain,
		apiURL:         apiURL,
		syncTimeout:    syncTimeout,
	}
}

// TriggerAsync fans one async event out to the given webhooks. Webhooks
// without a subscription query share a single fixed-schema payload row;
// webhooks with one get individually rendered payloads. A subscription that
// projects nothing for this event type skips its webhook with a warning
// instead of failing the whole fan-out. Every created delivery is enqueued on
// the scheduler.
func (s *Service) TriggerAsync(ctx context.Context, event *domain.DomainEvent, webhooks []*schema.Webhook) ([]*schema.EventDelivery, error) {
	if len(webhooks) == 0 {
		return nil, nil
	}

	rc := domain.NewRenderContext(event.Requestor, false, s.clock.Now())

	var regular []uint64
	var withSubscription []*schema.Webhook
	for _, wh := range webhooks {
		if wh.HasSubscriptionQuery() {
			withSubscription = append(withSubscription, wh)
		} else {
			regular = append(regular, wh.ID)
		}
	}

	var deliveries []*schema.EventDelivery

	if len(regular) > 0 {
		fixed, err := s.renderer.RenderFixed(event, rc)
		if err != nil {
			return nil, fmt.Errorf("failed to render fixed payload: %w", err)
		}

		created, err := s.store.CreateDeliveriesForPayload(ctx, event.EventType, fixed, regular)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, created...)
	}

	if len(withSubscription) > 0 {
		var pairs []store.WebhookPayload
		for _, wh := range withSubscription {
			rendered, err := s.renderer.RenderSubscription(*wh.SubscriptionQuery, event, rc)
			if err != nil {
				logger.WarnCtx(ctx, "failed to render subscription payload, skipping webhook",
					zap.String("webhook_id", wh.WebhookID),
					zap.String("event_type", event.EventType.String()),
					zap.Error(err))
				continue
			}
			if rendered == nil {
				logger.WarnCtx(ctx, "subscription query projected nothing, skipping webhook",
					zap.String("webhook_id", wh.WebhookID),
					zap.String("event_type", event.EventType.String()))
				continue
			}
			pairs = append(pairs, store.WebhookPayload{WebhookID: wh.ID, Payload: rendered})
		}

		if len(pairs) > 0 {
			created, err := s.store.CreateDeliveriesWithPayloads(ctx, event.EventType, pairs)
			if err != nil {
				return nil, err
			}
			deliveries = append(deliveries, created...)
		}
	}

	for _, d := range deliveries {
		if err := s.scheduler.Enqueue(ctx, d.ID, 0); err != nil {
			// The delivery row stays pending; an operator can re-enqueue it
			logger.ErrorCtx(ctx, fmt.Errorf("failed to enqueue delivery: %w", err),
				zap.Uint64("delivery_id", d.ID))
		}
	}

	return deliveries, nil
}

// SendDelivery loads a due delivery and performs one attempt against its
// webhook. The scheduler calls this for the initial send and every retry;
// retryDelay is how long it will wait before the next attempt should this one
// fail retryably, zero when no retry remains.
func (s *Service) SendDelivery(ctx context.Context, deliveryID uint64, taskID string, retryDelay time.Duration) (*SendResult, error) {
	d, err := s.store.GetDeliveryByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		// The row can legitimately vanish between scheduling and execution
		// when retention sweeps run; stop quietly
		logger.WarnCtx(ctx, "delivery vanished before send, skipping",
			zap.Uint64("delivery_id", deliveryID))
		return &SendResult{DeliveryMissing: true}, nil
	}

	if d.Webhook == nil || !d.Webhook.IsActive || d.Webhook.App == nil || !d.Webhook.App.IsActive {
		// Disabled after scheduling: fail the delivery without burning an attempt
		if err := s.store.UpdateDeliveryStatus(ctx, d.ID, schema.EventDeliveryStatusFailed); err != nil {
			return nil, err
		}
		return &SendResult{WebhookInactive: true, Status: schema.EventDeliveryStatusFailed}, nil
	}

	if d.Payload == nil {
		return nil, fmt.Errorf("delivery %d: %w", d.ID, domain.ErrMissingPayload)
	}

	var tid *string
	if taskID != "" {
		tid = &taskID
	}
	attempt, err := s.store.CreateAttempt(ctx, d.ID, tid)
	if err != nil {
		return nil, err
	}

	resp, err := s.dispatcher.Dispatch(ctx, transport.Request{
		TargetURL: d.Webhook.TargetURL,
		EventType: domain.EventType(d.EventType),
		Payload:   d.Payload.Payload,
		Secret:    d.Webhook.SecretKey,
		Domain:    s.platformDomain,
		APIURL:    s.apiURL,
	})
	if err != nil {
		// Dispatch errors (bad URL, unknown scheme) are not retryable
		resp = webhook.FailedResponse(err.Error())
		if updateErr := s.recordOutcome(ctx, d, attempt, resp, nil); updateErr != nil {
			return nil, updateErr
		}
		return &SendResult{Status: schema.EventDeliveryStatusFailed, Retryable: false}, nil
	}

	// A retryable failure announces when the scheduler will try again
	var nextRetry *time.Time
	if resp.Status != webhook.ResponseStatusSuccess && retryDelay > 0 {
		at := s.clock.Now().Add(retryDelay)
		nextRetry = &at
	}

	if err := s.recordOutcome(ctx, d, attempt, resp, nextRetry); err != nil {
		return nil, err
	}

	result := &SendResult{StatusCode: resp.StatusCode}
	if resp.Status == webhook.ResponseStatusSuccess {
		result.Status = schema.EventDeliveryStatusSuccess
	} else {
		result.Status = schema.EventDeliveryStatusFailed
		result.Retryable = true
	}

	return result, nil
}

// MarkDeliveryFailed forces a delivery into the failed state. The scheduler
// calls this once retries are exhausted.
func (s *Service) MarkDeliveryFailed(ctx context.Context, deliveryID uint64) error {
	return s.store.UpdateDeliveryStatus(ctx, deliveryID, schema.EventDeliveryStatusFailed)
}

// MarkDeliverySucceeded finalizes a successful delivery and detaches its payload
func (s *Service) MarkDeliverySucceeded(ctx context.Context, deliveryID uint64) error {
	if err := s.store.UpdateDeliveryStatus(ctx, deliveryID, schema.EventDeliveryStatusSuccess); err != nil {
		return err
	}
	return s.store.ClearSuccessfulDelivery(ctx, deliveryID)
}

// recordOutcome persists the attempt response and notifies the observer
func (s *Service) recordOutcome(ctx context.Context, d *schema.EventDelivery, attempt *schema.DeliveryAttempt, resp webhook.Response, nextRetry *time.Time) error {
	if err := s.store.UpdateAttempt(ctx, attempt.ID, resp); err != nil {
		return err
	}

	if s.observer != nil {
		attempt.Response = resp.Content
		attempt.ResponseStatusCode = resp.StatusCode
		attempt.Duration = resp.Duration.Seconds()
		attempt.Status = schema.EventDeliveryStatus(resp.Status)
		s.observer.ObserveAttempt(ctx, d, attempt, nextRetry)
	}

	return nil
}

// isHTTPScheme reports whether the target URL uses http or https
func isHTTPScheme(targetURL string) bool {
	u, err := url.Parse(targetURL)
	if err != nil {
		return false
	}
	return u.Scheme == webhook.SchemeHTTP || u.Scheme == webhook.SchemeHTTPS
}

// parseJSONBody decodes a webhook response body into a map
func parseJSONBody(content string) (map[string]interface{}, error) {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse webhook response body: %w", err)
	}
	return parsed, nil
}
