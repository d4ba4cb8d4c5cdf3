package bridge

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/logger"
	"github.com/commercekit/event-delivery/internal/messaging"
	"github.com/commercekit/event-delivery/internal/store"
	"github.com/commercekit/event-delivery/internal/store/schema"
)

// Trigger creates and enqueues deliveries for an async event. The delivery
// service is the production implementation.
//
//go:generate mockgen -source=bridge.go -destination=../mocks/bridge.go -package=mocks -mock_names=Trigger=MockTrigger
type Trigger interface {
	TriggerAsync(ctx context.Context, event *domain.DomainEvent, webhooks []*schema.Webhook) ([]*schema.EventDelivery, error)
}

// Bridge defines the interface for the event bridge
type Bridge interface {
	// Run starts the event bridge
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

// bridge routes domain events from the event stream into webhook deliveries
type bridge struct {
	subscriber messaging.Subscriber
	store      store.Store
	trigger    Trigger
}

// NewBridge creates a new event bridge
func NewBridge(subscriber messaging.Subscriber, st store.Store, trigger Trigger) Bridge {
	return &bridge{
		subscriber: subscriber,
		store:      st,
		trigger:    trigger,
	}
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge")
	return b.subscriber.Subscribe(ctx, b.handleEvent)
}

// handleEvent fans one domain event out to the webhooks subscribed to it.
// Returning an error requeues the event; events no retry can fix are dropped
// with a warning instead.
func (b *bridge) handleEvent(ctx context.Context, event *domain.DomainEvent) error {
	if !event.EventType.IsAsync() || event.EventType == domain.EventTypeAny {
		logger.WarnCtx(ctx, "Dropping event with non-deliverable type",
			zap.String("eventID", event.EventID),
			zap.String("eventType", string(event.EventType)))
		return nil
	}

	webhooks, err := b.store.GetWebhooksForEvent(ctx, event.EventType)
	if err != nil {
		return fmt.Errorf("failed to look up webhooks: %w", err)
	}

	if len(webhooks) == 0 {
		logger.DebugCtx(ctx, "No webhooks subscribed to event",
			zap.String("eventType", string(event.EventType)))
		return nil
	}

	deliveries, err := b.trigger.TriggerAsync(ctx, event, webhooks)
	if err != nil {
		return fmt.Errorf("failed to trigger deliveries: %w", err)
	}

	logger.InfoCtx(ctx, "Event fanned out to webhooks",
		zap.String("eventID", event.EventID),
		zap.String("eventType", string(event.EventType)),
		zap.Int("webhooks", len(webhooks)),
		zap.Int("deliveries", len(deliveries)),
	)

	return nil
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	b.subscriber.Close()
}
