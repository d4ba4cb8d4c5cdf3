package store

import (
	"context"
	"time"

	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/store/schema"
	"github.com/commercekit/event-delivery/internal/webhook"
)

// WebhookPayload pairs a webhook with its individually rendered payload for
// subscription-mode fan-out.
type WebhookPayload struct {
	// WebhookID is the numeric ID of the target webhook
	WebhookID uint64
	// Payload is the rendered payload bytes for that webhook
	Payload []byte
}

// CreateAppInput holds the fields for registering an app
type CreateAppInput struct {
	AppID    string
	Name     string
	IsActive bool
}

// CreateWebhookInput holds the fields for registering a webhook
type CreateWebhookInput struct {
	WebhookID         string
	AppID             uint64
	Name              string
	TargetURL         string
	SecretKey         string
	SubscriptionQuery *string
	Events            []domain.EventType
	IsActive          bool
}

// UpdateWebhookInput holds the mutable webhook fields; nil means unchanged
type UpdateWebhookInput struct {
	Name              *string
	TargetURL         *string
	SecretKey         *string
	SubscriptionQuery *string
	Events            []domain.EventType
	IsActive          *bool
}

// Store defines the persistence boundary around payloads, deliveries and
// attempts, plus the webhook registry queries the delivery core needs.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetWebhooksForEvent retrieves active webhooks of active apps subscribed
	// to the given event type, in registration order. For async event types
	// the any_events wildcard subscription also matches.
	GetWebhooksForEvent(ctx context.Context, eventType domain.EventType) ([]*schema.Webhook, error)

	// GetWebhookByID retrieves a webhook by its UUID, or nil when absent
	GetWebhookByID(ctx context.Context, webhookID string) (*schema.Webhook, error)

	// CreateApp registers an app
	CreateApp(ctx context.Context, input CreateAppInput) (*schema.App, error)

	// CreateWebhook registers a webhook
	CreateWebhook(ctx context.Context, input CreateWebhookInput) (*schema.Webhook, error)

	// UpdateWebhook patches a webhook; returns the updated row, nil when absent
	UpdateWebhook(ctx context.Context, webhookID string, input UpdateWebhookInput) (*schema.Webhook, error)

	// DeleteWebhook removes a webhook registration
	DeleteWebhook(ctx context.Context, webhookID string) error

	// CreateDeliveriesForPayload creates one shared payload row and one
	// pending delivery per webhook referencing it. Inserts are batched: one
	// insert for the payload, one for all deliveries.
	CreateDeliveriesForPayload(ctx context.Context, eventType domain.EventType, payload []byte, webhookIDs []uint64) ([]*schema.EventDelivery, error)

	// CreateDeliveriesWithPayloads creates one payload row and one pending
	// delivery per pair. Inserts are batched: all payloads in one insert, all
	// deliveries in a second.
	CreateDeliveriesWithPayloads(ctx context.Context, eventType domain.EventType, pairs []WebhookPayload) ([]*schema.EventDelivery, error)

	// CreateDelivery creates a single pending delivery with its own payload
	CreateDelivery(ctx context.Context, eventType domain.EventType, webhookID uint64, payload []byte) (*schema.EventDelivery, error)

	// GetDeliveryByID retrieves a delivery with its webhook, owning app and
	// payload preloaded. Returns nil with no error when the row is gone; a
	// vanished delivery is a soft failure for retry tasks.
	GetDeliveryByID(ctx context.Context, deliveryID uint64) (*schema.EventDelivery, error)

	// UpdateDeliveryStatus advances a delivery's status. Terminal states are
	// never overwritten with a different value.
	UpdateDeliveryStatus(ctx context.Context, deliveryID uint64, status schema.EventDeliveryStatus) error

	// ClearSuccessfulDelivery detaches the payload reference of a
	// successfully completed delivery so the payload body can be swept
	// independently of delivery history retention. No-op for non-success rows.
	ClearSuccessfulDelivery(ctx context.Context, deliveryID uint64) error

	// RequeueDelivery moves a failed delivery back to pending so a manual
	// retry can run through the normal status transitions again. No-op for
	// rows in any other status.
	RequeueDelivery(ctx context.Context, deliveryID uint64) error

	// ListDeliveriesForWebhook returns the most recent deliveries for a webhook
	ListDeliveriesForWebhook(ctx context.Context, webhookID string, limit int) ([]*schema.EventDelivery, error)

	// CreateAttempt inserts a pending attempt row immediately before a send is
	// attempted, so a crash mid-send still leaves an auditable attempt
	CreateAttempt(ctx context.Context, deliveryID uint64, taskID *string) (*schema.DeliveryAttempt, error)

	// UpdateAttempt attaches the transport response to an attempt row
	UpdateAttempt(ctx context.Context, attemptID uint64, response webhook.Response) error

	// ListAttemptsForDelivery returns all attempts for a delivery in creation order
	ListAttemptsForDelivery(ctx context.Context, deliveryID uint64) ([]*schema.DeliveryAttempt, error)

	// DeleteOrphanedPayloads deletes payload rows no delivery references anymore
	DeleteOrphanedPayloads(ctx context.Context) (int64, error)

	// DeleteDeliveriesOlderThan deletes terminal deliveries created before the
	// cutoff, together with their attempts
	DeleteDeliveriesOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
