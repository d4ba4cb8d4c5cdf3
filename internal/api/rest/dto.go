package rest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/store/schema"
	"github.com/commercekit/event-delivery/internal/webhook"
)

// AppResponse is the API representation of a registered app
type AppResponse struct {
	ID        uint64    `json:"id"`
	AppID     string    `json:"app_id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// WebhookResponse is the API representation of a webhook registration.
// The secret key is write-only and never echoed back.
type WebhookResponse struct {
	ID                uint64    `json:"id"`
	WebhookID         string    `json:"webhook_id"`
	AppID             uint64    `json:"app_id"`
	Name              string    `json:"name"`
	TargetURL         string    `json:"target_url"`
	SubscriptionQuery *string   `json:"subscription_query,omitempty"`
	Events            []string  `json:"events"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AttemptResponse is the API representation of one delivery attempt
type AttemptResponse struct {
	ID                 uint64    `json:"id"`
	TaskID             *string   `json:"task_id,omitempty"`
	Status             string    `json:"status"`
	ResponseStatusCode *int      `json:"response_status_code,omitempty"`
	Response           string    `json:"response,omitempty"`
	Duration           float64   `json:"duration"`
	CreatedAt          time.Time `json:"created_at"`
}

// DeliveryResponse is the API representation of one event delivery
type DeliveryResponse struct {
	ID        uint64            `json:"id"`
	EventType string            `json:"event_type"`
	Status    string            `json:"status"`
	WebhookID uint64            `json:"webhook_id"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Attempts  []AttemptResponse `json:"attempts,omitempty"`
}

// DeliveryListResponse wraps a page of deliveries
type DeliveryListResponse struct {
	Deliveries []DeliveryResponse `json:"deliveries"`
	Total      int                `json:"total"`
}

// RetryDeliveryResponse acknowledges a manual retry request
type RetryDeliveryResponse struct {
	DeliveryID uint64 `json:"delivery_id"`
	Status     string `json:"status"`
}

// CreateAppRequest registers an app. AppID is generated when omitted.
type CreateAppRequest struct {
	AppID    string `json:"app_id"`
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// CreateWebhookRequest registers a webhook for an existing app
type CreateWebhookRequest struct {
	AppID             uint64   `json:"app_id" binding:"required"`
	Name              string   `json:"name"`
	TargetURL         string   `json:"target_url" binding:"required"`
	SecretKey         string   `json:"secret_key"`
	SubscriptionQuery *string  `json:"subscription_query"`
	Events            []string `json:"events" binding:"required"`
	IsActive          *bool    `json:"is_active"`
}

// UpdateWebhookRequest patches a webhook; absent fields are left unchanged
type UpdateWebhookRequest struct {
	Name              *string  `json:"name"`
	TargetURL         *string  `json:"target_url"`
	SecretKey         *string  `json:"secret_key"`
	SubscriptionQuery *string  `json:"subscription_query"`
	Events            []string `json:"events"`
	IsActive          *bool    `json:"is_active"`
}

// MapAppToDTO maps an app row to its API representation
func MapAppToDTO(app *schema.App) AppResponse {
	return AppResponse{
		ID:        app.ID,
		AppID:     app.AppID,
		Name:      app.Name,
		IsActive:  app.IsActive,
		CreatedAt: app.CreatedAt,
	}
}

// MapWebhookToDTO maps a webhook row to its API representation
func MapWebhookToDTO(wh *schema.Webhook) WebhookResponse {
	var events []string
	// Events is validated JSON on the way in; an unreadable column yields an
	// empty list rather than a failed read
	_ = json.Unmarshal(wh.Events, &events)

	return WebhookResponse{
		ID:                wh.ID,
		WebhookID:         wh.WebhookID,
		AppID:             wh.AppID,
		Name:              wh.Name,
		TargetURL:         wh.TargetURL,
		SubscriptionQuery: wh.SubscriptionQuery,
		Events:            events,
		IsActive:          wh.IsActive,
		CreatedAt:         wh.CreatedAt,
		UpdatedAt:         wh.UpdatedAt,
	}
}

// MapAttemptToDTO maps an attempt row to its API representation
func MapAttemptToDTO(attempt *schema.DeliveryAttempt) AttemptResponse {
	return AttemptResponse{
		ID:                 attempt.ID,
		TaskID:             attempt.TaskID,
		Status:             string(attempt.Status),
		ResponseStatusCode: attempt.ResponseStatusCode,
		Response:           attempt.Response,
		Duration:           attempt.Duration,
		CreatedAt:          attempt.CreatedAt,
	}
}

// MapDeliveryToDTO maps a delivery row to its API representation
func MapDeliveryToDTO(d *schema.EventDelivery, attempts []*schema.DeliveryAttempt) DeliveryResponse {
	resp := DeliveryResponse{
		ID:        d.ID,
		EventType: d.EventType,
		Status:    string(d.Status),
		WebhookID: d.WebhookID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for _, attempt := range attempts {
		resp.Attempts = append(resp.Attempts, MapAttemptToDTO(attempt))
	}
	return resp
}

// parseEventTypes validates the requested event type names
func parseEventTypes(names []string) ([]domain.EventType, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one event type is required")
	}

	events := make([]domain.EventType, 0, len(names))
	for _, name := range names {
		eventType := domain.EventType(name)
		if !eventType.IsValid() {
			return nil, fmt.Errorf("unknown event type: %s", name)
		}
		events = append(events, eventType)
	}
	return events, nil
}

// validateTargetURL checks that the target is parseable and its scheme maps
// to a supported transport
func validateTargetURL(target string) error {
	parsed, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid target URL: %w", err)
	}

	switch parsed.Scheme {
	case webhook.SchemeHTTP, webhook.SchemeHTTPS:
		if parsed.Host == "" {
			return fmt.Errorf("target URL is missing a host")
		}
	case webhook.SchemeAWSSQS, webhook.SchemePubSub:
		// Queue URLs carry credentials and routing in opaque forms; the
		// transport validates the rest at send time
	default:
		return fmt.Errorf("unsupported target URL scheme: %q", parsed.Scheme)
	}

	return nil
}
