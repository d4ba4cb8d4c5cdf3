package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/store/schema"
	"github.com/commercekit/event-delivery/internal/webhook"
)

const (
	// maxResponseBodyLength caps the stored response body/error text per attempt
	maxResponseBodyLength = 4096
	// maxErrorTextLength caps transport error text stored as an attempt response
	maxErrorTextLength = 1024
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// truncate shortens s to at most limit bytes
func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

// GetWebhooksForEvent retrieves active webhooks of active apps subscribed to
// the given event type, in registration order. Async event types also match
// the any_events wildcard subscription; sync event types must be subscribed
// explicitly.
func (s *pgStore) GetWebhooksForEvent(ctx context.Context, eventType domain.EventType) ([]*schema.Webhook, error) {
	exact, err := json.Marshal([]string{eventType.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event type filter: %w", err)
	}

	query := s.db.WithContext(ctx).
		Model(&schema.Webhook{}).
		Joins("JOIN apps ON apps.id = webhooks.app_id").
		Where("webhooks.is_active = ?", true).
		Where("apps.is_active = ?", true)

	if eventType.IsAsync() {
		wildcard, err := json.Marshal([]string{domain.EventTypeAny.String()})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal wildcard filter: %w", err)
		}
		query = query.Where("webhooks.events @> ? OR webhooks.events @> ?", string(exact), string(wildcard))
	} else {
		query = query.Where("webhooks.events @> ?", string(exact))
	}

	var webhooks []*schema.Webhook
	if err := query.Order("webhooks.id ASC").Find(&webhooks).Error; err != nil {
		return nil, fmt.Errorf("failed to get webhooks for event type %s: %w", eventType, err)
	}

	return webhooks, nil
}

// GetWebhookByID retrieves a webhook by its UUID
func (s *pgStore) GetWebhookByID(ctx context.Context, webhookID string) (*schema.Webhook, error) {
	var wh schema.Webhook
	err := s.db.WithContext(ctx).
		Preload("App").
		Where("webhook_id = ?", webhookID).
		First(&wh).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook %s: %w", webhookID, err)
	}

	return &wh, nil
}

// CreateApp registers an app
func (s *pgStore) CreateApp(ctx context.Context, input CreateAppInput) (*schema.App, error) {
	app := schema.App{
		AppID:    input.AppID,
		Name:     input.Name,
		IsActive: input.IsActive,
	}

	if err := s.db.WithContext(ctx).Create(&app).Error; err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	return &app, nil
}

// CreateWebhook registers a webhook
func (s *pgStore) CreateWebhook(ctx context.Context, input CreateWebhookInput) (*schema.Webhook, error) {
	events, err := marshalEvents(input.Events)
	if err != nil {
		return nil, err
	}

	wh := schema.Webhook{
		WebhookID:         input.WebhookID,
		AppID:             input.AppID,
		Name:              input.Name,
		TargetURL:         input.TargetURL,
		SecretKey:         input.SecretKey,
		SubscriptionQuery: input.SubscriptionQuery,
		Events:            datatypes.JSON(events),
		IsActive:          input.IsActive,
	}

	if err := s.db.WithContext(ctx).Create(&wh).Error; err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	return &wh, nil
}

// UpdateWebhook patches a webhook; nil input fields are left unchanged
func (s *pgStore) UpdateWebhook(ctx context.Context, webhookID string, input UpdateWebhookInput) (*schema.Webhook, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.TargetURL != nil {
		updates["target_url"] = *input.TargetURL
	}
	if input.SecretKey != nil {
		updates["secret_key"] = *input.SecretKey
	}
	if input.SubscriptionQuery != nil {
		updates["subscription_query"] = *input.SubscriptionQuery
	}
	if input.Events != nil {
		events, err := marshalEvents(input.Events)
		if err != nil {
			return nil, err
		}
		updates["events"] = events
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		result := s.db.WithContext(ctx).
			Model(&schema.Webhook{}).
			Where("webhook_id = ?", webhookID).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update webhook %s: %w", webhookID, result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}

	return s.GetWebhookByID(ctx, webhookID)
}

// DeleteWebhook removes a webhook registration
func (s *pgStore) DeleteWebhook(ctx context.Context, webhookID string) error {
	if err := s.db.WithContext(ctx).
		Where("webhook_id = ?", webhookID).
		Delete(&schema.Webhook{}).Error; err != nil {
		return fmt.Errorf("failed to delete webhook %s: %w", webhookID, err)
	}

	return nil
}

// CreateDeliveriesForPayload creates one shared payload row plus one pending
// delivery per webhook referencing it, using exactly two inserts regardless of
// fan-out width.
func (s *pgStore) CreateDeliveriesForPayload(ctx context.Context, eventType domain.EventType, payload []byte, webhookIDs []uint64) ([]*schema.EventDelivery, error) {
	if len(webhookIDs) == 0 {
		return nil, nil
	}

	var deliveries []*schema.EventDelivery
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := schema.EventPayload{Payload: datatypes.JSON(payload)}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create event payload: %w", err)
		}

		deliveries = make([]*schema.EventDelivery, 0, len(webhookIDs))
		for _, webhookID := range webhookIDs {
			payloadID := row.ID
			deliveries = append(deliveries, &schema.EventDelivery{
				EventType: eventType.String(),
				Status:    schema.EventDeliveryStatusPending,
				WebhookID: webhookID,
				PayloadID: &payloadID,
			})
		}
		if err := tx.Create(&deliveries).Error; err != nil {
			return fmt.Errorf("failed to create event deliveries: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deliveries, nil
}

// CreateDeliveriesWithPayloads creates one payload row and one pending
// delivery per pair, using exactly two batch inserts.
func (s *pgStore) CreateDeliveriesWithPayloads(ctx context.Context, eventType domain.EventType, pairs []WebhookPayload) ([]*schema.EventDelivery, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	var deliveries []*schema.EventDelivery
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payloads := make([]*schema.EventPayload, 0, len(pairs))
		for _, pair := range pairs {
			payloads = append(payloads, &schema.EventPayload{Payload: datatypes.JSON(pair.Payload)})
		}
		if err := tx.Create(&payloads).Error; err != nil {
			return fmt.Errorf("failed to create event payloads: %w", err)
		}

		deliveries = make([]*schema.EventDelivery, 0, len(pairs))
		for i, pair := range pairs {
			payloadID := payloads[i].ID
			deliveries = append(deliveries, &schema.EventDelivery{
				EventType: eventType.String(),
				Status:    schema.EventDeliveryStatusPending,
				WebhookID: pair.WebhookID,
				PayloadID: &payloadID,
			})
		}
		if err := tx.Create(&deliveries).Error; err != nil {
			return fmt.Errorf("failed to create event deliveries: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deliveries, nil
}

// CreateDelivery creates a single pending delivery with its own payload
func (s *pgStore) CreateDelivery(ctx context.Context, eventType domain.EventType, webhookID uint64, payload []byte) (*schema.EventDelivery, error) {
	var delivery *schema.EventDelivery
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := schema.EventPayload{Payload: datatypes.JSON(payload)}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create event payload: %w", err)
		}

		payloadID := row.ID
		delivery = &schema.EventDelivery{
			EventType: eventType.String(),
			Status:    schema.EventDeliveryStatusPending,
			WebhookID: webhookID,
			PayloadID: &payloadID,
		}
		if err := tx.Create(delivery).Error; err != nil {
			return fmt.Errorf("failed to create event delivery: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return delivery, nil
}

// GetDeliveryByID retrieves a delivery with its webhook, owning app and
// payload preloaded. Returns nil with no error when the row is gone.
func (s *pgStore) GetDeliveryByID(ctx context.Context, deliveryID uint64) (*schema.EventDelivery, error) {
	var delivery schema.EventDelivery
	err := s.db.WithContext(ctx).
		Preload("Webhook").
		Preload("Webhook.App").
		Preload("Payload").
		Where("id = ?", deliveryID).
		First(&delivery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get delivery %d: %w", deliveryID, err)
	}

	return &delivery, nil
}

// UpdateDeliveryStatus advances a delivery's status. The WHERE guard keeps
// terminal states from being overwritten by late writers: only pending rows
// move, except for an idempotent rewrite of the same value.
func (s *pgStore) UpdateDeliveryStatus(ctx context.Context, deliveryID uint64, status schema.EventDeliveryStatus) error {
	err := s.db.WithContext(ctx).
		Model(&schema.EventDelivery{}).
		Where("id = ? AND (status = ? OR status = ?)", deliveryID, schema.EventDeliveryStatusPending, status).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update delivery %d status: %w", deliveryID, err)
	}

	return nil
}

// ClearSuccessfulDelivery detaches the payload reference of a successfully
// completed delivery. No-op for rows in any other status.
func (s *pgStore) ClearSuccessfulDelivery(ctx context.Context, deliveryID uint64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.EventDelivery{}).
		Where("id = ? AND status = ?", deliveryID, schema.EventDeliveryStatusSuccess).
		Updates(map[string]interface{}{
			"payload_id": nil,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to clear delivery %d payload: %w", deliveryID, err)
	}

	return nil
}

// RequeueDelivery moves a failed delivery back to pending. The WHERE guard
// keeps successful deliveries final and pending ones untouched.
func (s *pgStore) RequeueDelivery(ctx context.Context, deliveryID uint64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.EventDelivery{}).
		Where("id = ? AND status = ?", deliveryID, schema.EventDeliveryStatusFailed).
		Updates(map[string]interface{}{
			"status":     schema.EventDeliveryStatusPending,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to requeue delivery %d: %w", deliveryID, err)
	}

	return nil
}

// ListDeliveriesForWebhook returns the most recent deliveries for a webhook
func (s *pgStore) ListDeliveriesForWebhook(ctx context.Context, webhookID string, limit int) ([]*schema.EventDelivery, error) {
	if limit <= 0 {
		limit = 100
	}

	var deliveries []*schema.EventDelivery
	err := s.db.WithContext(ctx).
		Joins("JOIN webhooks ON webhooks.id = event_deliveries.webhook_id").
		Where("webhooks.webhook_id = ?", webhookID).
		Order("event_deliveries.id DESC").
		Limit(limit).
		Find(&deliveries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries for webhook %s: %w", webhookID, err)
	}

	return deliveries, nil
}

// CreateAttempt inserts a pending attempt row before the send happens
func (s *pgStore) CreateAttempt(ctx context.Context, deliveryID uint64, taskID *string) (*schema.DeliveryAttempt, error) {
	attempt := schema.DeliveryAttempt{
		DeliveryID: deliveryID,
		TaskID:     taskID,
		Status:     schema.EventDeliveryStatusPending,
	}

	if err := s.db.WithContext(ctx).Create(&attempt).Error; err != nil {
		return nil, fmt.Errorf("failed to create attempt for delivery %d: %w", deliveryID, err)
	}

	return &attempt, nil
}

// UpdateAttempt attaches the transport response to an attempt row. Bodies are
// truncated to 4KB; error text captured without a response is truncated to 1KB.
func (s *pgStore) UpdateAttempt(ctx context.Context, attemptID uint64, response webhook.Response) error {
	content := truncate(response.Content, maxResponseBodyLength)
	if response.Status == webhook.ResponseStatusFailed && response.StatusCode == nil {
		content = truncate(response.Content, maxErrorTextLength)
	}

	updates := map[string]interface{}{
		"response": content,
		"duration": response.Duration.Seconds(),
		"status":   schema.EventDeliveryStatus(response.Status),
	}

	if response.StatusCode != nil {
		updates["response_status_code"] = *response.StatusCode
	}
	if len(response.RequestHeaders) > 0 {
		headers, err := json.Marshal(response.RequestHeaders)
		if err != nil {
			return fmt.Errorf("failed to marshal request headers: %w", err)
		}
		updates["request_headers"] = headers
	}
	if len(response.ResponseHeaders) > 0 {
		headers, err := json.Marshal(response.ResponseHeaders)
		if err != nil {
			return fmt.Errorf("failed to marshal response headers: %w", err)
		}
		updates["response_headers"] = headers
	}

	err := s.db.WithContext(ctx).
		Model(&schema.DeliveryAttempt{}).
		Where("id = ?", attemptID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update attempt %d: %w", attemptID, err)
	}

	return nil
}

// ListAttemptsForDelivery returns all attempts for a delivery in creation order
func (s *pgStore) ListAttemptsForDelivery(ctx context.Context, deliveryID uint64) ([]*schema.DeliveryAttempt, error) {
	var attempts []*schema.DeliveryAttempt
	err := s.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Order("id ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts for delivery %d: %w", deliveryID, err)
	}

	return attempts, nil
}

// DeleteOrphanedPayloads deletes payload rows no delivery references anymore
func (s *pgStore) DeleteOrphanedPayloads(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM event_deliveries WHERE event_deliveries.payload_id = event_payloads.id)").
		Delete(&schema.EventPayload{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete orphaned payloads: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// DeleteDeliveriesOlderThan deletes terminal deliveries created before the
// cutoff together with their attempts. Pending deliveries are kept so retries
// in flight never lose their row.
func (s *pgStore) DeleteDeliveriesOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("delivery_id IN (SELECT id FROM event_deliveries WHERE created_at < ? AND status <> ?)", cutoff, schema.EventDeliveryStatusPending).
			Delete(&schema.DeliveryAttempt{}).Error; err != nil {
			return fmt.Errorf("failed to delete expired attempts: %w", err)
		}

		result := tx.
			Where("created_at < ? AND status <> ?", cutoff, schema.EventDeliveryStatusPending).
			Delete(&schema.EventDelivery{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete expired deliveries: %w", result.Error)
		}
		deleted = result.RowsAffected

		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

func marshalEvents(events []domain.EventType) ([]byte, error) {
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.String())
	}
	data, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook events: %w", err)
	}

	return data, nil
}
