package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Webhook represents the webhooks table - registered delivery targets.
type Webhook struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WebhookID is a unique identifier for the webhook (UUID)
	WebhookID string `gorm:"column:webhook_id;not null;unique;type:varchar(36)"`
	// AppID references the owning app
	AppID uint64 `gorm:"column:app_id;not null;index"`
	// App is the owning app (preloaded for delivery dispatch)
	App *App `gorm:"foreignKey:AppID"`
	// Name is an optional operator-facing label
	Name string `gorm:"column:name;type:varchar(255)"`
	// TargetURL is the delivery destination; its scheme selects the transport
	// (http, https, awssqs, gcpubsub)
	TargetURL string `gorm:"column:target_url;not null;type:text"`
	// SecretKey is used for HMAC-SHA256 payload signing; empty disables signing
	SecretKey string `gorm:"column:secret_key;type:text"`
	// SubscriptionQuery, when set, selects subscription-based payload
	// rendering instead of the fixed per-event-type payload
	SubscriptionQuery *string `gorm:"column:subscription_query;type:text"`
	// Events is a JSON array of subscribed event types, e.g.
	// ["order_created", "order_updated"] or ["any_events"]
	Events datatypes.JSON `gorm:"column:events;not null;type:jsonb"`
	// IsActive indicates whether this webhook should receive deliveries
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this webhook was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this webhook was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Webhook model
func (Webhook) TableName() string {
	return "webhooks"
}

// HasSubscriptionQuery reports whether this webhook renders payloads from a
// stored subscription query.
func (w *Webhook) HasSubscriptionQuery() bool {
	return w.SubscriptionQuery != nil && *w.SubscriptionQuery != ""
}
