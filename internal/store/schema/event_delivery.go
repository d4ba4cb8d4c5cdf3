package schema

import "time"

// EventDeliveryStatus is the status of an event delivery
type EventDeliveryStatus string

const (
	// EventDeliveryStatusPending is the status of a delivery awaiting its first
	// or next attempt
	EventDeliveryStatusPending EventDeliveryStatus = "pending"
	// EventDeliveryStatusSuccess is the status of a delivered payload
	EventDeliveryStatusSuccess EventDeliveryStatus = "success"
	// EventDeliveryStatusFailed is the status of a delivery whose attempts are
	// exhausted or whose webhook was disabled
	EventDeliveryStatusFailed EventDeliveryStatus = "failed"
)

// EventDelivery represents the event_deliveries table - one intended delivery
// of one payload to one webhook. Status strictly advances pending -> success
// or pending -> failed and never reverts from a terminal state.
type EventDelivery struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventType is the domain event type being delivered
	EventType string `gorm:"column:event_type;not null;type:varchar(64);index"`
	// Status is the current delivery status
	Status EventDeliveryStatus `gorm:"column:status;not null;default:pending"`
	// WebhookID references the target webhook
	WebhookID uint64 `gorm:"column:webhook_id;not null;index"`
	// Webhook is the target webhook (preloaded for dispatch)
	Webhook *Webhook `gorm:"foreignKey:WebhookID"`
	// PayloadID references the rendered payload; nil after the payload has
	// been detached following a terminal success
	PayloadID *uint64 `gorm:"column:payload_id;index"`
	// Payload is the rendered payload (preloaded for dispatch)
	Payload *EventPayload `gorm:"foreignKey:PayloadID"`
	// CreatedAt is the timestamp when this delivery was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this delivery was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EventDelivery model
func (EventDelivery) TableName() string {
	return "event_deliveries"
}
