package schema

import (
	"time"

	"gorm.io/datatypes"
)

// EventPayload represents the event_payloads table - immutable serialized
// JSON blobs of domain events at dispatch time. One payload may be shared by
// many deliveries (a fixed-schema event fanned out to N webhooks); it is
// owned exclusively by the deliveries referencing it and becomes eligible for
// sweeping once no delivery references it anymore.
type EventPayload struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Payload is the serialized event payload
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// CreatedAt is the timestamp when this payload was rendered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EventPayload model
func (EventPayload) TableName() string {
	return "event_payloads"
}
