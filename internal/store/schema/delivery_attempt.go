package schema

import (
	"time"

	"gorm.io/datatypes"
)

// DeliveryAttempt represents the delivery_attempts table - one concrete
// network call made in service of a delivery. Rows are append-only: each
// retry inserts a new attempt; an attempt is only updated once, to attach the
// transport response captured during that attempt's lifetime.
type DeliveryAttempt struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DeliveryID references the delivery this attempt serves
	DeliveryID uint64 `gorm:"column:delivery_id;not null;index"`
	// TaskID is the background task execution identifier; nil for sync attempts
	TaskID *string `gorm:"column:task_id;type:varchar(255)"`
	// RequestHeaders are the headers sent with the request, as JSON
	RequestHeaders datatypes.JSON `gorm:"column:request_headers;type:jsonb"`
	// ResponseHeaders are the headers returned by the receiver, as JSON
	ResponseHeaders datatypes.JSON `gorm:"column:response_headers;type:jsonb"`
	// ResponseStatusCode is the HTTP status code, when one was received
	ResponseStatusCode *int `gorm:"column:response_status_code"`
	// Response is the response body or error text (limited to 4KB)
	Response string `gorm:"column:response;type:text"`
	// Duration is the wall-clock seconds spent in the transport call
	Duration float64 `gorm:"column:duration;not null;default:0"`
	// Status is pending until the transport call returns, then success or failed
	Status EventDeliveryStatus `gorm:"column:status;not null;default:pending"`
	// CreatedAt is the timestamp when this attempt was started
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DeliveryAttempt model
func (DeliveryAttempt) TableName() string {
	return "delivery_attempts"
}
