package schema

import "time"

// App represents the apps table - installed integrations that own webhooks.
// The platform's app management surface lives outside this subsystem; the
// delivery core only needs the owning app's name (carried into sync call
// tracing) and its active flag (an inactive app silences all its webhooks).
type App struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AppID is a unique identifier for the app (UUID)
	AppID string `gorm:"column:app_id;not null;unique;type:varchar(36)"`
	// Name is the app's display name
	Name string `gorm:"column:name;not null;type:varchar(60)"`
	// IsActive indicates whether the app's webhooks may receive deliveries
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this app was installed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this app was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the App model
func (App) TableName() string {
	return "apps"
}
