package calendar

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProviderGoogle  = "google"
	ProviderOutlook = "outlook"
	ProviderApple   = "apple"
)

func IsValidProvider(p string) bool {
	switch p {
	case ProviderGoogle, ProviderOutlook, ProviderApple:
		return true
	}
	return false
}

// Integration is a user's link to an external calendar. Syncing is simulated:
// only LastSync moves.
type Integration struct {
	ID                uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_calendar_user_provider"`
	Provider          string     `gorm:"column:provider;type:varchar(20);not null;uniqueIndex:uq_calendar_user_provider"`
	Email             string     `gorm:"column:email;type:varchar(255);not null"`
	IsEnabled         bool       `gorm:"column:is_enabled;not null"`
	SyncLeaveRequests bool       `gorm:"column:sync_leave_requests;not null"`
	SyncNotifications bool       `gorm:"column:sync_notifications;not null"`
	LastSync          *time.Time `gorm:"column:last_sync"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (Integration) TableName() string {
	return "calendar_integrations"
}
