package dbmodels

import (
	"hotel-ops-backend/models"
	"time"
)

// DeviceToken maps a user to a push endpoint. A token value belongs to at most
// one active user at any instant, across the whole user base - staff share
// devices between shifts.
type DeviceToken struct {
	BaseModel
	UserID      string                `gorm:"type:varchar(36);index;uniqueIndex:idx_user_token,priority:1"`
	PushToken   string                `gorm:"type:varchar(512);index;uniqueIndex:idx_user_token,priority:2"`
	Platform    models.DevicePlatform `gorm:"type:varchar(10)"`
	IsActive    bool                  `gorm:"index"`
	LastUpdated time.Time
}
