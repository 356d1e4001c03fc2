package dbmodels

import "hotel-ops-backend/models"

// PushData holds realtime messages for users who were offline when the event
// fired; the connection hub flushes them on the next connect.
type PushData struct {
	BaseModel
	UserID string                  `gorm:"type:varchar(36);index:idx_user"`
	Code   models.NotificationCode `gorm:"type:varchar(255);index:idx_notify_code"`
	Msg    string
	Title  string
}
