package dbmodels

import (
	"hotel-ops-backend/models"
	"time"

	"gorm.io/gorm"
)

type Task struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)"`
	Description string
	Location    string              `gorm:"type:varchar(255)"`
	Priority    models.TaskPriority `gorm:"type:varchar(20)"`
	Status      models.TaskStatus   `gorm:"type:varchar(30);index"`

	// Version guards against concurrent transitions: every status write checks
	// and increments it, stale writers get a conflict.
	Version int `gorm:"default:0"`

	CreatedByID   string `gorm:"type:varchar(36)"`
	CreatedByName string
	AssignedTo    IDList `gorm:"type:text"`

	WorkerReport string

	ReceiptConfirmedAt *time.Time
	ReceiptConfirmedBy *string `gorm:"type:varchar(36)"`

	CompletedAt   *time.Time
	CompletedByID *string `gorm:"type:varchar(36)"`

	IsRecurring       bool
	RecurrencePattern models.RecurrencePattern `gorm:"type:varchar(20)"`
	RecurrenceDays    IDList                   `gorm:"type:text"` // weekly: 1..7 (Mon..Sun); monthly: 1..31; yearly: MM-DD
	ExecutionTime     string                   `gorm:"type:varchar(5)"` // HH:MM local
	ParentTaskID      *string                  `gorm:"type:varchar(36);index"`
	ScheduledFor      *time.Time               `gorm:"index"`

	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// IsRecurringTemplate - a recurring task without a parent, from which dated
// child instances are generated.
func (t Task) IsRecurringTemplate() bool {
	return t.IsRecurring && t.ParentTaskID == nil
}

// IsScheduledForFuture - future-dated recurring children are exempt from
// immediate notification.
func (t Task) IsScheduledForFuture(now time.Time) bool {
	return t.ScheduledFor != nil && t.ScheduledFor.After(now)
}

type TaskImage struct {
	BaseModel
	TaskID      string `gorm:"type:varchar(36);index"`
	FileName    string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(100)"`
	ObjectKey   string `gorm:"type:varchar(512)"` // key in the S3 bucket
	UploadedBy  string `gorm:"type:varchar(36)"`
}
