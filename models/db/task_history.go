package dbmodels

import (
	"hotel-ops-backend/models"
)

// TaskHistory is append-only: rows are never updated, and deleted only when the
// owning task is hard-deleted.
type TaskHistory struct {
	BaseModel
	TaskID   string          `gorm:"type:varchar(36);index"`
	UserID   string          `gorm:"type:varchar(36)"`
	UserName string          `gorm:"type:varchar(255)"`
	UserRole models.UserRole `gorm:"type:varchar(50)"`

	Action     models.TaskAction  `gorm:"type:varchar(50)"`
	StatusFrom *models.TaskStatus `gorm:"type:varchar(30)"`
	StatusTo   models.TaskStatus  `gorm:"type:varchar(30)"`

	// Notes carries the human-readable line shown in the history view. When a
	// structured reason exists it is rendered as "<prefix><ReasonText>".
	Notes      string
	ReasonKind models.ReasonKind `gorm:"type:varchar(30)"`
	ReasonText string

	AssignedTo      IDList `gorm:"type:text"`
	AssignedToNames string
}
