package dbmodels

import (
	"hotel-ops-backend/models"
	"time"
)

type HousekeepingTask struct {
	BaseModel
	RoomID     string `gorm:"type:varchar(36);index"`
	RoomNumber string `gorm:"type:varchar(10)"`

	CleaningType models.CleaningType       `gorm:"type:varchar(20)"`
	Status       models.HousekeepingStatus `gorm:"type:varchar(20);index"`
	Priority     models.TaskPriority       `gorm:"type:varchar(20)"`

	AssignedToID   *string `gorm:"type:varchar(36);index"`
	AssignedToName string

	ScheduledDate time.Time `gorm:"index"`
	StartedAt     *time.Time
	CompletedAt   *time.Time
	InspectedAt   *time.Time

	InspectionNotes  string
	InspectionPassed *bool
	InspectedByID    *string `gorm:"type:varchar(36)"`

	IssuesFound       string
	LinensChanged     bool
	TowelsChanged     bool
	AmenitiesRestocked bool
	TimeSpentMinutes  int
}

func (t HousekeepingTask) IsAssignedTo(userID string) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}
