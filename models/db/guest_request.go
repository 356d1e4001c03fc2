package dbmodels

import (
	"hotel-ops-backend/models"
	"time"
)

type GuestRequest struct {
	BaseModel
	RoomID     string `gorm:"type:varchar(36);index"`
	RoomNumber string `gorm:"type:varchar(10)"`

	RequestType models.GuestRequestType   `gorm:"type:varchar(20)"`
	Status      models.GuestRequestStatus `gorm:"type:varchar(20);index"`
	Description string

	// Forwarded-to-department side channel, set at most once.
	ForwardedToDepartment *models.Department `gorm:"type:varchar(20)"`
	ForwardedByID         *string            `gorm:"type:varchar(36)"`
	ForwardedAt           *time.Time

	SeenAt      *time.Time
	CompletedAt *time.Time
}

func (r GuestRequest) IsForwarded() bool {
	return r.ForwardedToDepartment != nil
}
