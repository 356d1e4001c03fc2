package dbmodels

import (
	"hotel-ops-backend/models"
	"time"
)

type Room struct {
	BaseModel
	RoomNumber string `gorm:"type:varchar(10);uniqueIndex"`
	Floor      int
	Category   string `gorm:"type:varchar(50)"`

	Status          models.RoomStatus      `gorm:"type:varchar(20);index"`
	OccupancyStatus models.OccupancyStatus `gorm:"type:varchar(30);index"`

	AssignedHousekeeperID *string `gorm:"type:varchar(36)"`

	GuestName     string `gorm:"type:varchar(255)"`
	GuestPhone    string `gorm:"type:varchar(20)"`
	GuestCount    int
	CheckinDate   *time.Time
	CheckoutDate  *time.Time

	// GuestSessionToken is the QR session secret. Non-null only while the
	// occupancy implies an active stay; checkout clears it.
	GuestSessionToken *string `gorm:"type:varchar(64);index"`

	PriorityScore    int `gorm:"index"`
	NeedsMinibarCheck bool
}

func (r Room) HasActiveSession() bool {
	return r.GuestSessionToken != nil && r.OccupancyStatus.HasActiveStay()
}
