package roomapimodels

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type RoomCreateData struct {
	RoomNumber string `json:"room_number"`
	Floor      int    `json:"floor"`
	Category   string `json:"category"`
}

func (r RoomCreateData) Validate() error {
	if r.RoomNumber == "" {
		return errors.New("room number is required")
	}
	return nil
}

type CheckinData struct {
	GuestName    string     `json:"guest_name"`
	GuestPhone   string     `json:"guest_phone"`
	GuestCount   int        `json:"guest_count"`
	CheckoutDate *time.Time `json:"checkout_date"`
}

func (r CheckinData) Validate() error {
	if r.GuestName == "" {
		return errors.New("guest name is required")
	}
	if r.GuestCount <= 0 {
		return errors.New("guest count must be positive")
	}
	return nil
}

type RoomStatusData struct {
	Status models.RoomStatus `json:"status"`
}

func (r RoomStatusData) Validate() error {
	if !r.Status.IsValid() {
		return errors.Errorf("unknown room status: %v", r.Status)
	}
	return nil
}

type RoomView struct {
	ID              string                 `json:"id"`
	RoomNumber      string                 `json:"room_number"`
	Floor           int                    `json:"floor"`
	Category        string                 `json:"category"`
	Status          models.RoomStatus      `json:"status"`
	OccupancyStatus models.OccupancyStatus `json:"occupancy_status"`

	AssignedHousekeeperID *string `json:"assigned_housekeeper_id,omitempty"`

	GuestName    string     `json:"guest_name,omitempty"`
	GuestCount   int        `json:"guest_count,omitempty"`
	CheckinDate  *time.Time `json:"checkin_date,omitempty"`
	CheckoutDate *time.Time `json:"checkout_date,omitempty"`

	PriorityScore     int  `json:"priority_score"`
	NeedsMinibarCheck bool `json:"needs_minibar_check"`
	HasActiveSession  bool `json:"has_active_session"`
}

func RoomConvert(rec dbmodels.Room) RoomView {
	return RoomView{
		ID:                    rec.ID,
		RoomNumber:            rec.RoomNumber,
		Floor:                 rec.Floor,
		Category:              rec.Category,
		Status:                rec.Status,
		OccupancyStatus:       rec.OccupancyStatus,
		AssignedHousekeeperID: rec.AssignedHousekeeperID,
		GuestName:             rec.GuestName,
		GuestCount:            rec.GuestCount,
		CheckinDate:           rec.CheckinDate,
		CheckoutDate:          rec.CheckoutDate,
		PriorityScore:         rec.PriorityScore,
		NeedsMinibarCheck:     rec.NeedsMinibarCheck,
		HasActiveSession:      rec.HasActiveSession(),
	}
}

// CheckinView returns the fresh session token once, at check-in.
type CheckinView struct {
	Room         RoomView `json:"room"`
	SessionToken string   `json:"session_token"`
}
