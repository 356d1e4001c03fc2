package guestapimodels

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type GuestRequestCreateData struct {
	RequestType models.GuestRequestType `json:"request_type"`
	Description string                  `json:"description"`
}

func (r GuestRequestCreateData) Validate() error {
	if !r.RequestType.IsValid() {
		return errors.Errorf("unknown request type: %v", r.RequestType)
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	return nil
}

type GuestRequestStatusData struct {
	Status models.GuestRequestStatus `json:"status"`
}

func (r GuestRequestStatusData) Validate() error {
	if !r.Status.IsValid() {
		return errors.Errorf("unknown status: %v", r.Status)
	}
	return nil
}

type GuestRequestForwardData struct {
	Department models.Department `json:"department"`
}

func (r GuestRequestForwardData) Validate() error {
	if !r.Department.IsValid() {
		return errors.Errorf("unknown department: %v", r.Department)
	}
	return nil
}

type GuestRequestView struct {
	ID          string                    `json:"id"`
	RoomID      string                    `json:"room_id"`
	RoomNumber  string                    `json:"room_number"`
	RequestType models.GuestRequestType   `json:"request_type"`
	Status      models.GuestRequestStatus `json:"status"`
	Description string                    `json:"description"`

	ForwardedToDepartment *models.Department `json:"forwarded_to_department,omitempty"`
	ForwardedByID         *string            `json:"forwarded_by_id,omitempty"`
	ForwardedAt           *time.Time         `json:"forwarded_at,omitempty"`

	SeenAt      *time.Time `json:"seen_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func GuestRequestConvert(rec dbmodels.GuestRequest) GuestRequestView {
	return GuestRequestView{
		ID:                    rec.ID,
		RoomID:                rec.RoomID,
		RoomNumber:            rec.RoomNumber,
		RequestType:           rec.RequestType,
		Status:                rec.Status,
		Description:           rec.Description,
		ForwardedToDepartment: rec.ForwardedToDepartment,
		ForwardedByID:         rec.ForwardedByID,
		ForwardedAt:           rec.ForwardedAt,
		SeenAt:                rec.SeenAt,
		CompletedAt:           rec.CompletedAt,
		CreatedAt:             rec.CreatedAt,
	}
}
