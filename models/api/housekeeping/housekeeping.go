package hkapimodels

import (
	"hotel-ops-backend/models"
	apimodels "hotel-ops-backend/models/api"
	dbmodels "hotel-ops-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type HkTaskCreateData struct {
	RoomID        string              `json:"room_id"`
	CleaningType  models.CleaningType `json:"cleaning_type"`
	Priority      models.TaskPriority `json:"priority"`
	AssignedToID  string              `json:"assigned_to_id"`
	ScheduledDate *time.Time          `json:"scheduled_date"`
}

func (r HkTaskCreateData) Validate() error {
	if r.RoomID == "" {
		return errors.New("room is required")
	}
	if !r.CleaningType.IsValid() {
		return errors.Errorf("unknown cleaning type: %v", r.CleaningType)
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		return errors.Errorf("unknown priority: %v", r.Priority)
	}
	return nil
}

type HkTaskCompleteData struct {
	LinensChanged      bool   `json:"linens_changed"`
	TowelsChanged      bool   `json:"towels_changed"`
	AmenitiesRestocked bool   `json:"amenities_restocked"`
	IssuesFound        string `json:"issues_found"`
	TimeSpentMinutes   int    `json:"time_spent_minutes"`
}

type HkTaskInspectData struct {
	Passed bool   `json:"passed"`
	Notes  string `json:"notes"`
}

type HkTaskFilter struct {
	apimodels.Pagination
	Statuses     []models.HousekeepingStatus `json:"statuses"`
	AssignedToID string                      `json:"assigned_to_id"`
	RoomID       string                      `json:"room_id"`
	DateFrom     *time.Time                  `json:"date_from"`
	DateTo       *time.Time                  `json:"date_to"`
}

type HkTaskView struct {
	ID           string                    `json:"id"`
	RoomID       string                    `json:"room_id"`
	RoomNumber   string                    `json:"room_number"`
	CleaningType models.CleaningType       `json:"cleaning_type"`
	Status       models.HousekeepingStatus `json:"status"`
	StatusName   string                    `json:"status_name"`
	Priority     models.TaskPriority       `json:"priority"`

	AssignedToID   *string `json:"assigned_to_id,omitempty"`
	AssignedToName string  `json:"assigned_to_name,omitempty"`

	ScheduledDate time.Time  `json:"scheduled_date"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	InspectedAt   *time.Time `json:"inspected_at,omitempty"`

	InspectionNotes  string `json:"inspection_notes,omitempty"`
	InspectionPassed *bool  `json:"inspection_passed,omitempty"`

	IssuesFound        string `json:"issues_found,omitempty"`
	LinensChanged      bool   `json:"linens_changed"`
	TowelsChanged      bool   `json:"towels_changed"`
	AmenitiesRestocked bool   `json:"amenities_restocked"`
	TimeSpentMinutes   int    `json:"time_spent_minutes"`
}

func HkTaskConvert(rec dbmodels.HousekeepingTask) HkTaskView {
	return HkTaskView{
		ID:                 rec.ID,
		RoomID:             rec.RoomID,
		RoomNumber:         rec.RoomNumber,
		CleaningType:       rec.CleaningType,
		Status:             rec.Status,
		StatusName:         rec.Status.ToHuman(),
		Priority:           rec.Priority,
		AssignedToID:       rec.AssignedToID,
		AssignedToName:     rec.AssignedToName,
		ScheduledDate:      rec.ScheduledDate,
		StartedAt:          rec.StartedAt,
		CompletedAt:        rec.CompletedAt,
		InspectedAt:        rec.InspectedAt,
		InspectionNotes:    rec.InspectionNotes,
		InspectionPassed:   rec.InspectionPassed,
		IssuesFound:        rec.IssuesFound,
		LinensChanged:      rec.LinensChanged,
		TowelsChanged:      rec.TowelsChanged,
		AmenitiesRestocked: rec.AmenitiesRestocked,
		TimeSpentMinutes:   rec.TimeSpentMinutes,
	}
}
