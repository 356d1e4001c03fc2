package taskapimodels

import (
	"hotel-ops-backend/models"
	apimodels "hotel-ops-backend/models/api"
	dbmodels "hotel-ops-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type TaskCreateData struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	Priority    models.TaskPriority `json:"priority"`
	AssignedTo  []string            `json:"assigned_to"` // pre-assignment at creation
	AssignToSef bool                `json:"assign_to_sef"`

	IsRecurring       bool                     `json:"is_recurring"`
	RecurrencePattern models.RecurrencePattern `json:"recurrence_pattern"`
	RecurrenceDays    []string                 `json:"recurrence_days"`
	ExecutionTime     string                   `json:"execution_time"`
	ScheduledFor      *time.Time               `json:"scheduled_for"`
}

func (r TaskCreateData) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Priority == "" {
		return errors.New("priority is required")
	}
	if !r.Priority.IsValid() {
		return errors.Errorf("unknown priority: %v", r.Priority)
	}
	if r.IsRecurring {
		if !r.RecurrencePattern.IsValid() {
			return errors.Errorf("unknown recurrence pattern: %v", r.RecurrencePattern)
		}
		if r.RecurrencePattern.IsRepeating() && r.ExecutionTime == "" {
			return errors.New("execution time is required for a recurring task")
		}
	}
	return nil
}

type TaskEditData struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	Priority    models.TaskPriority `json:"priority"`

	RecurrencePattern models.RecurrencePattern `json:"recurrence_pattern"`
	RecurrenceDays    []string                 `json:"recurrence_days"`
	ExecutionTime     string                   `json:"execution_time"`
}

func (r TaskEditData) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		return errors.Errorf("unknown priority: %v", r.Priority)
	}
	if r.RecurrencePattern != "" && !r.RecurrencePattern.IsValid() {
		return errors.Errorf("unknown recurrence pattern: %v", r.RecurrencePattern)
	}
	return nil
}

type TaskAssignData struct {
	AssignedTo []string          `json:"assigned_to"`
	Status     models.TaskStatus `json:"status"`  // assigned_to_radnik or with_sef
	Version    int               `json:"version"` // version the caller read
}

func (r TaskAssignData) Validate() error {
	if r.Status != models.TaskStatusAssignedToRadnik && r.Status != models.TaskStatusWithSef {
		return errors.Errorf("assignment cannot target status %v", r.Status)
	}
	if r.Status == models.TaskStatusAssignedToRadnik && len(r.AssignedTo) == 0 {
		return errors.New("at least one assignee is required")
	}
	return nil
}

type TaskStatusData struct {
	Status       models.TaskStatus `json:"status"`
	WorkerReport string            `json:"worker_report"`
	Version      int               `json:"version"`
}

func (r TaskStatusData) Validate() error {
	if !r.Status.IsValid() {
		return errors.Errorf("unknown status: %v", r.Status)
	}
	if r.Status == models.TaskStatusCompleted && r.WorkerReport == "" {
		return errors.New("worker report is required to complete a task")
	}
	if r.Status.IsReturn() && r.WorkerReport == "" {
		return errors.New("worker report is required to return a task")
	}
	return nil
}

type TaskFilter struct {
	apimodels.Pagination
	Statuses   []models.TaskStatus `json:"statuses"`
	Priority   models.TaskPriority `json:"priority"`
	AssignedTo string              `json:"assigned_to"`
	Search     string              `json:"search"`
}

type TaskView struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Location     string              `json:"location"`
	Priority     models.TaskPriority `json:"priority"`
	Status       models.TaskStatus   `json:"status"`
	StatusName   string              `json:"status_name"`
	Version      int                 `json:"version"`
	CreatedBy    string              `json:"created_by"`
	CreatedByName string             `json:"created_by_name"`
	AssignedTo   []string            `json:"assigned_to"`
	WorkerReport string              `json:"worker_report,omitempty"`

	ReceiptConfirmedAt *time.Time `json:"receipt_confirmed_at,omitempty"`
	ReceiptConfirmedBy *string    `json:"receipt_confirmed_by,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CompletedBy        *string    `json:"completed_by,omitempty"`

	IsRecurring       bool                     `json:"is_recurring"`
	RecurrencePattern models.RecurrencePattern `json:"recurrence_pattern,omitempty"`
	ParentTaskID      *string                  `json:"parent_task_id,omitempty"`
	ScheduledFor      *time.Time               `json:"scheduled_for,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func TaskConvert(rec dbmodels.Task) TaskView {
	return TaskView{
		ID:                 rec.ID,
		Title:              rec.Title,
		Description:        rec.Description,
		Location:           rec.Location,
		Priority:           rec.Priority,
		Status:             rec.Status,
		StatusName:         rec.Status.ToHuman(),
		Version:            rec.Version,
		CreatedBy:          rec.CreatedByID,
		CreatedByName:      rec.CreatedByName,
		AssignedTo:         rec.AssignedTo,
		WorkerReport:       rec.WorkerReport,
		ReceiptConfirmedAt: rec.ReceiptConfirmedAt,
		ReceiptConfirmedBy: rec.ReceiptConfirmedBy,
		CompletedAt:        rec.CompletedAt,
		CompletedBy:        rec.CompletedByID,
		IsRecurring:        rec.IsRecurring,
		RecurrencePattern:  rec.RecurrencePattern,
		ParentTaskID:       rec.ParentTaskID,
		ScheduledFor:       rec.ScheduledFor,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
}

type TaskHistoryView struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	UserName   string             `json:"user_name"`
	UserRole   models.UserRole    `json:"user_role"`
	Action     models.TaskAction  `json:"action"`
	StatusFrom *models.TaskStatus `json:"status_from,omitempty"`
	StatusTo   models.TaskStatus  `json:"status_to"`
	Notes      string             `json:"notes,omitempty"`
	ReasonKind models.ReasonKind  `json:"reason_kind,omitempty"`
	ReasonText string             `json:"reason_text,omitempty"`
	AssignedTo []string           `json:"assigned_to,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

func TaskHistoryConvert(rec dbmodels.TaskHistory) TaskHistoryView {
	return TaskHistoryView{
		ID:         rec.ID,
		UserID:     rec.UserID,
		UserName:   rec.UserName,
		UserRole:   rec.UserRole,
		Action:     rec.Action,
		StatusFrom: rec.StatusFrom,
		StatusTo:   rec.StatusTo,
		Notes:      rec.Notes,
		ReasonKind: rec.ReasonKind,
		ReasonText: rec.ReasonText,
		AssignedTo: rec.AssignedTo,
		Timestamp:  rec.CreatedAt,
	}
}
