package housekeepinghandler

import (
	"hotel-ops-backend/db"
	housekeepingstore "hotel-ops-backend/lib/housekeeping/store"
	notificationhandler "hotel-ops-backend/lib/notification"
	roomstore "hotel-ops-backend/lib/room/store"
	usersstore "hotel-ops-backend/lib/users/store"
	"hotel-ops-backend/lib/utils/apperrors"
	"hotel-ops-backend/models"
	hkapimodels "hotel-ops-backend/models/api/housekeeping"
	dbmodels "hotel-ops-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(actor models.AuthUser, data hkapimodels.HkTaskCreateData) (id string, err error)
	Start(actor models.AuthUser, taskID string) error
	Complete(actor models.AuthUser, taskID string, data hkapimodels.HkTaskCompleteData) error
	Inspect(actor models.AuthUser, taskID string, data hkapimodels.HkTaskInspectData) error
	GetByID(taskID string) (*hkapimodels.HkTaskView, error)
	List(filter hkapimodels.HkTaskFilter) ([]hkapimodels.HkTaskView, int64, error)
	Delete(actor models.AuthUser, taskID string) error
	// CreateForCheckout builds the checkout cleaning task, auto-assigned to the
	// least-loaded active housekeeper when one exists. Best-effort by contract:
	// callers log the error and move on, checkout never fails on it.
	CreateForCheckout(room dbmodels.Room) (id string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      housekeepingstore.NewInstance(db.DB),
		roomStore:  roomstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      housekeepingstore.Provider
	roomStore  roomstore.Provider
	usersStore usersstore.Provider
}

func (i impl) GetLogger(taskID string) *log.Entry {
	return log.WithField("hk_task_id", taskID)
}

func (i impl) Create(actor models.AuthUser, data hkapimodels.HkTaskCreateData) (string, error) {
	if !actor.Role.IsSupervisor() && actor.Role != models.UserRoleRecepcija {
		return "", apperrors.Forbidden("only a supervisor or reception may create cleaning tasks")
	}
	if err := data.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}
	room, err := i.roomStore.GetByID(data.RoomID)
	if err != nil {
		return "", errors.Wrap(err, "failed to get room")
	}
	if room == nil {
		return "", apperrors.NotFound("room not found")
	}
	rec := dbmodels.HousekeepingTask{
		RoomID:        room.ID,
		RoomNumber:    room.RoomNumber,
		CleaningType:  data.CleaningType,
		Status:        models.HkStatusPending,
		Priority:      data.Priority,
		ScheduledDate: time.Now(),
	}
	if data.ScheduledDate != nil {
		rec.ScheduledDate = *data.ScheduledDate
	}
	if data.AssignedToID != "" {
		user, err := i.usersStore.GetByID(data.AssignedToID)
		if err != nil {
			return "", errors.Wrap(err, "failed to get assignee")
		}
		if user == nil || user.Role != models.UserRoleSobarica {
			return "", apperrors.Validation("assignee must be an active housekeeper")
		}
		rec.AssignedToID = &user.ID
		rec.AssignedToName = user.GetFullName()
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create cleaning task")
	}
	if rec.AssignedToID != nil {
		notificationhandler.Instance.NotifyUser(*rec.AssignedToID, models.NotifyHkTaskAssigned,
			"Room "+room.RoomNumber, "Cleaning assigned: "+string(rec.CleaningType))
	}
	return id, nil
}

func (i impl) Start(actor models.AuthUser, taskID string) error {
	rec, err := i.getExisting(taskID)
	if err != nil {
		return err
	}
	if !rec.Status.IsAllowChange(models.HkStatusInProgress) {
		return apperrors.Validation("cleaning cannot be started from status " + rec.Status.ToHuman())
	}
	if !rec.IsAssignedTo(actor.ID) {
		return apperrors.Forbidden("only the assigned housekeeper may start cleaning")
	}
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := housekeepingstore.NewInstance(tx)
		if err := txStore.Update(taskID, map[string]interface{}{
			"status":     models.HkStatusInProgress,
			"started_at": now,
		}); err != nil {
			return err
		}
		return roomstore.NewInstance(tx).Update(rec.RoomID, map[string]interface{}{
			"status": models.RoomStatusInCleaning,
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to start cleaning")
	}
	return nil
}

// Complete finishes the clean and projects the room toward clean in the same
// transaction, so the task is never observable as done while the room still
// shows dirty.
func (i impl) Complete(actor models.AuthUser, taskID string, data hkapimodels.HkTaskCompleteData) error {
	rec, err := i.getExisting(taskID)
	if err != nil {
		return err
	}
	if !rec.Status.IsAllowChange(models.HkStatusCompleted) {
		return apperrors.Validation("cleaning cannot be completed from status " + rec.Status.ToHuman())
	}
	if !rec.IsAssignedTo(actor.ID) {
		return apperrors.Forbidden("only the assigned housekeeper may complete cleaning")
	}
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := housekeepingstore.NewInstance(tx)
		if err := txStore.Update(taskID, map[string]interface{}{
			"status":              models.HkStatusCompleted,
			"completed_at":        now,
			"linens_changed":      data.LinensChanged,
			"towels_changed":      data.TowelsChanged,
			"amenities_restocked": data.AmenitiesRestocked,
			"issues_found":        data.IssuesFound,
			"time_spent_minutes":  data.TimeSpentMinutes,
		}); err != nil {
			return err
		}
		return roomstore.NewInstance(tx).Update(rec.RoomID, map[string]interface{}{
			"status":         models.RoomStatusClean,
			"priority_score": 0,
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to complete cleaning")
	}
	notificationhandler.Instance.NotifyRole(models.UserRoleSef, models.NotifyHkTaskCompleted,
		"Room "+rec.RoomNumber, "Cleaning completed, awaiting inspection")
	return nil
}

func (i impl) Inspect(actor models.AuthUser, taskID string, data hkapimodels.HkTaskInspectData) error {
	if !actor.Role.CanInspectRooms() {
		return apperrors.Forbidden("only a supervisor may inspect rooms")
	}
	rec, err := i.getExisting(taskID)
	if err != nil {
		return err
	}
	target := models.HkStatusInspected
	roomStatus := models.RoomStatusInspected
	if !data.Passed {
		target = models.HkStatusNeedsRework
		roomStatus = models.RoomStatusDirty
	}
	if !rec.Status.IsAllowChange(target) {
		return apperrors.Validation("inspection is not allowed from status " + rec.Status.ToHuman())
	}
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := housekeepingstore.NewInstance(tx)
		if err := txStore.Update(taskID, map[string]interface{}{
			"status":            target,
			"inspected_at":      now,
			"inspection_notes":  data.Notes,
			"inspection_passed": data.Passed,
			"inspected_by_id":   actor.ID,
		}); err != nil {
			return err
		}
		return roomstore.NewInstance(tx).Update(rec.RoomID, map[string]interface{}{
			"status": roomStatus,
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to inspect cleaning")
	}
	if rec.AssignedToID != nil {
		msg := "Inspection passed"
		if !data.Passed {
			msg = "Rework required: " + data.Notes
		}
		notificationhandler.Instance.NotifyUser(*rec.AssignedToID, models.NotifyHkTaskInspected,
			"Room "+rec.RoomNumber, msg)
	}
	return nil
}

func (i impl) GetByID(taskID string) (*hkapimodels.HkTaskView, error) {
	rec, err := i.getExisting(taskID)
	if err != nil {
		return nil, err
	}
	view := hkapimodels.HkTaskConvert(*rec)
	return &view, nil
}

func (i impl) List(filter hkapimodels.HkTaskFilter) ([]hkapimodels.HkTaskView, int64, error) {
	list, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list cleaning tasks")
	}
	result := make([]hkapimodels.HkTaskView, 0, len(list))
	for _, rec := range list {
		result = append(result, hkapimodels.HkTaskConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(actor models.AuthUser, taskID string) error {
	if !actor.Role.IsSupervisor() {
		return apperrors.Forbidden("only a supervisor may delete cleaning tasks")
	}
	if _, err := i.getExisting(taskID); err != nil {
		return err
	}
	return i.store.Delete(taskID)
}

func (i impl) CreateForCheckout(room dbmodels.Room) (string, error) {
	rec := dbmodels.HousekeepingTask{
		RoomID:        room.ID,
		RoomNumber:    room.RoomNumber,
		CleaningType:  models.CleaningCheckout,
		Status:        models.HkStatusPending,
		Priority:      models.TaskPriorityUrgent,
		ScheduledDate: time.Now(),
	}
	assignee, err := i.leastLoadedHousekeeper()
	if err != nil {
		i.GetLogger("").WithError(err).Warn("housekeeper lookup failed, creating checkout task unassigned")
	}
	if assignee != nil {
		rec.AssignedToID = &assignee.ID
		rec.AssignedToName = assignee.GetFullName()
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create checkout cleaning task")
	}
	if rec.AssignedToID != nil {
		notificationhandler.Instance.NotifyUser(*rec.AssignedToID, models.NotifyHkTaskAssigned,
			"Room "+room.RoomNumber, "Checkout cleaning assigned")
	}
	return id, nil
}

func (i impl) leastLoadedHousekeeper() (*dbmodels.StaffUser, error) {
	housekeepers, err := i.usersStore.ListByRole(models.UserRoleSobarica)
	if err != nil {
		return nil, err
	}
	var best *dbmodels.StaffUser
	bestLoad := int64(0)
	for idx := range housekeepers {
		load, err := i.store.CountOpenByAssignee(housekeepers[idx].ID)
		if err != nil {
			return nil, err
		}
		if best == nil || load < bestLoad {
			best = &housekeepers[idx]
			bestLoad = load
		}
	}
	return best, nil
}

func (i impl) getExisting(taskID string) (*dbmodels.HousekeepingTask, error) {
	rec, err := i.store.GetByID(taskID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cleaning task")
	}
	if rec == nil {
		return nil, apperrors.NotFound("cleaning task not found")
	}
	return rec, nil
}
