package taskhandler

import (
	"hotel-ops-backend/config"
	"hotel-ops-backend/db"
	notificationhandler "hotel-ops-backend/lib/notification"
	assignmentpath "hotel-ops-backend/lib/task/assignment-path"
	taskhistorystore "hotel-ops-backend/lib/task/history-store"
	"hotel-ops-backend/lib/task/recurrence"
	taskstore "hotel-ops-backend/lib/task/store"
	usersstore "hotel-ops-backend/lib/users/store"
	"hotel-ops-backend/lib/utils/apperrors"
	"hotel-ops-backend/lib/utils/helpers"
	"hotel-ops-backend/models"
	taskapimodels "hotel-ops-backend/models/api/task"
	dbmodels "hotel-ops-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(author models.AuthUser, data taskapimodels.TaskCreateData) (id string, err error)
	Edit(actor models.AuthUser, taskID string, data taskapimodels.TaskEditData) error
	Assign(actor models.AuthUser, taskID string, data taskapimodels.TaskAssignData) error
	ChangeStatus(actor models.AuthUser, taskID string, data taskapimodels.TaskStatusData) error
	ConfirmReceipt(actor models.AuthUser, taskID string) error
	Delete(actor models.AuthUser, taskID string) error
	GetByID(taskID string) (*taskapimodels.TaskView, error)
	List(filter taskapimodels.TaskFilter) ([]taskapimodels.TaskView, int64, error)
	History(taskID string) ([]taskapimodels.TaskHistoryView, error)
	AssignmentPath(taskID string) (string, error)
	EnsureChildInstances(template dbmodels.Task) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        taskstore.NewInstance(db.DB),
		historyStore: taskhistorystore.NewInstance(db.DB),
		usersStore:   usersstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:        taskstore.NewInstance(tx),
		historyStore: taskhistorystore.NewInstance(tx),
		usersStore:   usersstore.NewInstance(tx),
	}
}

type impl struct {
	store        taskstore.Provider
	historyStore taskhistorystore.Provider
	usersStore   usersstore.Provider
}

func (i impl) GetLogger(taskID string) *log.Entry {
	return log.WithField("task_id", taskID)
}

func (i impl) Create(author models.AuthUser, data taskapimodels.TaskCreateData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}
	status := models.TaskStatusNew
	assignedTo := dbmodels.NewIDList(data.AssignedTo)
	if len(assignedTo) > 0 {
		status = models.TaskStatusAssignedToRadnik
	} else if data.AssignToSef {
		status = models.TaskStatusWithSef
	}
	rec := dbmodels.Task{
		Title:             data.Title,
		Description:       data.Description,
		Location:          data.Location,
		Priority:          data.Priority,
		Status:            status,
		CreatedByID:       author.ID,
		CreatedByName:     author.Name,
		AssignedTo:        assignedTo,
		IsRecurring:       data.IsRecurring,
		RecurrencePattern: data.RecurrencePattern,
		RecurrenceDays:    dbmodels.NewIDList(data.RecurrenceDays),
		ExecutionTime:     data.ExecutionTime,
		ScheduledFor:      data.ScheduledFor,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create task")
	}
	rec.ID = id

	i.saveHistory(dbmodels.TaskHistory{
		TaskID:          id,
		UserID:          author.ID,
		UserName:        author.Name,
		UserRole:        author.Role,
		Action:          models.TaskActionCreated,
		StatusTo:        status,
		AssignedTo:      assignedTo,
		AssignedToNames: i.assigneeNames(assignedTo),
	})

	if rec.IsRecurringTemplate() && rec.RecurrencePattern.IsRepeating() {
		if err = i.EnsureChildInstances(rec); err != nil {
			i.GetLogger(id).WithError(err).Error("failed to expand recurring template")
		}
	}
	notificationhandler.Instance.TaskChanged(rec, status)
	return id, nil
}

func (i impl) Edit(actor models.AuthUser, taskID string, data taskapimodels.TaskEditData) error {
	if !actor.Role.CanEditTaskFields() {
		return apperrors.Forbidden("only a supervisor may edit task fields")
	}
	if err := data.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}
	rec, err := i.getExisting(taskID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":       data.Title,
		"description": data.Description,
		"location":    data.Location,
	}
	if data.Priority != "" {
		updMap["priority"] = data.Priority
	}
	if data.RecurrencePattern != "" {
		updMap["recurrence_pattern"] = data.RecurrencePattern
		updMap["recurrence_days"] = dbmodels.NewIDList(data.RecurrenceDays)
		updMap["execution_time"] = data.ExecutionTime
	}
	err = i.store.Update(taskID, updMap)
	if err != nil {
		return errors.Wrap(err, "failed to update task")
	}
	i.saveHistory(dbmodels.TaskHistory{
		TaskID:   taskID,
		UserID:   actor.ID,
		UserName: actor.Name,
		UserRole: actor.Role,
		Action:   models.TaskActionFieldsChanged,
		StatusTo: rec.Status,
	})
	return nil
}

func (i impl) Assign(actor models.AuthUser, taskID string, data taskapimodels.TaskAssignData) error {
	if !actor.Role.CanAssignTasks() {
		return apperrors.Forbidden("only a supervisor or operator may assign tasks")
	}
	if err := data.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}
	rec, err := i.getExisting(taskID)
	if err != nil {
		return err
	}
	if !rec.Status.IsAllowChange(data.Status) {
		return apperrors.Validation("status change is not allowed: " + rec.Status.ToHuman() + " -> " + data.Status.ToHuman())
	}
	assignedTo := dbmodels.NewIDList(data.AssignedTo)
	updMap := map[string]interface{}{
		"status":      data.Status,
		"assigned_to": assignedTo,
	}
	// a new assignee set voids the previous receipt confirmation
	if !assignedTo.Equal(rec.AssignedTo) || data.Status != models.TaskStatusAssignedToRadnik {
		updMap["receipt_confirmed_at"] = nil
		updMap["receipt_confirmed_by"] = nil
	}
	err = i.store.UpdateVersioned(taskID, data.Version, updMap)
	if err != nil {
		if errors.Is(err, taskstore.ErrVersionConflict) {
			return apperrors.Conflict("task was modified by someone else, reload and retry")
		}
		return errors.Wrap(err, "failed to assign task")
	}
	statusFrom := rec.Status
	i.saveHistory(dbmodels.TaskHistory{
		TaskID:          taskID,
		UserID:          actor.ID,
		UserName:        actor.Name,
		UserRole:        actor.Role,
		Action:          models.TaskActionStatusChanged,
		StatusFrom:      &statusFrom,
		StatusTo:        data.Status,
		AssignedTo:      assignedTo,
		AssignedToNames: i.assigneeNames(assignedTo),
	})

	rec.Status = data.Status
	rec.AssignedTo = assignedTo
	notificationhandler.Instance.TaskChanged(*rec, data.Status)
	return nil
}

func (i impl) ChangeStatus(actor models.AuthUser, taskID string, data taskapimodels.TaskStatusData) error {
	if err := data.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}
	rec, err := i.getExisting(taskID)
	if err != nil {
		return err
	}
	if !rec.Status.IsAllowChange(data.Status) {
		return apperrors.Validation("status change is not allowed: " + rec.Status.ToHuman() + " -> " + data.Status.ToHuman())
	}
	// while a task sits with a technician only that technician (or a
	// supervisor) may move it on
	if rec.Status == models.TaskStatusAssignedToRadnik &&
		!actor.Role.IsSupervisor() &&
		!rec.AssignedTo.Contains(actor.ID) {
		return apperrors.Forbidden("only the assignee may update this task")
	}

	now := time.Now()
	updMap := map[string]interface{}{
		"status": data.Status,
	}
	if data.WorkerReport != "" {
		updMap["worker_report"] = data.WorkerReport
	}
	reasonKind := models.ReasonKindNone
	switch data.Status {
	case models.TaskStatusCompleted:
		updMap["completed_at"] = now
		updMap["completed_by_id"] = actor.ID
		reasonKind = models.ReasonKindCompleted
	case models.TaskStatusReturnedToSef:
		reasonKind = models.ReasonKindReturnedToSef
	case models.TaskStatusReturnedToOperator:
		reasonKind = models.ReasonKindReturnedToOperator
	}
	// un-completing clears the completion pair, both or neither
	if rec.Status == models.TaskStatusCompleted && data.Status != models.TaskStatusCompleted {
		updMap["completed_at"] = nil
		updMap["completed_by_id"] = nil
	}
	if data.Status != models.TaskStatusAssignedToRadnik {
		updMap["receipt_confirmed_at"] = nil
		updMap["receipt_confirmed_by"] = nil
	}
	err = i.store.UpdateVersioned(taskID, data.Version, updMap)
	if err != nil {
		if errors.Is(err, taskstore.ErrVersionConflict) {
			return apperrors.Conflict("task was modified by someone else, reload and retry")
		}
		return errors.Wrap(err, "failed to change task status")
	}

	notes := ""
	if reasonKind != models.ReasonKindNone {
		notes = reasonKind.NotePrefix() + data.WorkerReport
	}
	statusFrom := rec.Status
	i.saveHistory(dbmodels.TaskHistory{
		TaskID:     taskID,
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserRole:   actor.Role,
		Action:     models.TaskActionStatusChanged,
		StatusFrom: &statusFrom,
		StatusTo:   data.Status,
		Notes:      notes,
		ReasonKind: reasonKind,
		ReasonText: data.WorkerReport,
	})

	rec.Status = data.Status
	notificationhandler.Instance.TaskChanged(*rec, data.Status)
	return nil
}

func (i impl) ConfirmReceipt(actor models.AuthUser, taskID string) error {
	rec, err := i.getExisting(taskID)
	if err != nil {
		return err
	}
	if rec.Status != models.TaskStatusAssignedToRadnik {
		return apperrors.Validation("receipt can be confirmed only on an assigned task")
	}
	if !rec.AssignedTo.Contains(actor.ID) {
		return apperrors.Forbidden("only a current assignee may confirm receipt")
	}
	now := time.Now()
	err = i.store.Update(taskID, map[string]interface{}{
		"receipt_confirmed_at": now,
		"receipt_confirmed_by": actor.ID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to confirm receipt")
	}
	i.saveHistory(dbmodels.TaskHistory{
		TaskID:   taskID,
		UserID:   actor.ID,
		UserName: actor.Name,
		UserRole: actor.Role,
		Action:   models.TaskActionReceiptConfirmed,
		StatusTo: rec.Status,
	})
	return nil
}

// Delete removes a task. Deleting a recurring template cascades: open children
// are hard-deleted with their own history rows, finalized children are kept
// but detached and marked so reports still show them.
func (i impl) Delete(actor models.AuthUser, taskID string) error {
	if !actor.Role.IsSupervisor() {
		return apperrors.Forbidden("only a supervisor may delete tasks")
	}
	rec, err := i.getExisting(taskID)
	if err != nil {
		return err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txHandler := NewHandlerWithTx(tx).(impl)
		if rec.IsRecurringTemplate() {
			if err := txHandler.cascadeTemplateDelete(actor, rec.ID); err != nil {
				return err
			}
		}
		if err := txHandler.store.Delete(rec.ID); err != nil {
			return err
		}
		statusFrom := rec.Status
		return txHandler.historyStore.Save(dbmodels.TaskHistory{
			TaskID:     rec.ID,
			UserID:     actor.ID,
			UserName:   actor.Name,
			UserRole:   actor.Role,
			Action:     models.TaskActionDeleted,
			StatusFrom: &statusFrom,
			StatusTo:   models.TaskStatusCancelled,
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete task")
	}
	return nil
}

func (i impl) cascadeTemplateDelete(actor models.AuthUser, templateID string) error {
	children, err := i.store.ListChildren(templateID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if child.Status.IsFinal() {
			// keep finished work visible in reports, just detach it
			err = i.store.Update(child.ID, map[string]interface{}{
				"parent_task_id":     nil,
				"recurrence_pattern": models.RecurrenceCancelled,
			})
			if err != nil {
				return err
			}
			continue
		}
		statusFrom := child.Status
		err = i.historyStore.Save(dbmodels.TaskHistory{
			TaskID:     child.ID,
			UserID:     actor.ID,
			UserName:   actor.Name,
			UserRole:   actor.Role,
			Action:     models.TaskActionDeleted,
			StatusFrom: &statusFrom,
			StatusTo:   models.TaskStatusCancelled,
			ReasonKind: models.ReasonKindCascadeDelete,
			ReasonText: "recurring template removed",
		})
		if err != nil {
			return err
		}
		if err = i.store.Delete(child.ID); err != nil {
			return err
		}
	}
	return nil
}

func (i impl) GetByID(taskID string) (*taskapimodels.TaskView, error) {
	rec, err := i.getExisting(taskID)
	if err != nil {
		return nil, err
	}
	view := taskapimodels.TaskConvert(*rec)
	return &view, nil
}

func (i impl) List(filter taskapimodels.TaskFilter) ([]taskapimodels.TaskView, int64, error) {
	list, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list tasks")
	}
	result := make([]taskapimodels.TaskView, 0, len(list))
	for _, rec := range list {
		result = append(result, taskapimodels.TaskConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) History(taskID string) ([]taskapimodels.TaskHistoryView, error) {
	if _, err := i.getExisting(taskID); err != nil {
		return nil, err
	}
	list, err := i.historyStore.ListDesc(taskID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list task history")
	}
	result := make([]taskapimodels.TaskHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, taskapimodels.TaskHistoryConvert(rec))
	}
	return result, nil
}

func (i impl) AssignmentPath(taskID string) (string, error) {
	if _, err := i.getExisting(taskID); err != nil {
		return "", err
	}
	list, err := i.historyStore.ListAsc(taskID)
	if err != nil {
		return "", errors.Wrap(err, "failed to list task history")
	}
	return assignmentpath.Build(list), nil
}

// EnsureChildInstances materializes the template's dated children up to the
// scheduling horizon. Idempotent: existing instances are never duplicated.
func (i impl) EnsureChildInstances(template dbmodels.Task) error {
	loc, err := time.LoadLocation(config.Conf.App.Timezone)
	if err != nil {
		loc = time.Local
	}
	occurrences := recurrence.NextOccurrences(template, time.Now(), config.Conf.Jobs.RecurrenceHorizonDays, loc)
	for _, at := range occurrences {
		exists, err := i.store.ChildExistsFor(template.ID, at)
		if err != nil {
			return errors.Wrap(err, "failed to check child instance")
		}
		if exists {
			continue
		}
		child := recurrence.ChildFromTemplate(template, at)
		childID, err := i.store.Create(child)
		if err != nil {
			return errors.Wrap(err, "failed to create child instance")
		}
		i.saveHistory(dbmodels.TaskHistory{
			TaskID:          childID,
			UserName:        models.SystemUserName,
			Action:          models.TaskActionCreated,
			StatusTo:        child.Status,
			AssignedTo:      child.AssignedTo,
			AssignedToNames: i.assigneeNames(child.AssignedTo),
		})
	}
	return nil
}

func (i impl) getExisting(taskID string) (*dbmodels.Task, error) {
	rec, err := i.store.GetByID(taskID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get task")
	}
	if rec == nil {
		return nil, apperrors.NotFound("task not found")
	}
	return rec, nil
}

// saveHistory is non-fatal: the transition already committed, a lost audit row
// is logged, not surfaced.
func (i impl) saveHistory(rec dbmodels.TaskHistory) {
	err := i.historyStore.Save(rec)
	if err != nil {
		i.GetLogger(rec.TaskID).WithError(err).Error("failed to save task history")
	}
}

func (i impl) assigneeNames(ids dbmodels.IDList) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		user, err := i.usersStore.GetByID(id)
		if err != nil || user == nil {
			continue
		}
		names = append(names, user.GetFullName())
	}
	return helpers.JoinNames(names, ", ")
}
