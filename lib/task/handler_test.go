package taskhandler

import (
	notificationhandler "hotel-ops-backend/lib/notification"
	"hotel-ops-backend/models"
	taskapimodels "hotel-ops-backend/models/api/task"
	dbmodels "hotel-ops-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeTaskStore struct {
	rec     *dbmodels.Task
	updMaps []map[string]interface{}
}

func (s *fakeTaskStore) Create(rec dbmodels.Task) (string, error) { return "task-1", nil }

func (s *fakeTaskStore) Update(id string, updMap map[string]interface{}) error {
	s.updMaps = append(s.updMaps, updMap)
	return nil
}

func (s *fakeTaskStore) UpdateVersioned(id string, version int, updMap map[string]interface{}) error {
	s.updMaps = append(s.updMaps, updMap)
	return nil
}

func (s *fakeTaskStore) Delete(id string) error { return nil }

func (s *fakeTaskStore) GetByID(id string) (*dbmodels.Task, error) { return s.rec, nil }

func (s *fakeTaskStore) List(filter taskapimodels.TaskFilter) ([]dbmodels.Task, int64, error) {
	return nil, 0, nil
}

func (s *fakeTaskStore) ListByAssignee(userID string, statuses []models.TaskStatus) ([]dbmodels.Task, error) {
	return nil, nil
}

func (s *fakeTaskStore) ListChildren(parentID string) ([]dbmodels.Task, error) { return nil, nil }

func (s *fakeTaskStore) ListOpenChildren(parentID string) ([]dbmodels.Task, error) { return nil, nil }

func (s *fakeTaskStore) ListTemplates() ([]dbmodels.Task, error) { return nil, nil }

func (s *fakeTaskStore) ListScheduledBetween(from, to time.Time) ([]dbmodels.Task, error) {
	return nil, nil
}

func (s *fakeTaskStore) ChildExistsFor(parentID string, scheduledFor time.Time) (bool, error) {
	return false, nil
}

type fakeHistoryStore struct {
	saved []dbmodels.TaskHistory
}

func (s *fakeHistoryStore) Save(rec dbmodels.TaskHistory) error {
	s.saved = append(s.saved, rec)
	return nil
}

func (s *fakeHistoryStore) ListAsc(taskID string) ([]dbmodels.TaskHistory, error) { return nil, nil }

func (s *fakeHistoryStore) ListDesc(taskID string) ([]dbmodels.TaskHistory, error) { return nil, nil }

type fakeUsersStore struct{}

func (fakeUsersStore) Create(rec dbmodels.StaffUser) (string, error) { return "", nil }

func (fakeUsersStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (fakeUsersStore) GetByID(id string) (*dbmodels.StaffUser, error) { return nil, nil }

func (fakeUsersStore) GetByEmail(email string) (*dbmodels.StaffUser, error) { return nil, nil }

func (fakeUsersStore) List(role *models.UserRole) ([]dbmodels.StaffUser, error) { return nil, nil }

func (fakeUsersStore) ListActive() ([]dbmodels.StaffUser, error) { return nil, nil }

func (fakeUsersStore) ListByRole(role models.UserRole) ([]dbmodels.StaffUser, error) {
	return nil, nil
}

func (fakeUsersStore) SetLastLogin(id string, at time.Time) error { return nil }

type fakeNotifier struct{}

func (fakeNotifier) TaskChanged(task dbmodels.Task, newStatus models.TaskStatus) {}

func (fakeNotifier) NotifyUser(userID string, code models.NotificationCode, title, msg string) {}

func (fakeNotifier) NotifyRole(role models.UserRole, code models.NotificationCode, title, msg string) {
}

func newTestHandler(rec *dbmodels.Task) (impl, *fakeTaskStore, *fakeHistoryStore) {
	store := &fakeTaskStore{rec: rec}
	history := &fakeHistoryStore{}
	handler := impl{
		store:        store,
		historyStore: history,
		usersStore:   fakeUsersStore{},
	}
	return handler, store, history
}

func assignedTask(assignees ...string) *dbmodels.Task {
	return &dbmodels.Task{
		BaseModel:  dbmodels.BaseModel{ID: "task-1"},
		Title:      "Leaking radiator",
		Status:     models.TaskStatusAssignedToRadnik,
		AssignedTo: dbmodels.NewIDList(assignees),
	}
}

func TestChangeStatusCompletionPair(t *testing.T) {
	prevNotifier := notificationhandler.Instance
	notificationhandler.Instance = fakeNotifier{}
	defer func() { notificationhandler.Instance = prevNotifier }()

	radnik := models.AuthUser{ID: "radnik-1", Name: "Marko Radnik", Role: models.UserRoleRadnik}

	t.Run("completing sets both completion fields", func(t *testing.T) {
		handler, store, history := newTestHandler(assignedTask("radnik-1"))

		err := handler.ChangeStatus(radnik, "task-1", taskapimodels.TaskStatusData{
			Status:       models.TaskStatusCompleted,
			WorkerReport: "replaced the valve",
		})
		require.Nil(t, err)
		require.Len(t, store.updMaps, 1)
		updMap := store.updMaps[0]
		require.NotNil(t, updMap["completed_at"])
		require.Equal(t, "radnik-1", updMap["completed_by_id"])

		require.Len(t, history.saved, 1)
		require.Equal(t, models.ReasonKindCompleted, history.saved[0].ReasonKind)
		require.Equal(t, models.NotePrefixCompleted+"replaced the valve", history.saved[0].Notes)
	})

	t.Run("un-completing clears both completion fields", func(t *testing.T) {
		rec := assignedTask("radnik-1")
		rec.Status = models.TaskStatusCompleted
		handler, store, _ := newTestHandler(rec)

		sef := models.AuthUser{ID: "sef-1", Name: "Petar Sef", Role: models.UserRoleSef}
		err := handler.ChangeStatus(sef, "task-1", taskapimodels.TaskStatusData{
			Status: models.TaskStatusWithOperator,
		})
		require.Nil(t, err)
		require.Len(t, store.updMaps, 1)
		updMap := store.updMaps[0]
		completedAt, ok := updMap["completed_at"]
		require.True(t, ok)
		require.Nil(t, completedAt)
		completedBy, ok := updMap["completed_by_id"]
		require.True(t, ok)
		require.Nil(t, completedBy)
	})
}

func TestChangeStatusReceiptInvalidation(t *testing.T) {
	prevNotifier := notificationhandler.Instance
	notificationhandler.Instance = fakeNotifier{}
	defer func() { notificationhandler.Instance = prevNotifier }()

	radnik := models.AuthUser{ID: "radnik-1", Name: "Marko Radnik", Role: models.UserRoleRadnik}

	t.Run("leaving assigned_to_radnik clears the receipt pair", func(t *testing.T) {
		handler, store, _ := newTestHandler(assignedTask("radnik-1"))

		err := handler.ChangeStatus(radnik, "task-1", taskapimodels.TaskStatusData{
			Status:       models.TaskStatusReturnedToSef,
			WorkerReport: "missing spare part",
		})
		require.Nil(t, err)
		require.Len(t, store.updMaps, 1)
		updMap := store.updMaps[0]
		receiptAt, ok := updMap["receipt_confirmed_at"]
		require.True(t, ok)
		require.Nil(t, receiptAt)
		receiptBy, ok := updMap["receipt_confirmed_by"]
		require.True(t, ok)
		require.Nil(t, receiptBy)
	})

	t.Run("only the assignee or a supervisor may move an assigned task", func(t *testing.T) {
		handler, store, _ := newTestHandler(assignedTask("radnik-2"))

		err := handler.ChangeStatus(radnik, "task-1", taskapimodels.TaskStatusData{
			Status:       models.TaskStatusCompleted,
			WorkerReport: "done",
		})
		require.NotNil(t, err)
		require.Empty(t, store.updMaps)
	})

	t.Run("illegal transition is rejected", func(t *testing.T) {
		rec := assignedTask("radnik-1")
		rec.Status = models.TaskStatusNew
		handler, store, _ := newTestHandler(rec)

		err := handler.ChangeStatus(radnik, "task-1", taskapimodels.TaskStatusData{
			Status:       models.TaskStatusCompleted,
			WorkerReport: "done",
		})
		require.NotNil(t, err)
		require.Empty(t, store.updMaps)
	})
}

func TestConfirmReceipt(t *testing.T) {
	radnik := models.AuthUser{ID: "radnik-1", Name: "Marko Radnik", Role: models.UserRoleRadnik}

	t.Run("assignee confirms", func(t *testing.T) {
		handler, store, _ := newTestHandler(assignedTask("radnik-1"))

		require.Nil(t, handler.ConfirmReceipt(radnik, "task-1"))
		require.Len(t, store.updMaps, 1)
		updMap := store.updMaps[0]
		require.NotNil(t, updMap["receipt_confirmed_at"])
		require.Equal(t, "radnik-1", updMap["receipt_confirmed_by"])
	})

	t.Run("receipt only exists while the task is assigned", func(t *testing.T) {
		rec := assignedTask("radnik-1")
		rec.Status = models.TaskStatusWithSef
		handler, store, _ := newTestHandler(rec)

		require.NotNil(t, handler.ConfirmReceipt(radnik, "task-1"))
		require.Empty(t, store.updMaps)
	})

	t.Run("non-assignee cannot confirm", func(t *testing.T) {
		handler, store, _ := newTestHandler(assignedTask("radnik-2"))

		require.NotNil(t, handler.ConfirmReceipt(radnik, "task-1"))
		require.Empty(t, store.updMaps)
	})
}
