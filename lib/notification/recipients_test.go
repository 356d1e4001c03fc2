package notificationhandler

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func fakeMembers(byRole map[models.UserRole][]string) RoleMembers {
	return func(role models.UserRole) ([]string, error) {
		return byRole[role], nil
	}
}

func TestRecipients(t *testing.T) {
	members := fakeMembers(map[models.UserRole][]string{
		models.UserRoleOperater: {"op-1", "op-2"},
		models.UserRoleSef:      {"sef-1"},
	})

	t.Run("new goes to operators", func(t *testing.T) {
		got, err := Recipients(models.TaskStatusNew, dbmodels.IDList{"r-1"}, members)
		require.Nil(t, err)
		require.Equal(t, []string{"op-1", "op-2"}, got)
	})

	t.Run("with_sef goes to supervisors", func(t *testing.T) {
		got, err := Recipients(models.TaskStatusWithSef, dbmodels.IDList{"r-1"}, members)
		require.Nil(t, err)
		require.Equal(t, []string{"sef-1"}, got)
	})

	t.Run("returned_to_sef goes to supervisors", func(t *testing.T) {
		got, err := Recipients(models.TaskStatusReturnedToSef, nil, members)
		require.Nil(t, err)
		require.Equal(t, []string{"sef-1"}, got)
	})

	t.Run("otherwise the assignees", func(t *testing.T) {
		got, err := Recipients(models.TaskStatusAssignedToRadnik, dbmodels.IDList{"r-1", "r-2"}, members)
		require.Nil(t, err)
		require.Equal(t, []string{"r-1", "r-2"}, got)
	})

	t.Run("no assignees means nobody", func(t *testing.T) {
		got, err := Recipients(models.TaskStatusCompleted, dbmodels.IDList{}, members)
		require.Nil(t, err)
		require.Empty(t, got)
	})

	t.Run("deterministic for the same inputs", func(t *testing.T) {
		first, err := Recipients(models.TaskStatusAssignedToRadnik, dbmodels.IDList{"r-1", "r-2"}, members)
		require.Nil(t, err)
		second, err := Recipients(models.TaskStatusAssignedToRadnik, dbmodels.IDList{"r-1", "r-2"}, members)
		require.Nil(t, err)
		require.Equal(t, first, second)
	})

	t.Run("role lookup failure propagates", func(t *testing.T) {
		failing := func(role models.UserRole) ([]string, error) {
			return nil, errors.New("db down")
		}
		_, err := Recipients(models.TaskStatusNew, nil, failing)
		require.NotNil(t, err)
	})

	t.Run("result is a copy of the assignee list", func(t *testing.T) {
		assigned := dbmodels.IDList{"r-1"}
		got, err := Recipients(models.TaskStatusAssignedToRadnik, assigned, members)
		require.Nil(t, err)
		got[0] = "mutated"
		require.Equal(t, "r-1", assigned[0])
	})
}

func TestCodeFor(t *testing.T) {
	require.Equal(t, models.NotifyTaskNew, CodeFor(models.TaskStatusNew))
	require.Equal(t, models.NotifyTaskEscalated, CodeFor(models.TaskStatusWithSef))
	require.Equal(t, models.NotifyTaskReturned, CodeFor(models.TaskStatusReturnedToSef))
	require.Equal(t, models.NotifyTaskReturned, CodeFor(models.TaskStatusReturnedToOperator))
	require.Equal(t, models.NotifyTaskCompleted, CodeFor(models.TaskStatusCompleted))
	require.Equal(t, models.NotifyTaskAssigned, CodeFor(models.TaskStatusAssignedToRadnik))
	require.Equal(t, models.NotifyTaskAssigned, CodeFor(models.TaskStatusWithExternal))
}
