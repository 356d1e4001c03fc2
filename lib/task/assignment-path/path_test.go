package assignmentpath

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func entry(action models.TaskAction, to models.TaskStatus, userName, assignedNames string) dbmodels.TaskHistory {
	return dbmodels.TaskHistory{
		Action:          action,
		StatusTo:        to,
		UserName:        userName,
		AssignedToNames: assignedNames,
	}
}

func statusEntry(to models.TaskStatus, userName, assignedNames string) dbmodels.TaskHistory {
	return entry(models.TaskActionStatusChanged, to, userName, assignedNames)
}

func TestBuild(t *testing.T) {
	t.Run("creation row contributes nothing", func(t *testing.T) {
		path := Build([]dbmodels.TaskHistory{
			entry(models.TaskActionCreated, models.TaskStatusNew, "Ana Operator", ""),
		})
		require.Equal(t, "", path)
	})

	t.Run("assignment adds actor then assignees", func(t *testing.T) {
		path := Build([]dbmodels.TaskHistory{
			entry(models.TaskActionCreated, models.TaskStatusNew, "Ana Operator", ""),
			statusEntry(models.TaskStatusAssignedToRadnik, "Ana Operator", "Marko Radnik"),
		})
		require.Equal(t, "Ana Operator → Marko Radnik", path)
	})

	t.Run("return adds actor and who picked it up next", func(t *testing.T) {
		path := Build([]dbmodels.TaskHistory{
			entry(models.TaskActionCreated, models.TaskStatusNew, "Ana Operator", ""),
			statusEntry(models.TaskStatusAssignedToRadnik, "Ana Operator", "Marko Radnik"),
			statusEntry(models.TaskStatusReturnedToSef, "Marko Radnik", ""),
			statusEntry(models.TaskStatusAssignedToRadnik, "Petar Sef", "Ivan Radnik"),
		})
		require.Equal(t, "Ana Operator → Marko Radnik → Petar Sef → Ivan Radnik", path)
	})

	t.Run("no consecutive duplicates", func(t *testing.T) {
		path := Build([]dbmodels.TaskHistory{
			statusEntry(models.TaskStatusAssignedToRadnik, "Ana Operator", "Marko Radnik"),
			statusEntry(models.TaskStatusCompleted, "Marko Radnik", ""),
		})
		require.Equal(t, "Ana Operator → Marko Radnik", path)
	})

	t.Run("self assignment collapses to one name", func(t *testing.T) {
		path := Build([]dbmodels.TaskHistory{
			statusEntry(models.TaskStatusAssignedToRadnik, "Petar Sef", "Petar Sef"),
		})
		require.Equal(t, "Petar Sef", path)
	})

	t.Run("return with no follow-up keeps only the returner", func(t *testing.T) {
		path := Build([]dbmodels.TaskHistory{
			statusEntry(models.TaskStatusAssignedToRadnik, "Ana Operator", "Marko Radnik"),
			statusEntry(models.TaskStatusReturnedToOperator, "Marko Radnik", ""),
		})
		require.Equal(t, "Ana Operator → Marko Radnik", path)
	})

	t.Run("blank names are skipped", func(t *testing.T) {
		path := Build([]dbmodels.TaskHistory{
			statusEntry(models.TaskStatusAssignedToRadnik, "", "Marko Radnik"),
			statusEntry(models.TaskStatusCompleted, "  ", ""),
		})
		require.Equal(t, "Marko Radnik", path)
	})

	t.Run("idempotent over the same history", func(t *testing.T) {
		entries := []dbmodels.TaskHistory{
			entry(models.TaskActionCreated, models.TaskStatusNew, "Ana Operator", ""),
			statusEntry(models.TaskStatusWithSef, "Ana Operator", ""),
			statusEntry(models.TaskStatusAssignedToRadnik, "Petar Sef", "Marko Radnik"),
			statusEntry(models.TaskStatusCompleted, "Marko Radnik", ""),
		}
		first := Build(entries)
		second := Build(entries)
		require.Equal(t, first, second)
		require.Equal(t, "Ana Operator → Petar Sef → Marko Radnik", first)
	})

	t.Run("external service assignment uses assignee names", func(t *testing.T) {
		path := Build([]dbmodels.TaskHistory{
			statusEntry(models.TaskStatusWithExternal, "Petar Sef", "Elevator Service d.o.o."),
		})
		require.Equal(t, "Petar Sef → Elevator Service d.o.o.", path)
	})
}

func TestExtractReason(t *testing.T) {
	t.Run("structured columns win", func(t *testing.T) {
		reason, ok := ExtractReason(dbmodels.TaskHistory{
			UserName:   "Marko Radnik",
			ReasonKind: models.ReasonKindReturnedToSef,
			ReasonText: "missing spare part",
			Notes:      models.NotePrefixReturnedToSef + "missing spare part",
		})
		require.True(t, ok)
		require.Equal(t, models.ReasonKindReturnedToSef, reason.Kind)
		require.Equal(t, "missing spare part", reason.Text)
		require.Equal(t, "Marko Radnik", reason.UserName)
	})

	t.Run("legacy rows fall back to note prefix", func(t *testing.T) {
		reason, ok := ExtractReason(dbmodels.TaskHistory{
			UserName: "Marko Radnik",
			Notes:    models.NotePrefixCompleted + "replaced the valve",
		})
		require.True(t, ok)
		require.Equal(t, models.ReasonKindCompleted, reason.Kind)
		require.Equal(t, "replaced the valve", reason.Text)
	})

	t.Run("plain note has no reason", func(t *testing.T) {
		_, ok := ExtractReason(dbmodels.TaskHistory{Notes: "just a note"})
		require.False(t, ok)
	})
}
