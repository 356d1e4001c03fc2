package recurrence

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func template(pattern models.RecurrencePattern, days dbmodels.IDList, at string) dbmodels.Task {
	return dbmodels.Task{
		Title:             "Pool filter check",
		RecurrencePattern: pattern,
		RecurrenceDays:    days,
		ExecutionTime:     at,
		IsRecurring:       true,
	}
}

func TestNextOccurrences(t *testing.T) {
	loc := time.UTC
	// Monday
	from := time.Date(2026, 3, 2, 6, 0, 0, 0, loc)

	t.Run("daily produces one slot per day", func(t *testing.T) {
		got := NextOccurrences(template(models.RecurrenceDaily, nil, "08:30"), from, 3, loc)
		require.Len(t, got, 3)
		require.Equal(t, time.Date(2026, 3, 2, 8, 30, 0, 0, loc), got[0])
		require.Equal(t, time.Date(2026, 3, 4, 8, 30, 0, 0, loc), got[2])
	})

	t.Run("daily slot earlier than from is skipped", func(t *testing.T) {
		late := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)
		got := NextOccurrences(template(models.RecurrenceDaily, nil, "08:30"), late, 2, loc)
		require.Len(t, got, 1)
		require.Equal(t, time.Date(2026, 3, 3, 8, 30, 0, 0, loc), got[0])
	})

	t.Run("weekly with Sunday as 7", func(t *testing.T) {
		got := NextOccurrences(template(models.RecurrenceWeekly, dbmodels.IDList{"7"}, "09:00"), from, 7, loc)
		require.Len(t, got, 1)
		require.Equal(t, time.Sunday, got[0].Weekday())
		require.Equal(t, time.Date(2026, 3, 8, 9, 0, 0, 0, loc), got[0])
	})

	t.Run("weekly multiple days", func(t *testing.T) {
		got := NextOccurrences(template(models.RecurrenceWeekly, dbmodels.IDList{"1", "3"}, "07:00"), from, 7, loc)
		require.Len(t, got, 2)
		require.Equal(t, time.Monday, got[0].Weekday())
		require.Equal(t, time.Wednesday, got[1].Weekday())
	})

	t.Run("monthly by day of month", func(t *testing.T) {
		got := NextOccurrences(template(models.RecurrenceMonthly, dbmodels.IDList{"15"}, "12:00"), from, 30, loc)
		require.Len(t, got, 1)
		require.Equal(t, 15, got[0].Day())
	})

	t.Run("yearly by MM-DD", func(t *testing.T) {
		got := NextOccurrences(template(models.RecurrenceYearly, dbmodels.IDList{"03-05"}, "10:15"), from, 14, loc)
		require.Len(t, got, 1)
		require.Equal(t, time.Date(2026, 3, 5, 10, 15, 0, 0, loc), got[0])
	})

	t.Run("non repeating pattern yields nothing", func(t *testing.T) {
		require.Nil(t, NextOccurrences(template(models.RecurrenceOnce, nil, "08:00"), from, 7, loc))
		require.Nil(t, NextOccurrences(template(models.RecurrenceCancelled, nil, "08:00"), from, 7, loc))
	})

	t.Run("bad clock yields nothing", func(t *testing.T) {
		require.Nil(t, NextOccurrences(template(models.RecurrenceDaily, nil, "25:99"), from, 7, loc))
		require.Nil(t, NextOccurrences(template(models.RecurrenceDaily, nil, ""), from, 7, loc))
	})

	t.Run("deterministic", func(t *testing.T) {
		tpl := template(models.RecurrenceWeekly, dbmodels.IDList{"2", "4"}, "06:45")
		require.Equal(t, NextOccurrences(tpl, from, 14, loc), NextOccurrences(tpl, from, 14, loc))
	})
}

func TestChildFromTemplate(t *testing.T) {
	tpl := template(models.RecurrenceDaily, nil, "08:00")
	tpl.ID = "tpl-1"
	tpl.Description = "backwash and rinse"
	tpl.Location = "pool plant room"
	tpl.Priority = models.TaskPriorityNormal
	tpl.CreatedByID = "sef-1"
	tpl.CreatedByName = "Petar Sef"
	tpl.AssignedTo = dbmodels.IDList{"r-1"}

	at := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	child := ChildFromTemplate(tpl, at)

	require.Equal(t, tpl.Title, child.Title)
	require.Equal(t, tpl.Description, child.Description)
	require.Equal(t, tpl.Location, child.Location)
	require.Equal(t, models.TaskStatusAssignedToRadnik, child.Status)
	require.Equal(t, tpl.AssignedTo, child.AssignedTo)
	require.True(t, child.IsRecurring)
	require.NotNil(t, child.ParentTaskID)
	require.Equal(t, "tpl-1", *child.ParentTaskID)
	require.NotNil(t, child.ScheduledFor)
	require.Equal(t, at, *child.ScheduledFor)
	// the child is a dated instance, not a template
	require.False(t, child.RecurrencePattern.IsRepeating())
}

func TestChildFromUnassignedTemplate(t *testing.T) {
	tpl := template(models.RecurrenceDaily, nil, "08:00")
	tpl.ID = "tpl-2"

	child := ChildFromTemplate(tpl, time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))

	// nobody holds the task yet, so it must not claim a technician does
	require.Empty(t, child.AssignedTo)
	require.Equal(t, models.TaskStatusNew, child.Status)
}
