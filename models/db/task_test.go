package dbmodels

import (
	"hotel-ops-backend/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsRecurringTemplate(t *testing.T) {
	parentID := "tpl-1"
	require.True(t, Task{IsRecurring: true}.IsRecurringTemplate())
	require.False(t, Task{IsRecurring: true, ParentTaskID: &parentID}.IsRecurringTemplate())
	require.False(t, Task{IsRecurring: false}.IsRecurringTemplate())
}

func TestIsScheduledForFuture(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	require.True(t, Task{ScheduledFor: &future}.IsScheduledForFuture(now))
	require.False(t, Task{ScheduledFor: &past}.IsScheduledForFuture(now))
	require.False(t, Task{ScheduledFor: &now}.IsScheduledForFuture(now))
	require.False(t, Task{Status: models.TaskStatusNew}.IsScheduledForFuture(now))
}
