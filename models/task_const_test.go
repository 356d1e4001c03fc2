package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskStatusTransitions(t *testing.T) {
	t.Run("reassignment keeps the status", func(t *testing.T) {
		require.True(t, TaskStatusAssignedToRadnik.IsAllowChange(TaskStatusAssignedToRadnik))
	})

	t.Run("technician outcomes", func(t *testing.T) {
		require.True(t, TaskStatusAssignedToRadnik.IsAllowChange(TaskStatusCompleted))
		require.True(t, TaskStatusAssignedToRadnik.IsAllowChange(TaskStatusReturnedToSef))
		require.True(t, TaskStatusAssignedToRadnik.IsAllowChange(TaskStatusReturnedToOperator))
	})

	t.Run("new cannot complete directly", func(t *testing.T) {
		require.False(t, TaskStatusNew.IsAllowChange(TaskStatusCompleted))
	})

	t.Run("completed can be reopened", func(t *testing.T) {
		require.True(t, TaskStatusCompleted.IsAllowChange(TaskStatusAssignedToRadnik))
		require.True(t, TaskStatusCompleted.IsAllowChange(TaskStatusWithOperator))
		require.False(t, TaskStatusCompleted.IsAllowChange(TaskStatusCompleted))
	})

	t.Run("cancelled only revives through the operator", func(t *testing.T) {
		require.True(t, TaskStatusCancelled.IsAllowChange(TaskStatusWithOperator))
		require.False(t, TaskStatusCancelled.IsAllowChange(TaskStatusAssignedToRadnik))
		require.False(t, TaskStatusCancelled.IsAllowChange(TaskStatusCompleted))
	})

	t.Run("unknown status allows nothing", func(t *testing.T) {
		require.False(t, TaskStatus("bogus").IsAllowChange(TaskStatusNew))
	})

	t.Run("every transition target is a valid status", func(t *testing.T) {
		for from, targets := range allowedTaskTransitions {
			require.True(t, from.IsValid(), string(from))
			for _, to := range targets {
				require.True(t, to.IsValid(), string(to))
			}
		}
	})
}

func TestTaskStatusClassifiers(t *testing.T) {
	require.True(t, TaskStatusReturnedToSef.IsReturn())
	require.True(t, TaskStatusReturnedToOperator.IsReturn())
	require.False(t, TaskStatusWithSef.IsReturn())

	require.True(t, TaskStatusAssignedToRadnik.IsAssignment())
	require.True(t, TaskStatusWithExternal.IsAssignment())
	require.False(t, TaskStatusWithOperator.IsAssignment())

	require.True(t, TaskStatusCompleted.IsFinal())
	require.True(t, TaskStatusCancelled.IsFinal())
	require.False(t, TaskStatusReturnedToSef.IsFinal())
}

func TestReasonKindNotePrefix(t *testing.T) {
	require.Equal(t, NotePrefixReturnedToSef, ReasonKindReturnedToSef.NotePrefix())
	require.Equal(t, NotePrefixReturnedToOperator, ReasonKindReturnedToOperator.NotePrefix())
	require.Equal(t, NotePrefixCompleted, ReasonKindCompleted.NotePrefix())
	require.Equal(t, "", ReasonKindNone.NotePrefix())
	require.Equal(t, "", ReasonKindCascadeDelete.NotePrefix())
}
