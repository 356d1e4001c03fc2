package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRolePermissions(t *testing.T) {
	t.Run("supervisor umbrella", func(t *testing.T) {
		require.True(t, UserRoleSef.IsSupervisor())
		require.True(t, UserRoleAdmin.IsSupervisor())
		require.False(t, UserRoleOperater.IsSupervisor())
		require.False(t, UserRoleRadnik.IsSupervisor())
	})

	t.Run("task assignment", func(t *testing.T) {
		require.True(t, UserRoleOperater.CanAssignTasks())
		require.True(t, UserRoleSef.CanAssignTasks())
		require.False(t, UserRoleRadnik.CanAssignTasks())
		require.False(t, UserRoleSobarica.CanAssignTasks())
	})

	t.Run("field edits and inspections stay with supervisors", func(t *testing.T) {
		require.True(t, UserRoleSef.CanEditTaskFields())
		require.False(t, UserRoleOperater.CanEditTaskFields())
		require.True(t, UserRoleAdmin.CanInspectRooms())
		require.False(t, UserRoleRecepcija.CanInspectRooms())
	})

	t.Run("validity", func(t *testing.T) {
		require.True(t, UserRoleRecepcija.IsValid())
		require.False(t, UserRole("manager").IsValid())
	})
}
