package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingTransitions(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		require.True(t, HkStatusPending.IsAllowChange(HkStatusInProgress))
		require.True(t, HkStatusInProgress.IsAllowChange(HkStatusCompleted))
		require.True(t, HkStatusCompleted.IsAllowChange(HkStatusInspected))
	})

	t.Run("failed inspection loops back through rework", func(t *testing.T) {
		require.True(t, HkStatusCompleted.IsAllowChange(HkStatusNeedsRework))
		require.True(t, HkStatusNeedsRework.IsAllowChange(HkStatusInProgress))
		require.True(t, HkStatusNeedsRework.IsAllowChange(HkStatusCompleted))
	})

	t.Run("inspected is terminal", func(t *testing.T) {
		for _, to := range []HousekeepingStatus{
			HkStatusPending, HkStatusInProgress, HkStatusCompleted, HkStatusNeedsRework, HkStatusInspected,
		} {
			require.False(t, HkStatusInspected.IsAllowChange(to), string(to))
		}
	})

	t.Run("no skipping ahead", func(t *testing.T) {
		require.False(t, HkStatusPending.IsAllowChange(HkStatusCompleted))
		require.False(t, HkStatusInProgress.IsAllowChange(HkStatusInspected))
	})
}

func TestGuestRequestTransitions(t *testing.T) {
	require.True(t, GuestRequestStatusNew.IsAllowChange(GuestRequestStatusSeen))
	require.True(t, GuestRequestStatusNew.IsAllowChange(GuestRequestStatusCompleted))
	require.True(t, GuestRequestStatusSeen.IsAllowChange(GuestRequestStatusInProgress))
	require.True(t, GuestRequestStatusInProgress.IsAllowChange(GuestRequestStatusCompleted))

	require.False(t, GuestRequestStatusCompleted.IsAllowChange(GuestRequestStatusNew))
	require.False(t, GuestRequestStatusSeen.IsAllowChange(GuestRequestStatusNew))
}

func TestDepartmentHandlerRole(t *testing.T) {
	require.Equal(t, UserRoleSobarica, DepartmentHousekeeping.HandlerRole())
	require.Equal(t, UserRoleRadnik, DepartmentMaintenance.HandlerRole())
}

func TestOccupancyHasActiveStay(t *testing.T) {
	require.True(t, OccupancyOccupied.HasActiveStay())
	require.True(t, OccupancyCheckoutExpected.HasActiveStay())
	require.False(t, OccupancyVacant.HasActiveStay())
	require.False(t, OccupancyCheckout.HasActiveStay())
	require.False(t, OccupancyCheckinExpected.HasActiveStay())
}
