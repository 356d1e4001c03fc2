package notificationhandler

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
)

// RoleMembers resolves the active user ids holding a role.
type RoleMembers func(role models.UserRole) ([]string, error)

// Recipients applies the escalation precedence rules in order, first match
// wins. Given the same inputs and role membership snapshot the result is
// deterministic; an empty result is a valid no-op, not an error.
func Recipients(newStatus models.TaskStatus, assignedTo dbmodels.IDList, membersOf RoleMembers) ([]string, error) {
	switch newStatus {
	case models.TaskStatusNew:
		return membersOf(models.UserRoleOperater)
	case models.TaskStatusWithSef, models.TaskStatusReturnedToSef:
		return membersOf(models.UserRoleSef)
	}
	if len(assignedTo) > 0 {
		out := make([]string, len(assignedTo))
		copy(out, assignedTo)
		return out, nil
	}
	return nil, nil
}

// CodeFor maps a task status change to the event code the clients route on.
func CodeFor(newStatus models.TaskStatus) models.NotificationCode {
	switch newStatus {
	case models.TaskStatusNew:
		return models.NotifyTaskNew
	case models.TaskStatusWithSef:
		return models.NotifyTaskEscalated
	case models.TaskStatusReturnedToSef, models.TaskStatusReturnedToOperator:
		return models.NotifyTaskReturned
	case models.TaskStatusCompleted:
		return models.NotifyTaskCompleted
	}
	return models.NotifyTaskAssigned
}
