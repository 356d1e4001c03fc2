package models

type GuestRequestStatus string

const (
	GuestRequestStatusNew        GuestRequestStatus = "new"
	GuestRequestStatusSeen       GuestRequestStatus = "seen"
	GuestRequestStatusInProgress GuestRequestStatus = "in_progress"
	GuestRequestStatusCompleted  GuestRequestStatus = "completed"
)

func (s GuestRequestStatus) IsValid() bool {
	switch s {
	case GuestRequestStatusNew, GuestRequestStatusSeen,
		GuestRequestStatusInProgress, GuestRequestStatusCompleted:
		return true
	}
	return false
}

var allowedGuestRequestTransitions = map[GuestRequestStatus][]GuestRequestStatus{
	GuestRequestStatusNew:        {GuestRequestStatusSeen, GuestRequestStatusInProgress, GuestRequestStatusCompleted},
	GuestRequestStatusSeen:       {GuestRequestStatusInProgress, GuestRequestStatusCompleted},
	GuestRequestStatusInProgress: {GuestRequestStatusCompleted},
	GuestRequestStatusCompleted:  {},
}

func (s GuestRequestStatus) IsAllowChange(to GuestRequestStatus) bool {
	for _, allowed := range allowedGuestRequestTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

type GuestRequestType string

const (
	GuestRequestMaintenance  GuestRequestType = "maintenance"
	GuestRequestHousekeeping GuestRequestType = "housekeeping"
	GuestRequestAmenities    GuestRequestType = "amenities"
	GuestRequestOther        GuestRequestType = "other"
)

func (t GuestRequestType) IsValid() bool {
	switch t {
	case GuestRequestMaintenance, GuestRequestHousekeeping, GuestRequestAmenities, GuestRequestOther:
		return true
	}
	return false
}

// Department the request can be forwarded to, at most once.
type Department string

const (
	DepartmentHousekeeping Department = "housekeeping"
	DepartmentMaintenance  Department = "maintenance"
)

func (d Department) IsValid() bool {
	return d == DepartmentHousekeeping || d == DepartmentMaintenance
}

// Role whose members handle requests forwarded to the department.
func (d Department) HandlerRole() UserRole {
	if d == DepartmentHousekeeping {
		return UserRoleSobarica
	}
	return UserRoleRadnik
}
