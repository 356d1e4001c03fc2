package models

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleSef       UserRole = "sef"      // maintenance supervisor
	UserRoleOperater  UserRole = "operater" // front office operator
	UserRoleRadnik    UserRole = "radnik"   // technician
	UserRoleSobarica  UserRole = "sobarica" // housekeeper
	UserRoleRecepcija UserRole = "recepcija"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:     "Administrator",
	UserRoleSef:       "Supervisor",
	UserRoleOperater:  "Operator",
	UserRoleRadnik:    "Technician",
	UserRoleSobarica:  "Housekeeper",
	UserRoleRecepcija: "Reception",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

// IsSupervisor covers every permission granted to sef.
func (r UserRole) IsSupervisor() bool {
	return r == UserRoleSef || r == UserRoleAdmin
}

// CanEditTaskFields - only sef/admin may change descriptive fields and recurrence config.
func (r UserRole) CanEditTaskFields() bool {
	return r.IsSupervisor()
}

func (r UserRole) CanAssignTasks() bool {
	return r.IsSupervisor() || r == UserRoleOperater
}

func (r UserRole) CanInspectRooms() bool {
	return r.IsSupervisor()
}

const SystemUserName = "System"

// AuthUser is the acting identity supplied by the auth middleware for every
// mutating call. The core trusts it and performs role checks against it.
type AuthUser struct {
	ID   string
	Name string
	Role UserRole
}

func (u AuthUser) IsZero() bool {
	return u.ID == ""
}
