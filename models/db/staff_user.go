package dbmodels

import (
	"fmt"
	"hotel-ops-backend/models"
	"time"
)

type StaffUser struct {
	BaseModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber string `gorm:"type:varchar(15)"`
	Role        models.UserRole `gorm:"type:varchar(50);index"`
	IsActive    bool
	PushEnabled bool
	LastLogin   time.Time
}

func (r StaffUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r StaffUser) ToAuthUser() models.AuthUser {
	return models.AuthUser{
		ID:   r.ID,
		Name: r.GetFullName(),
		Role: r.Role,
	}
}
