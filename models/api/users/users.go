package usersapimodels

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type UserCreateData struct {
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
}

func (r UserCreateData) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return errors.New("first and last name are required")
	}
	if !r.Role.IsValid() {
		return errors.Errorf("unknown role: %v", r.Role)
	}
	return nil
}

type UserEditData struct {
	FirstName   *string          `json:"first_name,omitempty"`
	LastName    *string          `json:"last_name,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	Role        *models.UserRole `json:"role,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
	PushEnabled *bool            `json:"push_enabled,omitempty"`
}

func (r UserEditData) Validate() error {
	if r.Role != nil && !r.Role.IsValid() {
		return errors.Errorf("unknown role: %v", *r.Role)
	}
	return nil
}

type UserFilter struct {
	Role *models.UserRole `json:"role,omitempty"`
}

type UserView struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	FullName    string          `json:"full_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
	RoleName    string          `json:"role_name"`
	IsActive    bool            `json:"is_active"`
	PushEnabled bool            `json:"push_enabled"`
	LastLogin   time.Time       `json:"last_login"`
}

func UserConvert(rec dbmodels.StaffUser) UserView {
	return UserView{
		ID:          rec.ID,
		Email:       rec.Email,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		FullName:    rec.GetFullName(),
		PhoneNumber: rec.PhoneNumber,
		Role:        rec.Role,
		RoleName:    rec.Role.ToHuman(),
		IsActive:    rec.IsActive,
		PushEnabled: rec.PushEnabled,
		LastLogin:   rec.LastLogin,
	}
}
