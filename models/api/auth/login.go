package authapimodels

import (
	"hotel-ops-backend/models"

	"github.com/pkg/errors"
)

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginData) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type LoginView struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	UserID       string          `json:"user_id"`
	FullName     string          `json:"full_name"`
	Role         models.UserRole `json:"role"`
}

type DeviceTokenData struct {
	PushToken string                `json:"push_token"`
	Platform  models.DevicePlatform `json:"platform"`
}

func (r DeviceTokenData) Validate() error {
	if r.PushToken == "" {
		return errors.New("push token is required")
	}
	if !r.Platform.IsValid() {
		return errors.Errorf("unknown platform: %v", r.Platform)
	}
	return nil
}
