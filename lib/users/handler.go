package usershandler

import (
	"hotel-ops-backend/db"
	devicetokenhandler "hotel-ops-backend/lib/device-token"
	usersstore "hotel-ops-backend/lib/users/store"
	"hotel-ops-backend/lib/utils/apperrors"
	usersapimodels "hotel-ops-backend/models/api/users"
	dbmodels "hotel-ops-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Create(data usersapimodels.UserCreateData) (id string, err error)
	Edit(userID string, data usersapimodels.UserEditData) error
	GetByID(userID string) (*usersapimodels.UserView, error)
	List(filter usersapimodels.UserFilter) ([]usersapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Create(data usersapimodels.UserCreateData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}
	existing, err := i.store.GetByEmail(data.Email)
	if err != nil {
		return "", errors.Wrap(err, "failed to check email uniqueness")
	}
	if existing != nil {
		return "", apperrors.Conflict("user with this email already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	rec := dbmodels.StaffUser{
		Password:    string(hash),
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Role:        data.Role,
		IsActive:    true,
		PushEnabled: true,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create user")
	}
	return id, nil
}

func (i impl) Edit(userID string, data usersapimodels.UserEditData) error {
	if err := data.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return errors.Wrap(err, "failed to get user")
	}
	if rec == nil {
		return apperrors.NotFound("user not found")
	}
	updMap := map[string]interface{}{}
	if data.FirstName != nil {
		updMap["first_name"] = *data.FirstName
	}
	if data.LastName != nil {
		updMap["last_name"] = *data.LastName
	}
	if data.PhoneNumber != nil {
		updMap["phone_number"] = *data.PhoneNumber
	}
	if data.Role != nil {
		updMap["role"] = *data.Role
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	if data.PushEnabled != nil {
		updMap["push_enabled"] = *data.PushEnabled
	}
	if len(updMap) == 0 {
		return nil
	}
	if err = i.store.Update(userID, updMap); err != nil {
		return errors.Wrap(err, "failed to update user")
	}
	if data.IsActive != nil && !*data.IsActive {
		// deactivated staff must stop receiving pushes right away
		if err = devicetokenhandler.Instance.Logout(userID); err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("failed to deactivate device tokens of disabled user")
		}
	}
	return nil
}

func (i impl) GetByID(userID string) (*usersapimodels.UserView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	if rec == nil {
		return nil, apperrors.NotFound("user not found")
	}
	view := usersapimodels.UserConvert(*rec)
	return &view, nil
}

func (i impl) List(filter usersapimodels.UserFilter) ([]usersapimodels.UserView, error) {
	list, err := i.store.List(filter.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	result := make([]usersapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, usersapimodels.UserConvert(rec))
	}
	return result, nil
}
