package authhandler

import (
	"hotel-ops-backend/db"
	usersstore "hotel-ops-backend/lib/users/store"
	"hotel-ops-backend/lib/utils/apperrors"
	authutils "hotel-ops-backend/lib/utils/auth-utils"
	authapimodels "hotel-ops-backend/models/api/auth"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Login(data authapimodels.LoginData) (*authapimodels.LoginView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Login(data authapimodels.LoginData) (*authapimodels.LoginView, error) {
	if err := data.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	user, err := i.usersStore.GetByEmail(data.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	if user == nil || !user.IsActive {
		return nil, apperrors.Forbidden("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)) != nil {
		return nil, apperrors.Forbidden("invalid credentials")
	}
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}
	if err = i.usersStore.SetLastLogin(user.ID, time.Now()); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("failed to store last login time")
	}
	return &authapimodels.LoginView{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		FullName:     user.GetFullName(),
		Role:         user.Role,
	}, nil
}
