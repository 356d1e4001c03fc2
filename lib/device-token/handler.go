package devicetokenhandler

import (
	"hotel-ops-backend/db"
	devicetokenstore "hotel-ops-backend/lib/device-token/store"
	"hotel-ops-backend/lib/utils/apperrors"
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Register(userID, pushToken string, platform models.DevicePlatform) error
	ActiveTokensFor(userID string) ([]dbmodels.DeviceToken, error)
	Deactivate(pushToken string) error
	Logout(userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: devicetokenstore.NewInstance(db.DB),
		runTx: func(fn func(txStore devicetokenstore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(devicetokenstore.NewInstance(tx))
			})
		},
	}
}

type impl struct {
	store devicetokenstore.Provider
	// runTx runs fn against a store bound to one transaction
	runTx func(fn func(txStore devicetokenstore.Provider) error) error
}

// Register binds the token to the user, revoking it from any other user first.
// Both writes run in one transaction, so there is no window in which two users
// hold the same token. If the transaction fails, the registration alone is
// retried: losing exclusivity for a moment beats not registering the new user
// at all.
func (i impl) Register(userID, pushToken string, platform models.DevicePlatform) error {
	if pushToken == "" {
		return apperrors.Validation("push token is required")
	}
	if !platform.IsValid() {
		return apperrors.Validation("unknown platform")
	}
	err := i.runTx(func(txStore devicetokenstore.Provider) error {
		if err := txStore.DeactivateOtherOwners(userID, pushToken); err != nil {
			return err
		}
		return txStore.Upsert(userID, pushToken, platform)
	})
	if err == nil {
		return nil
	}
	log.WithError(err).
		WithField("user_id", userID).
		Warn("token exclusivity handover failed, registering without revocation")
	return i.store.Upsert(userID, pushToken, platform)
}

func (i impl) ActiveTokensFor(userID string) ([]dbmodels.DeviceToken, error) {
	return i.store.ListActive(userID)
}

func (i impl) Deactivate(pushToken string) error {
	return i.store.Deactivate(pushToken)
}

func (i impl) Logout(userID string) error {
	return i.store.DeactivateForUser(userID)
}
