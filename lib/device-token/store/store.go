package devicetokenstore

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	// DeactivateOtherOwners drops every other user's active registration of the
	// same token value. Staff share devices, so the token may still be bound to
	// whoever was logged in on the previous shift.
	DeactivateOtherOwners(userID, pushToken string) error
	Upsert(userID, pushToken string, platform models.DevicePlatform) error
	ListActive(userID string) ([]dbmodels.DeviceToken, error)
	Deactivate(pushToken string) error
	DeactivateForUser(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) DeactivateOtherOwners(userID, pushToken string) error {
	return i.db.
		Model(&dbmodels.DeviceToken{}).
		Where("push_token = ?", pushToken).
		Where("user_id <> ?", userID).
		Where("is_active = ?", true).
		Updates(map[string]interface{}{
			"is_active":    false,
			"last_updated": time.Now(),
		}).
		Error
}

func (i impl) Upsert(userID, pushToken string, platform models.DevicePlatform) error {
	rec := dbmodels.DeviceToken{
		UserID:      userID,
		PushToken:   pushToken,
		Platform:    platform,
		IsActive:    true,
		LastUpdated: time.Now(),
	}
	return i.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "push_token"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"platform":     platform,
				"is_active":    true,
				"last_updated": rec.LastUpdated,
			}),
		}).
		Create(&rec).
		Error
}

func (i impl) ListActive(userID string) ([]dbmodels.DeviceToken, error) {
	list := []dbmodels.DeviceToken{}
	err := i.db.
		Model(&dbmodels.DeviceToken{}).
		Where("user_id = ?", userID).
		Where("is_active = ?", true).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Deactivate(pushToken string) error {
	return i.db.
		Model(&dbmodels.DeviceToken{}).
		Where("push_token = ?", pushToken).
		Updates(map[string]interface{}{
			"is_active":    false,
			"last_updated": time.Now(),
		}).
		Error
}

func (i impl) DeactivateForUser(userID string) error {
	return i.db.
		Model(&dbmodels.DeviceToken{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"is_active":    false,
			"last_updated": time.Now(),
		}).
		Error
}
