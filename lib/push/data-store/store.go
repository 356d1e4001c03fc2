package pushdatastore

import (
	dbmodels "hotel-ops-backend/models/db"

	"gorm.io/gorm"
)

// Provider stores realtime messages for users who were offline at send time.
// The hub flushes and deletes them on the next connect.
type Provider interface {
	Save(rec dbmodels.PushData) error
	List(userID string) ([]dbmodels.PushData, error)
	Delete(ids []string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.PushData) error {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(userID string) ([]dbmodels.PushData, error) {
	list := []dbmodels.PushData{}
	err := i.db.
		Model(&dbmodels.PushData{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(ids []string) error {
	return i.db.
		Where("id IN ?", ids).
		Delete(&dbmodels.PushData{}).
		Error
}
