package guestrequeststore

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.GuestRequest) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.GuestRequest, err error)
	ListOpen() ([]dbmodels.GuestRequest, error)
	ListByRoom(roomID string) ([]dbmodels.GuestRequest, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.GuestRequest) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.GuestRequest{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.GuestRequest, error) {
	rec := dbmodels.GuestRequest{}
	err := i.db.
		Model(&dbmodels.GuestRequest{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListOpen() ([]dbmodels.GuestRequest, error) {
	list := []dbmodels.GuestRequest{}
	err := i.db.
		Model(&dbmodels.GuestRequest{}).
		Where("status <> ?", models.GuestRequestStatusCompleted).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByRoom(roomID string) ([]dbmodels.GuestRequest, error) {
	list := []dbmodels.GuestRequest{}
	err := i.db.
		Model(&dbmodels.GuestRequest{}).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
