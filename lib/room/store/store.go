package roomstore

import (
	dbmodels "hotel-ops-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Room) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Room, err error)
	GetByNumber(roomNumber string) (rec *dbmodels.Room, err error)
	GetBySessionToken(token string) (rec *dbmodels.Room, err error)
	List() ([]dbmodels.Room, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Room) (string, error) {
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
		Model(&dbmodels.Room{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Room, error) {
	rec := dbmodels.Room{}
	err := i.db.
		Model(&dbmodels.Room{}).
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

func (i impl) GetByNumber(roomNumber string) (*dbmodels.Room, error) {
	rec := dbmodels.Room{}
	err := i.db.
		Model(&dbmodels.Room{}).
		Where("room_number = ?", roomNumber).
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

func (i impl) GetBySessionToken(token string) (*dbmodels.Room, error) {
	rec := dbmodels.Room{}
	err := i.db.
		Model(&dbmodels.Room{}).
		Where("guest_session_token = ?", token).
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

func (i impl) List() ([]dbmodels.Room, error) {
	list := []dbmodels.Room{}
	err := i.db.
		Model(&dbmodels.Room{}).
		Order("room_number").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
