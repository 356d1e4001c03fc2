package usersstore

import (
	dbmodels "hotel-ops-backend/models/db"
	"hotel-ops-backend/models"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.StaffUser) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.StaffUser, err error)
	GetByEmail(email string) (rec *dbmodels.StaffUser, err error)
	List(role *models.UserRole) ([]dbmodels.StaffUser, error)
	ListActive() ([]dbmodels.StaffUser, error)
	ListByRole(role models.UserRole) ([]dbmodels.StaffUser, error)
	SetLastLogin(id string, at time.Time) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StaffUser) (string, error) {
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
		Model(&dbmodels.StaffUser{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.StaffUser, error) {
	rec := dbmodels.StaffUser{}
	err := i.db.
		Model(&dbmodels.StaffUser{}).
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

func (i impl) GetByEmail(email string) (*dbmodels.StaffUser, error) {
	rec := dbmodels.StaffUser{}
	err := i.db.
		Model(&dbmodels.StaffUser{}).
		Where("email = ?", email).
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

func (i impl) List(role *models.UserRole) ([]dbmodels.StaffUser, error) {
	list := []dbmodels.StaffUser{}
	tx := i.db.Model(&dbmodels.StaffUser{})
	if role != nil {
		tx = tx.Where("role = ?", *role)
	}
	err := tx.
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListActive() ([]dbmodels.StaffUser, error) {
	list := []dbmodels.StaffUser{}
	err := i.db.
		Model(&dbmodels.StaffUser{}).
		Where("is_active = ?", true).
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByRole(role models.UserRole) ([]dbmodels.StaffUser, error) {
	list := []dbmodels.StaffUser{}
	err := i.db.
		Model(&dbmodels.StaffUser{}).
		Where("role = ?", role).
		Where("is_active = ?", true).
		Order("last_name, first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetLastLogin(id string, at time.Time) error {
	return i.db.
		Model(&dbmodels.StaffUser{}).
		Where("id = ?", id).
		Update("last_login", at).
		Error
}
