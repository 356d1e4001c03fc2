package taskimagestore

import (
	dbmodels "hotel-ops-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.TaskImage) (id string, err error)
	GetByID(id string) (rec *dbmodels.TaskImage, err error)
	ListByTask(taskID string) ([]dbmodels.TaskImage, error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.TaskImage) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.TaskImage, error) {
	rec := dbmodels.TaskImage{}
	err := i.db.
		Model(&dbmodels.TaskImage{}).
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

func (i impl) ListByTask(taskID string) ([]dbmodels.TaskImage, error) {
	list := []dbmodels.TaskImage{}
	err := i.db.
		Model(&dbmodels.TaskImage{}).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.TaskImage{}).
		Error
}
