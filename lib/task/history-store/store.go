package taskhistorystore

import (
	dbmodels "hotel-ops-backend/models/db"

	"gorm.io/gorm"
)

// Provider is append-only by contract: rows are inserted and listed, never
// updated or removed. History outlives its task, deletes are soft.
type Provider interface {
	Save(rec dbmodels.TaskHistory) error
	ListAsc(taskID string) ([]dbmodels.TaskHistory, error)
	ListDesc(taskID string) ([]dbmodels.TaskHistory, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.TaskHistory) error {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListAsc(taskID string) ([]dbmodels.TaskHistory, error) {
	list := []dbmodels.TaskHistory{}
	err := i.db.
		Model(&dbmodels.TaskHistory{}).
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListDesc(taskID string) ([]dbmodels.TaskHistory, error) {
	list := []dbmodels.TaskHistory{}
	err := i.db.
		Model(&dbmodels.TaskHistory{}).
		Where("task_id = ?", taskID).
		Order("created_at DESC, id DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
