package taskstore

import (
	"fmt"
	"hotel-ops-backend/models"
	taskapimodels "hotel-ops-backend/models/api/task"
	dbmodels "hotel-ops-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrVersionConflict - another writer updated the task since the caller read it.
var ErrVersionConflict = errors.New("task was modified concurrently")

type Provider interface {
	Create(rec dbmodels.Task) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	// UpdateVersioned applies updMap only if the stored version still matches,
	// bumping the version in the same statement.
	UpdateVersioned(id string, version int, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.Task, err error)
	List(filter taskapimodels.TaskFilter) ([]dbmodels.Task, int64, error)
	ListByAssignee(userID string, statuses []models.TaskStatus) ([]dbmodels.Task, error)
	ListChildren(parentID string) ([]dbmodels.Task, error)
	ListOpenChildren(parentID string) ([]dbmodels.Task, error)
	ListTemplates() ([]dbmodels.Task, error)
	ListScheduledBetween(from, to time.Time) ([]dbmodels.Task, error)
	ChildExistsFor(parentID string, scheduledFor time.Time) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Task) (string, error) {
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
		Model(&dbmodels.Task{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) UpdateVersioned(id string, version int, updMap map[string]interface{}) error {
	updMap["version"] = gorm.Expr("version + 1")
	tx := i.db.
		Model(&dbmodels.Task{}).
		Where("id = ?", id).
		Where("version = ?", version).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Task{}
	err := i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Task, error) {
	rec := dbmodels.Task{}
	err := i.db.
		Model(&dbmodels.Task{}).
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

func (i impl) List(filter taskapimodels.TaskFilter) ([]dbmodels.Task, int64, error) {
	tx := i.db.Model(&dbmodels.Task{})
	if len(filter.Statuses) != 0 {
		tx = tx.Where("status IN ?", filter.Statuses)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if filter.AssignedTo != "" {
		tx = tx.Where("assigned_to LIKE ?", "%"+filter.AssignedTo+"%")
	}
	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		tx = tx.Where("title ILIKE ? OR description ILIKE ? OR location ILIKE ?", like, like, like)
	}
	rowCount := int64(0)
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	list := []dbmodels.Task{}
	err = tx.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByAssignee(userID string, statuses []models.TaskStatus) ([]dbmodels.Task, error) {
	tx := i.db.
		Model(&dbmodels.Task{}).
		Where("assigned_to LIKE ?", "%"+userID+"%")
	if len(statuses) != 0 {
		tx = tx.Where("status IN ?", statuses)
	}
	list := []dbmodels.Task{}
	err := tx.Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListChildren(parentID string) ([]dbmodels.Task, error) {
	list := []dbmodels.Task{}
	err := i.db.
		Model(&dbmodels.Task{}).
		Where("parent_task_id = ?", parentID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListOpenChildren(parentID string) ([]dbmodels.Task, error) {
	list := []dbmodels.Task{}
	err := i.db.
		Model(&dbmodels.Task{}).
		Where("parent_task_id = ?", parentID).
		Where("status NOT IN ?", []models.TaskStatus{models.TaskStatusCompleted, models.TaskStatusCancelled}).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListTemplates() ([]dbmodels.Task, error) {
	list := []dbmodels.Task{}
	err := i.db.
		Model(&dbmodels.Task{}).
		Where("is_recurring = ?", true).
		Where("parent_task_id IS NULL").
		Where("status <> ?", models.TaskStatusCancelled).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListScheduledBetween(from, to time.Time) ([]dbmodels.Task, error) {
	list := []dbmodels.Task{}
	err := i.db.
		Model(&dbmodels.Task{}).
		Where("scheduled_for >= ? AND scheduled_for < ?", from, to).
		Where("status NOT IN ?", []models.TaskStatus{models.TaskStatusCompleted, models.TaskStatusCancelled}).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ChildExistsFor(parentID string, scheduledFor time.Time) (bool, error) {
	rowCount := int64(0)
	err := i.db.
		Model(&dbmodels.Task{}).
		Where("parent_task_id = ?", parentID).
		Where("scheduled_for = ?", scheduledFor).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}
