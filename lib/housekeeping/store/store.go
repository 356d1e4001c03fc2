package housekeepingstore

import (
	"hotel-ops-backend/models"
	hkapimodels "hotel-ops-backend/models/api/housekeeping"
	dbmodels "hotel-ops-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.HousekeepingTask) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.HousekeepingTask, err error)
	List(filter hkapimodels.HkTaskFilter) ([]dbmodels.HousekeepingTask, int64, error)
	// CountOpenByAssignee measures a housekeeper's current load for the
	// least-loaded auto-assignment policy.
	CountOpenByAssignee(userID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.HousekeepingTask) (string, error) {
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
		Model(&dbmodels.HousekeepingTask{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.HousekeepingTask{}).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.HousekeepingTask, error) {
	rec := dbmodels.HousekeepingTask{}
	err := i.db.
		Model(&dbmodels.HousekeepingTask{}).
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

func (i impl) List(filter hkapimodels.HkTaskFilter) ([]dbmodels.HousekeepingTask, int64, error) {
	tx := i.db.Model(&dbmodels.HousekeepingTask{})
	if len(filter.Statuses) != 0 {
		tx = tx.Where("status IN ?", filter.Statuses)
	}
	if filter.AssignedToID != "" {
		tx = tx.Where("assigned_to_id = ?", filter.AssignedToID)
	}
	if filter.RoomID != "" {
		tx = tx.Where("room_id = ?", filter.RoomID)
	}
	if filter.DateFrom != nil {
		tx = tx.Where("scheduled_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx = tx.Where("scheduled_date < ?", *filter.DateTo)
	}
	rowCount := int64(0)
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	list := []dbmodels.HousekeepingTask{}
	err = tx.
		Order("scheduled_date DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) CountOpenByAssignee(userID string) (int64, error) {
	rowCount := int64(0)
	err := i.db.
		Model(&dbmodels.HousekeepingTask{}).
		Where("assigned_to_id = ?", userID).
		Where("status IN ?", []models.HousekeepingStatus{
			models.HkStatusPending, models.HkStatusInProgress, models.HkStatusNeedsRework,
		}).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}
