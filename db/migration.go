package db

import (
	dbmodels "hotel-ops-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	entities := []struct {
		name  string
		model interface{}
	}{
		{"StaffUser", &dbmodels.StaffUser{}},
		{"Room", &dbmodels.Room{}},
		{"Task", &dbmodels.Task{}},
		{"TaskHistory", &dbmodels.TaskHistory{}},
		{"TaskImage", &dbmodels.TaskImage{}},
		{"HousekeepingTask", &dbmodels.HousekeepingTask{}},
		{"GuestRequest", &dbmodels.GuestRequest{}},
		{"DeviceToken", &dbmodels.DeviceToken{}},
		{"PushData", &dbmodels.PushData{}},
	}
	for _, entity := range entities {
		if err := DB.AutoMigrate(entity.model); err != nil {
			return errors.Wrapf(err, "migration failed for %v", entity.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
