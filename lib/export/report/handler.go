package reporthandler

import (
	"bytes"
	"hotel-ops-backend/db"
	xlsexport "hotel-ops-backend/lib/export/xls"
	housekeepingstore "hotel-ops-backend/lib/housekeeping/store"
	assignmentpath "hotel-ops-backend/lib/task/assignment-path"
	taskhistorystore "hotel-ops-backend/lib/task/history-store"
	taskstore "hotel-ops-backend/lib/task/store"
	hkapimodels "hotel-ops-backend/models/api/housekeeping"
	taskapimodels "hotel-ops-backend/models/api/task"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// export pulls at most this many rows regardless of the requested page size
const exportLimit = 1000

type Provider interface {
	TasksXls(filter taskapimodels.TaskFilter) (*bytes.Buffer, error)
	HousekeepingXls(filter hkapimodels.HkTaskFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		taskStore:    taskstore.NewInstance(db.DB),
		historyStore: taskhistorystore.NewInstance(db.DB),
		hkStore:      housekeepingstore.NewInstance(db.DB),
	}
}

type impl struct {
	taskStore    taskstore.Provider
	historyStore taskhistorystore.Provider
	hkStore      housekeepingstore.Provider
}

func (i impl) TasksXls(filter taskapimodels.TaskFilter) (*bytes.Buffer, error) {
	filter.Page = 1
	filter.Limit = exportLimit
	list, _, err := i.taskStore.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks for export")
	}
	rows := make([]xlsexport.TaskExportRow, 0, len(list))
	for _, task := range list {
		row := xlsexport.TaskExportRow{Task: task}
		history, err := i.historyStore.ListAsc(task.ID)
		if err != nil {
			log.WithError(err).WithField("task_id", task.ID).Warn("failed to load task history for export")
		} else {
			row.AssignmentPath = assignmentpath.Build(history)
		}
		rows = append(rows, row)
	}
	return xlsexport.Instance.ExportTaskList(rows)
}

func (i impl) HousekeepingXls(filter hkapimodels.HkTaskFilter) (*bytes.Buffer, error) {
	filter.Page = 1
	filter.Limit = exportLimit
	list, _, err := i.hkStore.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cleaning tasks for export")
	}
	return xlsexport.Instance.ExportHousekeepingList(list)
}
