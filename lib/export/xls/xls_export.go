package xlsexport

import (
	"bytes"
	dbmodels "hotel-ops-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// TaskExportRow pairs a task with its reconstructed hand-off chain.
type TaskExportRow struct {
	Task           dbmodels.Task
	AssignmentPath string
}

type Provider interface {
	ExportTaskList(list []TaskExportRow) (*bytes.Buffer, error)
	ExportHousekeepingList(list []dbmodels.HousekeepingTask) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var taskHeaders = []string{"Title", "Location", "Priority", "Status", "Created by", "Assignment path", "Worker report", "Created", "Completed"}

func (i impl) ExportTaskList(list []TaskExportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, taskHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeTaskData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	f.SetSheetName(sheet, "Maintenance tasks")
	return f.WriteToBuffer()
}

func writeTaskData(f *excelize.File, sheet string, list []TaskExportRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(taskHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Task.Title); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Task.Location); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.Task.Priority)); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Task.Status.ToHuman()); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Task.CreatedByName); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.AssignmentPath); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Task.WorkerReport); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Task.CreatedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}

		col++
		if item.Task.CompletedAt != nil {
			if err := writeColumn(f, sheet, col, row, item.Task.CompletedAt.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

var hkHeaders = []string{"Room", "Cleaning type", "Status", "Housekeeper", "Scheduled", "Completed", "Inspection", "Issues", "Minutes spent"}

func (i impl) ExportHousekeepingList(list []dbmodels.HousekeepingTask) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, hkHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeHkData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	f.SetSheetName(sheet, "Housekeeping")
	return f.WriteToBuffer()
}

func writeHkData(f *excelize.File, sheet string, list []dbmodels.HousekeepingTask, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(hkHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.RoomNumber); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.CleaningType)); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.AssignedToName); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.ScheduledDate.Format("02.01.2006")); err != nil {
			return row, err
		}

		col++
		if item.CompletedAt != nil {
			if err := writeColumn(f, sheet, col, row, item.CompletedAt.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}

		col++
		inspection := ""
		if item.InspectionPassed != nil {
			if *item.InspectionPassed {
				inspection = "passed"
			} else {
				inspection = "failed"
			}
		}
		if err := writeColumn(f, sheet, col, row, inspection); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.IssuesFound); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.TimeSpentMinutes); err != nil {
			return row, err
		}
	}
	return row, nil
}
