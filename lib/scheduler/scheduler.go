package scheduler

import (
	"context"
	"fmt"
	"hotel-ops-backend/config"
	"hotel-ops-backend/db"
	housekeepingstore "hotel-ops-backend/lib/housekeeping/store"
	notificationhandler "hotel-ops-backend/lib/notification"
	"hotel-ops-backend/lib/smtp"
	taskhandler "hotel-ops-backend/lib/task"
	taskstore "hotel-ops-backend/lib/task/store"
	usersstore "hotel-ops-backend/lib/users/store"
	"hotel-ops-backend/models"
	hkapimodels "hotel-ops-backend/models/api/housekeeping"
	taskapimodels "hotel-ops-backend/models/api/task"
	"time"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
)

// Start registers the daily jobs and runs them until ctx is cancelled:
// morning announcement of today's scheduled tasks, recurring template
// expansion and the supervisor email digest.
func Start(ctx context.Context) error {
	loc, err := time.LoadLocation(config.Conf.App.Timezone)
	if err != nil {
		return err
	}
	s := gocron.NewScheduler(loc)
	if _, err = s.Every(1).Day().At(config.Conf.Jobs.ScheduledNotifyAt).Do(runMorningJob, loc); err != nil {
		return err
	}
	if _, err = s.Every(1).Day().At(config.Conf.Jobs.DigestAt).Do(runDigestJob); err != nil {
		return err
	}
	s.StartAsync()
	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// runMorningJob expands recurring templates to the horizon, then announces
// tasks scheduled for today to their assignees. Future-dated children were
// exempt from immediate notification when created, this is where they fire.
func runMorningJob(loc *time.Location) {
	logger := log.WithField("job", "morning_notify")

	store := taskstore.NewInstance(db.DB)
	templates, err := store.ListTemplates()
	if err != nil {
		logger.WithError(err).Error("failed to list recurring templates")
	} else {
		for _, template := range templates {
			if err = taskhandler.Instance.EnsureChildInstances(template); err != nil {
				logger.WithError(err).WithField("task_id", template.ID).Error("failed to expand recurring template")
			}
		}
	}

	now := time.Now().In(loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	list, err := store.ListScheduledBetween(dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		logger.WithError(err).Error("failed to list today's scheduled tasks")
		return
	}
	for _, task := range list {
		for _, userID := range task.AssignedTo {
			notificationhandler.Instance.NotifyUser(userID, models.NotifyTaskScheduled,
				task.Title, "Scheduled for today: "+task.Title)
		}
	}
	logger.WithField("task_count", len(list)).Info("morning notifications dispatched")
}

// runDigestJob mails every supervisor a short summary of the open workload.
func runDigestJob() {
	logger := log.WithField("job", "digest")

	taskFilter := taskapimodels.TaskFilter{}
	taskFilter.Limit = 1
	taskFilter.Statuses = []models.TaskStatus{
		models.TaskStatusNew, models.TaskStatusWithOperator, models.TaskStatusAssignedToRadnik,
		models.TaskStatusWithSef, models.TaskStatusWithExternal,
		models.TaskStatusReturnedToOperator, models.TaskStatusReturnedToSef,
	}
	_, openTasks, err := taskstore.NewInstance(db.DB).List(taskFilter)
	if err != nil {
		logger.WithError(err).Error("failed to count open tasks")
		return
	}

	hkFilter := hkapimodels.HkTaskFilter{}
	hkFilter.Limit = 1
	hkFilter.Statuses = []models.HousekeepingStatus{
		models.HkStatusPending, models.HkStatusInProgress, models.HkStatusNeedsRework,
	}
	_, openCleanings, err := housekeepingstore.NewInstance(db.DB).List(hkFilter)
	if err != nil {
		logger.WithError(err).Error("failed to count open cleaning tasks")
		return
	}

	message := fmt.Sprintf("Good morning.\n\nOpen maintenance tasks: %v\nOpen cleaning tasks: %v\n", openTasks, openCleanings)
	supervisors, err := usersstore.NewInstance(db.DB).ListByRole(models.UserRoleSef)
	if err != nil {
		logger.WithError(err).Error("failed to list supervisors")
		return
	}
	for _, supervisor := range supervisors {
		if supervisor.Email == "" {
			continue
		}
		err = smtp.Instance.SendEMail(config.Conf.Smtp.DigestFrom, supervisor.Email, message, "Daily operations digest")
		if err != nil {
			logger.WithError(err).WithField("user_id", supervisor.ID).Error("failed to send digest")
		}
	}
	logger.Info("digest sent")
}
