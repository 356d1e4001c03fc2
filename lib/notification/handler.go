package notificationhandler

import (
	"context"
	"fmt"
	"hotel-ops-backend/config"
	"hotel-ops-backend/db"
	devicetokenhandler "hotel-ops-backend/lib/device-token"
	fcmclient "hotel-ops-backend/lib/push/fcm"
	pushdatastore "hotel-ops-backend/lib/push/data-store"
	usersstore "hotel-ops-backend/lib/users/store"
	connectionhub "hotel-ops-backend/lib/ws/hub/connection-hub"
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
	wsmodels "hotel-ops-backend/models/ws"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// TaskChanged fans out a task transition to its recipients. Fire-and-forget:
	// the caller's response never waits on delivery.
	TaskChanged(task dbmodels.Task, newStatus models.TaskStatus)
	NotifyUser(userID string, code models.NotificationCode, title, msg string)
	NotifyRole(role models.UserRole, code models.NotificationCode, title, msg string)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		usersStore: usersstore.NewInstance(db.DB),
		pushStore:  pushdatastore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
	pushStore  pushdatastore.Provider
}

func (i impl) membersOf(role models.UserRole) ([]string, error) {
	users, err := i.usersStore.ListByRole(role)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %v users", role)
	}
	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	return ids, nil
}

func (i impl) TaskChanged(task dbmodels.Task, newStatus models.TaskStatus) {
	// future-dated recurring children are announced by the daily job instead
	if task.IsScheduledForFuture(time.Now()) {
		return
	}
	go func() {
		logger := log.WithField("task_id", task.ID)
		recipients, err := Recipients(newStatus, task.AssignedTo, i.membersOf)
		if err != nil {
			logger.WithError(err).Error("failed to resolve notification recipients")
			return
		}
		code := CodeFor(newStatus)
		msg := fmt.Sprintf("%s: %s", newStatus.ToHuman(), task.Title)
		for _, userID := range recipients {
			go i.notifyOne(userID, code, task.Title, msg)
		}
	}()
}

func (i impl) NotifyUser(userID string, code models.NotificationCode, title, msg string) {
	go i.notifyOne(userID, code, title, msg)
}

func (i impl) NotifyRole(role models.UserRole, code models.NotificationCode, title, msg string) {
	go func() {
		recipients, err := i.membersOf(role)
		if err != nil {
			log.WithError(err).Error("failed to resolve notification recipients")
			return
		}
		for _, userID := range recipients {
			go i.notifyOne(userID, code, title, msg)
		}
	}()
}

// notifyOne delivers one event to one user over every channel. Each token is
// pushed independently so a dead or slow token cannot block the rest.
func (i impl) notifyOne(userID string, code models.NotificationCode, title, msg string) {
	logger := log.
		WithField("user_id", userID).
		WithField("notify_code", code)

	if connectionhub.Instance.IsConnected(userID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     time.Now().Format("02.01.2006 15:04:05"),
			Code:     string(code),
			Title:    title,
			Msg:      msg,
		})
	} else {
		err := i.pushStore.Save(dbmodels.PushData{
			UserID: userID,
			Code:   code,
			Msg:    msg,
			Title:  title,
		})
		if err != nil {
			logger.WithError(err).Error("failed to store offline event")
		}
	}

	tokens, err := devicetokenhandler.Instance.ActiveTokensFor(userID)
	if err != nil {
		logger.WithError(err).Error("failed to resolve device tokens")
		return
	}
	for _, token := range tokens {
		go i.sendPush(logger, token, title, msg, map[string]string{"code": string(code)})
	}
}

func (i impl) sendPush(logger *log.Entry, token dbmodels.DeviceToken, title, msg string, data map[string]string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.Conf.Push.TimeoutInSec)*time.Second)
	defer cancel()
	err := fcmclient.Instance.SendPush(ctx, token.PushToken, title, msg, data)
	if err == nil {
		return
	}
	if errors.Is(err, fcmclient.ErrInvalidToken) {
		logger.Info("deactivating dead push token")
		if dErr := devicetokenhandler.Instance.Deactivate(token.PushToken); dErr != nil {
			logger.WithError(dErr).Error("failed to deactivate dead push token")
		}
		return
	}
	logger.WithError(err).Error("push delivery failed")
}
