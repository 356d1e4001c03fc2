package initializers

import (
	"context"
	"hotel-ops-backend/config"
	"hotel-ops-backend/fiberlog"
	authhandler "hotel-ops-backend/lib/auth"
	devicetokenhandler "hotel-ops-backend/lib/device-token"
	reporthandler "hotel-ops-backend/lib/export/report"
	xlsexport "hotel-ops-backend/lib/export/xls"
	guestrequesthandler "hotel-ops-backend/lib/guest-request"
	housekeepinghandler "hotel-ops-backend/lib/housekeeping"
	notificationhandler "hotel-ops-backend/lib/notification"
	fcmclient "hotel-ops-backend/lib/push/fcm"
	roomhandler "hotel-ops-backend/lib/room"
	"hotel-ops-backend/lib/scheduler"
	taskhandler "hotel-ops-backend/lib/task"
	taskimagehandler "hotel-ops-backend/lib/task-image"
	usershandler "hotel-ops-backend/lib/users"
	connectionhub "hotel-ops-backend/lib/ws/hub/connection-hub"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	fcmclient.NewProvider()
	devicetokenhandler.NewHandler()
	notificationhandler.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	taskhandler.NewHandler()
	taskimagehandler.NewHandler()
	housekeepinghandler.NewHandler()
	roomhandler.NewHandler()
	guestrequesthandler.NewHandler()
	xlsexport.NewHandler()
	reporthandler.NewHandler()

	if err := scheduler.Start(ctx); err != nil {
		log.WithError(err).Error("failed to start scheduled jobs")
	}
}
