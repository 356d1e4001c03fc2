package initializers

import (
	"context"
	filestorage "hotel-ops-backend/lib/file-storage"
	s3client "hotel-ops-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	if err := s3client.Connect(ctx); err != nil {
		log.WithError(err).Error("failed to initialize S3 client, task images will be unavailable")
		return
	}
	filestorage.NewInstance(s3client.Client)
	log.Info("S3 client initialized")
}
