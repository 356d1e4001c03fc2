package taskimagehandler

import (
	"context"
	"hotel-ops-backend/db"
	filestorage "hotel-ops-backend/lib/file-storage"
	taskstore "hotel-ops-backend/lib/task/store"
	taskimagestore "hotel-ops-backend/lib/task-image/store"
	"hotel-ops-backend/lib/utils/apperrors"
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, actor models.AuthUser, taskID, fileName, contentType string, file []byte) (id string, err error)
	Get(ctx context.Context, imageID string) (rec *dbmodels.TaskImage, file []byte, err error)
	ListByTask(taskID string) ([]dbmodels.TaskImage, error)
	Delete(ctx context.Context, actor models.AuthUser, imageID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     taskimagestore.NewInstance(db.DB),
		taskStore: taskstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     taskimagestore.Provider
	taskStore taskstore.Provider
}

func (i impl) Upload(ctx context.Context, actor models.AuthUser, taskID, fileName, contentType string, file []byte) (string, error) {
	if len(file) == 0 {
		return "", apperrors.Validation("file is empty")
	}
	task, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return "", errors.Wrap(err, "failed to get task")
	}
	if task == nil {
		return "", apperrors.NotFound("task not found")
	}
	objectKey, err := filestorage.Instance.UploadTaskImage(ctx, taskID, file, contentType)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}
	id, err := i.store.Save(dbmodels.TaskImage{
		TaskID:      taskID,
		FileName:    fileName,
		ContentType: contentType,
		ObjectKey:   objectKey,
		UploadedBy:  actor.ID,
	})
	if err != nil {
		// orphaned object, best effort cleanup
		if dErr := filestorage.Instance.DeleteTaskImage(ctx, objectKey); dErr != nil {
			log.WithError(dErr).WithField("object_key", objectKey).Error("failed to remove orphaned image object")
		}
		return "", errors.Wrap(err, "failed to save image record")
	}
	return id, nil
}

func (i impl) Get(ctx context.Context, imageID string) (*dbmodels.TaskImage, []byte, error) {
	rec, err := i.store.GetByID(imageID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get image record")
	}
	if rec == nil {
		return nil, nil, apperrors.NotFound("image not found")
	}
	file, err := filestorage.Instance.GetTaskImage(ctx, rec.ObjectKey)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to download image")
	}
	return rec, file, nil
}

func (i impl) ListByTask(taskID string) ([]dbmodels.TaskImage, error) {
	return i.store.ListByTask(taskID)
}

func (i impl) Delete(ctx context.Context, actor models.AuthUser, imageID string) error {
	if !actor.Role.CanEditTaskFields() {
		return apperrors.Forbidden("only a supervisor may delete task images")
	}
	rec, err := i.store.GetByID(imageID)
	if err != nil {
		return errors.Wrap(err, "failed to get image record")
	}
	if rec == nil {
		return apperrors.NotFound("image not found")
	}
	if err = i.store.Delete(imageID); err != nil {
		return errors.Wrap(err, "failed to delete image record")
	}
	if err = filestorage.Instance.DeleteTaskImage(ctx, rec.ObjectKey); err != nil {
		log.WithError(err).WithField("object_key", rec.ObjectKey).Error("failed to remove image object")
	}
	return nil
}
