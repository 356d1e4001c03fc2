package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"hotel-ops-backend/config"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// Provider keeps task image binaries in the S3 bucket; the image metadata rows
// live in the task image store.
type Provider interface {
	UploadTaskImage(ctx context.Context, taskID string, file []byte, contentType string) (objectKey string, err error)
	GetTaskImage(ctx context.Context, objectKey string) ([]byte, error)
	DeleteTaskImage(ctx context.Context, objectKey string) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadTaskImage(ctx context.Context, taskID string, file []byte, contentType string) (string, error) {
	objectKey := fmt.Sprintf("tasks/%s/%s", taskID, uuid.NewString())
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (i impl) GetTaskImage(ctx context.Context, objectKey string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}

func (i impl) DeleteTaskImage(ctx context.Context, objectKey string) error {
	return i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, objectKey, minio.RemoveObjectOptions{})
}
