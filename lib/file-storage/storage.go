package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"

	"company-portal-backend/config"
)

type Provider interface {
	UploadFile(ctx context.Context, objectKey, contentType string, fileReader io.Reader, fileSize int64) error
	GetFile(ctx context.Context, objectKey string) ([]byte, error)
	DeleteFile(ctx context.Context, objectKey string) error
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

func (i impl) UploadFile(ctx context.Context, objectKey, contentType string, fileReader io.Reader, fileSize int64) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, objectKey string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	buf := bytes.Buffer{}
	if _, err = io.Copy(&buf, object); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (i impl) DeleteFile(ctx context.Context, objectKey string) error {
	return i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, objectKey, minio.RemoveObjectOptions{})
}
