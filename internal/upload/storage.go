package upload

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/providesk/helpdesk-gateway/internal/config"
	"github.com/providesk/helpdesk-gateway/internal/domain"
)

// ObjectStorage stores a single staged file and returns its reference name.
// Failures are reported per file so the batch can settle completely.
type ObjectStorage interface {
	Store(ctx context.Context, file domain.StagedFile, pathHint string) (string, error)
}

// MinioStorage uploads attachments to an S3-compatible bucket.
type MinioStorage struct {
	client     *minio.Client
	bucket     string
	presignTTL time.Duration
}

// NewMinioStorage connects to object storage using the provided configuration.
func NewMinioStorage(cfg config.StorageConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorage{
		client:     client,
		bucket:     cfg.Bucket,
		presignTTL: cfg.PresignTTL(),
	}, nil
}

// Store writes one staged file under the path hint and returns the object key.
func (s *MinioStorage) Store(ctx context.Context, file domain.StagedFile, pathHint string) (string, error) {
	objectKey := fmt.Sprintf("%s/%d_%s", pathHint, time.Now().UnixNano(), file.FileName)
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(file.Content), file.Size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

// PresignedURL returns a time-limited retrieval URL for a stored object.
func (s *MinioStorage) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, s.presignTTL, url.Values{})
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}
