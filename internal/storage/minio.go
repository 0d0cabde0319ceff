package storage

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// MinioConfig holds the connection settings for a MinIO backed store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStore stores uploads as objects in a MinIO bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore initializes a MinIO client and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check minio bucket")
	}

	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, "failed to create minio bucket")
		}
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// Store persists the upload as a bucket object and returns its relative path.
func (s *MinioStore) Store(ctx context.Context, namespace string, up *Upload) (string, error) {
	if namespace == "" {
		return "", ErrEmptyNamespace
	}

	if up == nil || up.Reader == nil {
		return "", ErrEmptyUpload
	}

	name := objectName(namespace, up)

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		name,
		up.Reader,
		up.Size,
		minio.PutObjectOptions{ContentType: up.ContentType},
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload object")
	}

	return name, nil
}

// Delete removes the object. MinIO treats removing a missing object as a no-op.
func (s *MinioStore) Delete(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})

	return errors.Wrap(err, "failed to remove object")
}
