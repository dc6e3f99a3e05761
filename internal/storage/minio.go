package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/jobdesk/jobdesk-go/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrObjectExists is returned on a storage key collision. Uploads never
// overwrite; a collision is a failure, not a silent replace.
var ErrObjectExists = errors.New("object already exists at key")

// Uploader writes image payloads to object storage and hands back a URL
// that is retrievable without authentication.
type Uploader interface {
	Upload(ctx context.Context, data []byte, fileName, contentType string) (publicURL, objectKey string, err error)
	Remove(ctx context.Context, objectKey string) error
}

type MinioStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

var _ Uploader = (*MinioStore)(nil)

// NewMinioStore connects to MinIO and ensures the image bucket exists.
func NewMinioStore() (*MinioStore, error) {
	client, err := minio.New(config.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", config.MinioBucket, err)
		}
		// Anonymous read so the returned URLs work without credentials.
		policy := fmt.Sprintf(`{
            "Version": "2012-10-17",
            "Statement": [{
                "Effect": "Allow",
                "Principal": {"AWS": ["*"]},
                "Action": ["s3:GetObject"],
                "Resource": ["arn:aws:s3:::%s/*"]
            }]
        }`, config.MinioBucket)
		if err := client.SetBucketPolicy(ctx, config.MinioBucket, policy); err != nil {
			log.Printf("Warning: failed to set public-read policy on %s: %v", config.MinioBucket, err)
		}
	}

	return &MinioStore{
		client:   client,
		bucket:   config.MinioBucket,
		endpoint: config.MinioEndpoint,
		useSSL:   config.MinioUseSSL,
	}, nil
}

// Upload stores data under jobs/job-<timestamp>.<ext> and returns the public
// URL together with the object key used.
func (s *MinioStore) Upload(ctx context.Context, data []byte, fileName, contentType string) (string, string, error) {
	if len(data) == 0 {
		return "", "", errors.New("empty file")
	}

	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		ext = "bin"
	}
	key := fmt.Sprintf("jobs/job-%d.%s", time.Now().UnixMilli(), ext)

	// Refuse to overwrite. StatObject on a missing key yields NoSuchKey.
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return "", "", fmt.Errorf("%w: %s", ErrObjectExists, key)
	}
	if resp := minio.ToErrorResponse(err); resp.Code != "NoSuchKey" {
		return "", "", fmt.Errorf("stat object %s: %w", key, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", "", fmt.Errorf("upload object %s: %w", key, err)
	}

	return s.PublicURL(key), key, nil
}

func (s *MinioStore) Remove(ctx context.Context, objectKey string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
}

// PublicURL builds the unauthenticated retrieval URL for an object key.
func (s *MinioStore) PublicURL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}
