// Package storage implements the object-storage backend with MinIO's
// S3-compatible client. Objects are written and read by clients directly
// through presigned URLs; this service never touches object bytes.
package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/roomly/storefront-api/internal/core/ports"
)

// Config holds the bucket connection settings. PublicBaseURL is the prefix
// listed objects are served from.
type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
}

type Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// New initialises the MinIO client. Connectivity is not verified here; the
// readiness probe owns that.
func New(cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}

	return &Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// PresignPut returns a time-limited URL permitting one direct PUT of the key.
func (s *Store) PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignHeader(ctx, "PUT", s.bucket, key, expiry, url.Values{},
		map[string][]string{"Content-Type": {contentType}})
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}
	return u.String(), nil
}

// List enumerates up to limit objects in the bucket.
func (s *Store) List(ctx context.Context, limit int) ([]ports.MediaObject, error) {
	objects := make([]ports.MediaObject, 0, 64)

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Recursive: true,
		MaxKeys:   limit,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		objects = append(objects, ports.MediaObject{
			Name:         obj.Key,
			URL:          s.publicBaseURL + "/" + obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
		if len(objects) >= limit {
			break
		}
	}
	return objects, nil
}
