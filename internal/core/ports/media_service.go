package ports

import (
	"context"
	"time"
)

// UploadTicket is a time-limited permission to write one object directly to
// the bucket; the object's bytes never pass through this service.
type UploadTicket struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"uploadUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MediaObject describes one stored object in a listing.
type MediaObject struct {
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

type MediaService interface {
	SignUpload(ctx context.Context, filename, contentType string) (*UploadTicket, error)
	List(ctx context.Context) ([]MediaObject, error)
}

// ObjectStore abstracts the object-storage backend used by MediaService.
type ObjectStore interface {
	PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	List(ctx context.Context, limit int) ([]MediaObject, error)
}
