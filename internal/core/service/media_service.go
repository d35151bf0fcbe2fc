package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/roomly/storefront-api/internal/api/metrics"
	"github.com/roomly/storefront-api/internal/core/ports"
)

const (
	uploadURLExpiry = time.Hour
	listLimit       = 1000
)

type mediaService struct {
	store ports.ObjectStore
	log   zerolog.Logger
}

// NewMediaService returns a MediaService over the given object store.
func NewMediaService(store ports.ObjectStore, log zerolog.Logger) ports.MediaService {
	return &mediaService{store: store, log: log}
}

// SignUpload issues a one-hour presigned PUT URL for a collision-resistant
// object key derived from the original filename.
func (s *mediaService) SignUpload(ctx context.Context, filename, contentType string) (*ports.UploadTicket, error) {
	key := objectKey(filename)

	url, err := s.store.PresignPut(ctx, key, contentType, uploadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	metrics.UploadsSignedTotal.Inc()
	s.log.Info().Str("key", key).Msg("upload url signed")

	return &ports.UploadTicket{
		Key:       key,
		UploadURL: url,
		ExpiresAt: time.Now().UTC().Add(uploadURLExpiry),
	}, nil
}

// List enumerates stored objects. Zero-byte entries are folder placeholders
// and are dropped before the listing is returned.
func (s *mediaService) List(ctx context.Context) ([]ports.MediaObject, error) {
	objects, err := s.store.List(ctx, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}

	out := make([]ports.MediaObject, 0, len(objects))
	for _, obj := range objects {
		if obj.Size == 0 {
			continue
		}
		out = append(out, obj)
	}
	return out, nil
}

// objectKey combines the sanitized original name, a timestamp, and a short
// random suffix: "<base>-<unix>-<rand8><ext>".
func objectKey(filename string) string {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(path.Base(filename), ext)
	base = sanitize(base)
	if base == "" {
		base = "upload"
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().Unix(), suffix, ext)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ', r == '.':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
