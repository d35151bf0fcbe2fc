package ports

import (
	"context"
	"time"

	"github.com/roomly/storefront-api/internal/core/domain"
)

// EventInput is the DTO passed from the transport layer for create/update.
type EventInput struct {
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
}

type EventService interface {
	Create(ctx context.Context, in EventInput) (int64, error)
	List(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, id int64, in EventInput) error
	Delete(ctx context.Context, id int64) error
}
