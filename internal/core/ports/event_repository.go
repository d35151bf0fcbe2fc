package ports

import (
	"context"

	"github.com/roomly/storefront-api/internal/core/domain"
)

// EventRepository persists calendar events. Update and Delete return
// domain.ErrEventNotFound when no row matched the id.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (int64, error)
	List(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id int64) error
}
