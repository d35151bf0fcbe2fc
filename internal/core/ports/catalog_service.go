package ports

import (
	"context"

	"github.com/roomly/storefront-api/internal/core/domain"
)

// CatalogService exposes normalized product search and detail lookups.
type CatalogService interface {
	// Search is all-or-nothing: on any upstream failure it returns an
	// empty slice and the error, never a partial list.
	Search(ctx context.Context, q SearchQuery) ([]domain.Product, error)
	Detail(ctx context.Context, productID int64) (*domain.Product, error)
}
