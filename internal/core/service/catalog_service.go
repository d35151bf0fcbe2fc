package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/roomly/storefront-api/internal/api/metrics"
	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

// SearchCache caches normalized search results keyed by the query
// parameters. Backed by Redis; every cache failure is non-fatal.
type SearchCache interface {
	Get(ctx context.Context, q ports.SearchQuery) ([]domain.Product, bool, error)
	Set(ctx context.Context, q ports.SearchQuery, products []domain.Product) error
}

type catalogService struct {
	client ports.CatalogClient
	cache  SearchCache
	log    zerolog.Logger
}

// NewCatalogService returns a CatalogService backed by the catalog API
// client, with an optional read-through search cache.
func NewCatalogService(client ports.CatalogClient, cache SearchCache, log zerolog.Logger) ports.CatalogService {
	return &catalogService{client: client, cache: cache, log: log}
}

// Search queries the catalog API and normalizes every returned item. The
// result is all-or-nothing: an upstream failure yields an empty slice and the
// error, never a partial list.
func (s *catalogService) Search(ctx context.Context, q ports.SearchQuery) ([]domain.Product, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, q)
		if err != nil {
			s.log.Warn().Err(err).Msg("search cache read failed, querying upstream")
		} else if ok {
			metrics.SearchCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.SearchCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	raw, err := s.client.Search(ctx, q)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("catalog search: %w", err)
	}

	products := make([]domain.Product, 0, len(raw))
	for _, doc := range raw {
		products = append(products, domain.NormalizeProduct(doc))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, q, products); err != nil {
			s.log.Warn().Err(err).Msg("search cache write failed")
		}
	}

	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	return products, nil
}

// Detail fetches and normalizes a single product.
func (s *catalogService) Detail(ctx context.Context, productID int64) (*domain.Product, error) {
	doc, err := s.client.Detail(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("catalog detail: %w", err)
	}

	p := domain.NormalizeProduct(doc)
	return &p, nil
}
