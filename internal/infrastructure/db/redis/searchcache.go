package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

const searchTTL = time.Minute

// SearchCache caches normalized catalog search results in Redis.
// Key format: search:<sha256(query|category|keywords)>
type SearchCache struct {
	client *redis.Client
}

// NewSearchCache creates a SearchCache wrapping the given Redis client.
func NewSearchCache(client *redis.Client) *SearchCache {
	return &SearchCache{client: client}
}

// cachedProduct flattens a Product for storage; the raw upstream document is
// kept so pass-through fields survive the round trip.
type cachedProduct struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Thumbnail string         `json:"thumbnail,omitempty"`
	Price     float64        `json:"price"`
	Raw       map[string]any `json:"raw,omitempty"`
}

func (c *SearchCache) Get(ctx context.Context, q ports.SearchQuery) ([]domain.Product, bool, error) {
	data, err := c.client.Get(ctx, c.key(q)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("search cache get: %w", err)
	}

	var cached []cachedProduct
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("search cache decode: %w", err)
	}

	products := make([]domain.Product, len(cached))
	for i, cp := range cached {
		products[i] = domain.Product{
			ID:        cp.ID,
			Name:      cp.Name,
			Thumbnail: cp.Thumbnail,
			Price:     cp.Price,
			Raw:       cp.Raw,
		}
	}
	return products, true, nil
}

func (c *SearchCache) Set(ctx context.Context, q ports.SearchQuery, products []domain.Product) error {
	cached := make([]cachedProduct, len(products))
	for i, p := range products {
		cached[i] = cachedProduct{
			ID:        p.ID,
			Name:      p.Name,
			Thumbnail: p.Thumbnail,
			Price:     p.Price,
			Raw:       p.Raw,
		}
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("search cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(q), data, searchTTL).Err()
}

func (c *SearchCache) key(q ports.SearchQuery) string {
	sum := sha256.Sum256([]byte(q.Query + "|" + q.Category + "|" + q.Keywords))
	return "search:" + hex.EncodeToString(sum[:16])
}
