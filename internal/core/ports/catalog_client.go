package ports

import "context"

// SearchQuery carries the free-text and facet parameters for a catalog
// search. Empty fields are omitted from the upstream request.
type SearchQuery struct {
	Query    string
	Category string
	Keywords string
}

// CatalogClient talks to the external product catalog API.
type CatalogClient interface {
	// Search returns the raw product documents found in the upstream
	// response, wherever the upstream chose to put them.
	Search(ctx context.Context, q SearchQuery) ([]map[string]any, error)

	// Detail returns the raw document for a single product id.
	Detail(ctx context.Context, productID int64) (map[string]any, error)
}
