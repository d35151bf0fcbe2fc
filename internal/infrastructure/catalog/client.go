// Package catalog implements the HTTP client for the external product
// catalog API. Requests carry a fixed JSON envelope; responses have no fixed
// contract, so decoding probes an ordered list of candidate locations.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Config holds the catalog API connection settings and the auth block sent
// in every request envelope.
type Config struct {
	BaseURL   string
	ServiceID string
	APIVer    string
	AccountID string
	LoginID   string
	Key       string
	Timeout   time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// envelope is the fixed request wrapper the catalog API expects. Operation
// fields are merged in by the caller.
type envelope struct {
	ServiceID string       `json:"serviceId"`
	APIVer    string       `json:"apiVer"`
	Auth      envelopeAuth `json:"auth"`

	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
	Keywords string `json:"keywords,omitempty"`
	ProdID   string `json:"prodId,omitempty"`
}

type envelopeAuth struct {
	AcctID  string `json:"acctId"`
	LoginID string `json:"loginId"`
	Key     string `json:"key"`
}

// productListPaths is the ordered list of response locations probed for the
// result array. This is a compatibility shim: the upstream has no fixed
// response contract and has been observed to move the list between these
// keys. If upstream changes shape again this list is the place to extend.
var productListPaths = [][]string{
	{"products"},
	{"searchResults", "products"},
	{"searchResults"},
	{"list"},
	{"results"},
}

// Search issues one search request and extracts the product array from
// wherever the response put it.
func (c *Client) Search(ctx context.Context, q ports.SearchQuery) ([]map[string]any, error) {
	env := c.newEnvelope()
	env.Query = q.Query
	env.Category = q.Category
	env.Keywords = q.Keywords

	doc, err := c.post(ctx, "/search", env)
	if err != nil {
		return nil, err
	}

	for _, path := range productListPaths {
		if items, ok := lookupArray(doc, path); ok {
			return items, nil
		}
	}

	// A well-formed response with no recognizable list is an empty result,
	// not an error.
	return nil, nil
}

// Detail issues one detail request and unwraps the product payload, erroring
// when it is absent.
func (c *Client) Detail(ctx context.Context, productID int64) (map[string]any, error) {
	env := c.newEnvelope()
	env.ProdID = strconv.FormatInt(productID, 10)

	doc, err := c.post(ctx, "/productDetails", env)
	if err != nil {
		return nil, err
	}

	product, ok := doc["product"].(map[string]any)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (c *Client) newEnvelope() envelope {
	return envelope{
		ServiceID: c.cfg.ServiceID,
		APIVer:    c.cfg.APIVer,
		Auth: envelopeAuth{
			AcctID:  c.cfg.AccountID,
			LoginID: c.cfg.LoginID,
			Key:     c.cfg.Key,
		},
	}
}

func (c *Client) post(ctx context.Context, path string, env envelope) (map[string]any, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("catalog request encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog response decode: %w", err)
	}
	return doc, nil
}

// lookupArray walks the path into the document and coerces the value found
// there into a slice of objects.
func lookupArray(doc map[string]any, path []string) ([]map[string]any, bool) {
	var cur any = doc
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	arr, ok := cur.([]any)
	if !ok {
		return nil, false
	}

	items := make([]map[string]any, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items, true
}
