package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:   srv.URL,
		ServiceID: "svc-1",
		APIVer:    "2.0",
		AccountID: "acct-1",
		LoginID:   "login-1",
		Key:       "key-1",
	})
}

func TestClient_Search_SendsEnvelope(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]any{"products": []any{}})
	})

	if _, err := client.Search(context.Background(), ports.SearchQuery{
		Query: "sofa", Category: "Living", Keywords: "velvet",
	}); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if got["serviceId"] != "svc-1" || got["apiVer"] != "2.0" {
		t.Fatalf("envelope header missing: %+v", got)
	}
	auth, ok := got["auth"].(map[string]any)
	if !ok || auth["acctId"] != "acct-1" || auth["loginId"] != "login-1" || auth["key"] != "key-1" {
		t.Fatalf("auth block missing: %+v", got)
	}
	if got["query"] != "sofa" || got["category"] != "Living" || got["keywords"] != "velvet" {
		t.Fatalf("search fields missing: %+v", got)
	}
}

func TestClient_Search_ProbesResponseShapes(t *testing.T) {
	item := map[string]any{"prodEid": "E-1", "title": "Sofa"}

	shapes := []map[string]any{
		{"products": []any{item}},
		{"searchResults": map[string]any{"products": []any{item}}},
		{"searchResults": []any{item}},
		{"list": []any{item}},
		{"results": []any{item}},
	}

	for i, shape := range shapes {
		body := shape
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(body)
		})

		docs, err := client.Search(context.Background(), ports.SearchQuery{Query: "sofa"})
		if err != nil {
			t.Fatalf("shape %d: search failed: %v", i, err)
		}
		if len(docs) != 1 || docs[0]["prodEid"] != "E-1" {
			t.Fatalf("shape %d: list not found: %+v", i, docs)
		}
	}
}

func TestClient_Search_UnrecognizedShapeIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
	})

	docs, err := client.Search(context.Background(), ports.SearchQuery{Query: "sofa"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected empty result, got %+v", docs)
	}
}

func TestClient_Search_UpstreamErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Search(context.Background(), ports.SearchQuery{Query: "sofa"})
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestClient_Detail_UnwrapsProduct(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/productDetails" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"product": map[string]any{"id": "42", "name": "Armchair"},
		})
	})

	doc, err := client.Detail(context.Background(), 42)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if got["prodId"] != "42" {
		t.Fatalf("prodId not sent: %+v", got)
	}
	if doc["name"] != "Armchair" {
		t.Fatalf("product not unwrapped: %+v", doc)
	}
}

func TestClient_Detail_MissingProductPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
	})

	if _, err := client.Detail(context.Background(), 42); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
