package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/roomly/storefront-api/internal/core/ports"
)

type stubMediaService struct {
	signFn func(ctx context.Context, filename, contentType string) (*ports.UploadTicket, error)
	listFn func(ctx context.Context) ([]ports.MediaObject, error)
}

func (s *stubMediaService) SignUpload(ctx context.Context, filename, contentType string) (*ports.UploadTicket, error) {
	return s.signFn(ctx, filename, contentType)
}

func (s *stubMediaService) List(ctx context.Context) ([]ports.MediaObject, error) {
	return s.listFn(ctx)
}

func TestMediaHandler_SignUpload(t *testing.T) {
	stub := &stubMediaService{
		signFn: func(ctx context.Context, filename, contentType string) (*ports.UploadTicket, error) {
			if filename != "sofa.jpg" || contentType != "image/jpeg" {
				t.Fatalf("unexpected args: %s %s", filename, contentType)
			}
			return &ports.UploadTicket{
				Key:       "sofa-1700000000-abcd1234.jpg",
				UploadURL: "https://bucket.example.com/sofa?sig=x",
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	h := NewMediaHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/mediaUploader",
		`{"filename":"sofa.jpg","contentType":"image/jpeg"}`)
	if err := h.SignUpload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["uploadUrl"] == "" || resp["key"] == "" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMediaHandler_SignUpload_MissingContentType(t *testing.T) {
	stub := &stubMediaService{
		signFn: func(ctx context.Context, filename, contentType string) (*ports.UploadTicket, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewMediaHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/mediaUploader", `{"filename":"sofa.jpg"}`)
	err := h.SignUpload(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestMediaHandler_List(t *testing.T) {
	stub := &stubMediaService{
		listFn: func(ctx context.Context) ([]ports.MediaObject, error) {
			return []ports.MediaObject{
				{Name: "a.jpg", URL: "https://cdn.example.com/a.jpg", Size: 1024},
			}, nil
		},
	}
	h := NewMediaHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/mediaDownloader", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Files []ports.MediaObject `json:"files"`
		Count int                 `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 1 || resp.Files[0].Name != "a.jpg" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
