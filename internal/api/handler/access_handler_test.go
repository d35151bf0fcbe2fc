package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

type stubAccessService struct {
	result ports.AccessResult
	gotID  int64
	gotRol domain.Role
}

func (s *stubAccessService) Check(_ context.Context, userID int64, role domain.Role) ports.AccessResult {
	s.gotID = userID
	s.gotRol = role
	return s.result
}

func TestAccessHandler_Check(t *testing.T) {
	stub := &stubAccessService{result: ports.AccessResult{HasAccess: true, IsPremiumUser: true}}
	h := NewAccessHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/premium-access/check", "")
	c.Set("user_id", int64(7))
	c.Set("role", string(domain.RolePremiumUser))

	if err := h.Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotID != 7 || stub.gotRol != domain.RolePremiumUser {
		t.Fatalf("claims not forwarded: id=%d role=%s", stub.gotID, stub.gotRol)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp["hasAccess"] || !resp["isPremiumUser"] {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAccessHandler_Check_MissingClaims(t *testing.T) {
	stub := &stubAccessService{result: ports.AccessResult{}}
	h := NewAccessHandler(stub)

	// No claims set: the handler still answers 200 with a denial.
	c, rec := newTestContext(t, http.MethodGet, "/api/premium-access/check", "")

	if err := h.Check(c); err != nil {
		t.Fatalf("gating check must never error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotID != 0 {
		t.Fatalf("missing claim must read as zero id, got %d", stub.gotID)
	}
}
