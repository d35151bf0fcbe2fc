package ports

import (
	"context"

	"github.com/roomly/storefront-api/internal/core/domain"
)

// AccessResult is the outcome of a premium-access check.
type AccessResult struct {
	HasAccess     bool `json:"hasAccess"`
	IsPremiumUser bool `json:"isPremiumUser"`
}

// AccessService gates premium features. Check never returns an error to the
// caller's benefit: any failure degrades to no access (fail-closed).
type AccessService interface {
	Check(ctx context.Context, userID int64, role domain.Role) AccessResult
}
