package ports

import (
	"context"

	"github.com/roomly/storefront-api/internal/core/domain"
)

// IdentityClient talks to the external identity worker. Verify returns the
// worker-issued identity (role and opaque API token included) or
// domain.ErrInvalidCredentials on any non-success worker response.
type IdentityClient interface {
	Verify(ctx context.Context, email, password string) (*domain.Identity, error)
}
