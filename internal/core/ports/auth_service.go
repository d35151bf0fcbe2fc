package ports

import (
	"context"

	"github.com/roomly/storefront-api/internal/core/domain"
)

// RegisterInput carries the registration fields; all are required.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type AuthService interface {
	// Login verifies credentials against the identity worker and enriches
	// the result with the local user record when one exists. Returns the
	// signed session token and the resolved identity.
	Login(ctx context.Context, email, password string) (string, *domain.Identity, error)
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
}
