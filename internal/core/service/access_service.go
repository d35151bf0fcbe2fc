package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

type accessService struct {
	repo ports.AccessRepository
	log  zerolog.Logger
}

// NewAccessService returns the premium-access gate.
func NewAccessService(repo ports.AccessRepository, log zerolog.Logger) ports.AccessService {
	return &accessService{repo: repo, log: log}
}

// Check resolves premium access for a session. A PREMIUM_USER role grants
// access without touching the grants table; otherwise the grants table
// decides. This gate fails CLOSED: a missing user id or a store error yields
// no access rather than an error response. The opposite of login enrichment,
// which fails open; both policies are deliberate.
func (s *accessService) Check(ctx context.Context, userID int64, role domain.Role) ports.AccessResult {
	if role == domain.RolePremiumUser {
		return ports.AccessResult{HasAccess: true, IsPremiumUser: true}
	}

	if userID == 0 {
		return ports.AccessResult{}
	}

	granted, err := s.repo.HasGrant(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("premium grant lookup failed, denying access")
		return ports.AccessResult{}
	}

	return ports.AccessResult{HasAccess: granted}
}
