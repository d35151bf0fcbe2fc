package ports

import "context"

// AccessRepository reads premium-access grants. Grants are written by the
// access-code redemption flow, which lives outside this service.
type AccessRepository interface {
	HasGrant(ctx context.Context, userID int64) (bool, error)
}
