package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AccessRepository reads premium-access grants. Grants are decoupled from
// role and written by the access-code redemption flow elsewhere.
type AccessRepository struct {
	pool *pgxpool.Pool
}

func NewAccessRepository(pool *pgxpool.Pool) *AccessRepository {
	return &AccessRepository{pool: pool}
}

func (r *AccessRepository) HasGrant(ctx context.Context, userID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM premium_access WHERE user_id = $1)`

	var granted bool
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&granted); err != nil {
		return false, fmt.Errorf("grant lookup: %w", err)
	}
	return granted, nil
}
