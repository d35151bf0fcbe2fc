package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roomly/storefront-api/internal/core/domain"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (int64, error) {
	const q = `
		INSERT INTO events (title, description, location, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, q,
		event.Title, event.Description, event.Location,
		event.StartTime, event.EndTime,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return id, nil
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	const q = `
		SELECT id, title, description, location, start_time, end_time
		FROM events
		ORDER BY start_time`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartTime, &e.EndTime); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// Update distinguishes "no such row" from a store failure: zero rows
// affected maps to domain.ErrEventNotFound.
func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	const q = `
		UPDATE events
		SET title = $1, description = $2, location = $3, start_time = $4, end_time = $5
		WHERE id = $6`

	tag, err := r.pool.Exec(ctx, q,
		event.Title, event.Description, event.Location,
		event.StartTime, event.EndTime, event.ID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
