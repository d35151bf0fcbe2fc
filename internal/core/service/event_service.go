package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

type eventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventService returns an EventService over the given repository.
func NewEventService(repo ports.EventRepository, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, log: log}
}

func (s *eventService) Create(ctx context.Context, in ports.EventInput) (int64, error) {
	event, err := buildEvent(0, in)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, event)
	if err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}

	s.log.Info().Int64("event_id", id).Str("title", event.Title).Msg("event created")
	return id, nil
}

func (s *eventService) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, id int64, in ports.EventInput) error {
	event, err := buildEvent(id, in)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	s.log.Info().Int64("event_id", id).Msg("event updated")
	return nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.Info().Int64("event_id", id).Msg("event deleted")
	return nil
}

// buildEvent assembles and validates an event from transport input.
func buildEvent(id int64, in ports.EventInput) (*domain.Event, error) {
	event := &domain.Event{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		StartTime:   in.StartTime.UTC(),
		EndTime:     in.EndTime.UTC(),
	}
	if err := event.ValidateTimes(); err != nil {
		return nil, err
	}
	return event, nil
}
