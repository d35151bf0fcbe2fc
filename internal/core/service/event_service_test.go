package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

type stubEventRepo struct {
	events map[int64]domain.Event
	nextID int64
	err    error
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[int64]domain.Event), nextID: 1}
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	id := r.nextID
	r.nextID++
	stored := *e
	stored.ID = id
	r.events[id] = stored
	return id, nil
}

func (r *stubEventRepo) List(_ context.Context) ([]domain.Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *stubEventRepo) Update(_ context.Context, e *domain.Event) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.events[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	r.events[e.ID] = *e
	return nil
}

func (r *stubEventRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func validInput() ports.EventInput {
	start := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	return ports.EventInput{
		Title:       "Autumn showcase",
		Description: "New collection walkthrough",
		Location:    "Showroom 3",
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
	}
}

func TestEventService_CreateThenList_RoundTrip(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, zerolog.Nop())

	in := validInput()
	id, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero id")
	}

	events, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	got := events[0]
	if got.Title != in.Title || got.Description != in.Description || got.Location != in.Location {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if !got.StartTime.Equal(in.StartTime) || !got.EndTime.Equal(in.EndTime) {
		t.Fatalf("time round-trip mismatch: %+v", got)
	}
}

func TestEventService_Create_EndBeforeStart(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, zerolog.Nop())

	in := validInput()
	in.EndTime = in.StartTime.Add(-time.Hour)
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidEventTimes) {
		t.Fatalf("expected ErrInvalidEventTimes, got %v", err)
	}
	if len(repo.events) != 0 {
		t.Fatalf("store must not be touched on validation failure")
	}
}

func TestEventService_Create_EndEqualsStart(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), zerolog.Nop())

	in := validInput()
	in.EndTime = in.StartTime
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidEventTimes) {
		t.Fatalf("end == start must be rejected, got %v", err)
	}
}

func TestEventService_Update_NotFound(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), zerolog.Nop())

	if err := svc.Update(context.Background(), 99, validInput()); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventService_Update_InvalidTimes(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, zerolog.Nop())

	id, _ := svc.Create(context.Background(), validInput())

	in := validInput()
	in.EndTime = in.StartTime
	if err := svc.Update(context.Background(), id, in); !errors.Is(err, domain.ErrInvalidEventTimes) {
		t.Fatalf("expected ErrInvalidEventTimes, got %v", err)
	}
}

func TestEventService_Delete_NotFoundVsStoreError(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), 1); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}

	repo.err = errors.New("connection reset")
	err := svc.Delete(context.Background(), 1)
	if err == nil || errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("store error must not be reported as not-found, got %v", err)
	}
}
