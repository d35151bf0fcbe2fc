package domain

import (
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("event not found")
var ErrInvalidEventTimes = errors.New("event end time must be after start time")

// Event is a calendar entry managed through the event CRUD endpoints.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
}

// ValidateTimes enforces the strictly-after invariant on the event window.
func (e Event) ValidateTimes() error {
	if !e.EndTime.After(e.StartTime) {
		return ErrInvalidEventTimes
	}
	return nil
}
