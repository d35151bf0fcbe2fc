package handler

import "time"

type eventRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location"    validate:"required"`
	StartTime   time.Time `json:"startTime"   validate:"required"`
	EndTime     time.Time `json:"endTime"     validate:"required"`
}

type createEventResponse struct {
	ID int64 `json:"id"`
}

type updatedResponse struct {
	Message string `json:"message"`
}
