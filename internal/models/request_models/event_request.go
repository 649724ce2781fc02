package request_models

import "time"

type CreateEventRequest struct {
	Name     string     `json:"name" binding:"required"`
	Type     string     `json:"type" binding:"required"`
	Location string     `json:"location"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

type UpdateEventRequest struct {
	Name     *string    `json:"name"`
	Type     *string    `json:"type"`
	Status   *string    `json:"status"`
	Location *string    `json:"location"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

// UpsertScheduleRequest replaces the whole nested subtree on update.
type UpsertScheduleRequest struct {
	Name   string         `json:"name" binding:"required"`
	Date   *time.Time     `json:"date"`
	Shifts []ShiftRequest `json:"shifts"`
}

type ShiftRequest struct {
	Name      string            `json:"name" binding:"required"`
	Timelines []TimelineRequest `json:"timelines"`
}

type TimelineRequest struct {
	Name     string     `json:"name" binding:"required"`
	NameKh   string     `json:"name_kh"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Position int        `json:"position"`
}
