package dto

import "time"

type CreateTimelineEventRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at"`
	Location    string     `json:"location"`
	SortOrder   int        `json:"sort_order"`
}

// UpdateTimelineEventRequest applies PATCH semantics: only non-nil fields
// mutate the event.
type UpdateTimelineEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Location    *string    `json:"location"`
	SortOrder   *int       `json:"sort_order"`
}

type TimelineEventResponse struct {
	ID          string `json:"id"`
	WeddingID   string `json:"wedding_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at,omitempty"`
	Location    string `json:"location"`
	SortOrder   int    `json:"sort_order"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
