package models

import (
	"time"

	"github.com/google/uuid"
)

type TimelineEvent struct {
	ID          uuid.UUID  `db:"id"`
	WeddingID   uuid.UUID  `db:"wedding_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	StartsAt    time.Time  `db:"starts_at"`
	EndsAt      *time.Time `db:"ends_at"`
	Location    string     `db:"location"`
	SortOrder   int        `db:"sort_order"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
