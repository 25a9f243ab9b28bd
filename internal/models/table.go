package models

import (
	"time"

	"github.com/google/uuid"
)

type TableShape string

const (
	TableShapeRound       TableShape = "round"
	TableShapeRectangular TableShape = "rectangular"
	TableShapeOval        TableShape = "oval"
)

// Table is a reception table. Invariant: the number of guests assigned to a
// table never exceeds Capacity.
type Table struct {
	ID          uuid.UUID  `db:"id"`
	WeddingID   uuid.UUID  `db:"wedding_id"`
	Name        string     `db:"name"`
	Capacity    int        `db:"capacity"`
	MinCapacity int        `db:"min_capacity"`
	Shape       TableShape `db:"shape"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
