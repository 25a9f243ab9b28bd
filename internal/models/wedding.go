package models

import (
	"time"

	"github.com/google/uuid"
)

type Wedding struct {
	ID            uuid.UUID  `db:"id"`
	OwnerID       uuid.UUID  `db:"owner_id"`
	Title         string     `db:"title"`
	PartnerOne    string     `db:"partner_one"`
	PartnerTwo    string     `db:"partner_two"`
	Date          *time.Time `db:"date"`
	Venue         string     `db:"venue"`
	City          string     `db:"city"`
	GuestEstimate int        `db:"guest_estimate"`
	Notes         string     `db:"notes"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}
