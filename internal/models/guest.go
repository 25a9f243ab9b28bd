package models

import (
	"time"

	"github.com/google/uuid"
)

type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

type GuestGroup string

const (
	GuestGroupFamily  GuestGroup = "family"
	GuestGroupFriends GuestGroup = "friends"
	GuestGroupWork    GuestGroup = "work"
	GuestGroupOther   GuestGroup = "other"
)

type Guest struct {
	ID           uuid.UUID  `db:"id"`
	WeddingID    uuid.UUID  `db:"wedding_id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Phone        string     `db:"phone"`
	Group        GuestGroup `db:"group_name"`
	RSVPStatus   RSVPStatus `db:"rsvp_status"`
	PlusOne      bool       `db:"plus_one"`
	DietaryNotes string     `db:"dietary_notes"`
	TableID      *uuid.UUID `db:"table_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}
