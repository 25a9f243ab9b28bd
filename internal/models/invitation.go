package models

import (
	"time"

	"github.com/google/uuid"
)

type InvitationChannel string

const (
	InvitationChannelEmail InvitationChannel = "email"
	InvitationChannelLink  InvitationChannel = "link"
)

type InvitationStatus string

const (
	InvitationStatusDraft     InvitationStatus = "draft"
	InvitationStatusSent      InvitationStatus = "sent"
	InvitationStatusOpened    InvitationStatus = "opened"
	InvitationStatusResponded InvitationStatus = "responded"
)

// Invitation links a guest to a shareable RSVP token. Actual delivery is
// handled outside this service; Send only transitions status and stamps
// SentAt.
type Invitation struct {
	ID          uuid.UUID         `db:"id"`
	WeddingID   uuid.UUID         `db:"wedding_id"`
	GuestID     uuid.UUID         `db:"guest_id"`
	Channel     InvitationChannel `db:"channel"`
	Token       string            `db:"token"`
	Status      InvitationStatus  `db:"status"`
	SentAt      *time.Time        `db:"sent_at"`
	RespondedAt *time.Time        `db:"responded_at"`
	RSVPAnswer  *string           `db:"rsvp_answer"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}
