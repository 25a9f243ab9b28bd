package dto

type CreateInvitationRequest struct {
	GuestID string `json:"guest_id" validate:"required"`
	Channel string `json:"channel"`
}

type RSVPByTokenRequest struct {
	Answer string `json:"answer" validate:"required,oneof=accepted declined"`
}

type InvitationResponse struct {
	ID          string `json:"id"`
	WeddingID   string `json:"wedding_id"`
	GuestID     string `json:"guest_id"`
	Channel     string `json:"channel"`
	Token       string `json:"token"`
	Status      string `json:"status"`
	SentAt      string `json:"sent_at,omitempty"`
	RespondedAt string `json:"responded_at,omitempty"`
	RSVPAnswer  string `json:"rsvp_answer,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
