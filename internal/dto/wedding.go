package dto

import "time"

type CreateWeddingRequest struct {
	Title         string     `json:"title" validate:"required"`
	PartnerOne    string     `json:"partner_one"`
	PartnerTwo    string     `json:"partner_two"`
	Date          *time.Time `json:"date"`
	Venue         string     `json:"venue"`
	City          string     `json:"city"`
	GuestEstimate int        `json:"guest_estimate"`
	Notes         string     `json:"notes"`
}

// UpdateWeddingRequest applies PATCH semantics: only non-nil fields mutate
// the wedding.
type UpdateWeddingRequest struct {
	Title         *string    `json:"title"`
	PartnerOne    *string    `json:"partner_one"`
	PartnerTwo    *string    `json:"partner_two"`
	Date          *time.Time `json:"date"`
	Venue         *string    `json:"venue"`
	City          *string    `json:"city"`
	GuestEstimate *int       `json:"guest_estimate"`
	Notes         *string    `json:"notes"`
}

type WeddingResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	PartnerOne    string `json:"partner_one"`
	PartnerTwo    string `json:"partner_two"`
	Date          string `json:"date,omitempty"`
	Venue         string `json:"venue"`
	City          string `json:"city"`
	GuestEstimate int    `json:"guest_estimate"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
