package dto

type CreateTableRequest struct {
	Name        string `json:"name" validate:"required"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	MinCapacity int    `json:"min_capacity"`
	Shape       string `json:"shape"`
}

// UpdateTableRequest applies PATCH semantics: only non-nil fields mutate the
// table.
type UpdateTableRequest struct {
	Name        *string `json:"name"`
	Capacity    *int    `json:"capacity"`
	MinCapacity *int    `json:"min_capacity"`
	Shape       *string `json:"shape"`
}

type AssignGuestsRequest struct {
	GuestIDs []string `json:"guest_ids"`
}

// SeatingValidationResponse is the structured outcome of a seating check.
// A failed validation is a normal response, not an error.
type SeatingValidationResponse struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

type TableResponse struct {
	ID          string          `json:"id"`
	WeddingID   string          `json:"wedding_id"`
	Name        string          `json:"name"`
	Capacity    int             `json:"capacity"`
	MinCapacity int             `json:"min_capacity"`
	Shape       string          `json:"shape"`
	Guests      []GuestResponse `json:"guests,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}
