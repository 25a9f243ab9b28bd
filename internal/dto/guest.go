package dto

type CreateGuestRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Group        string `json:"group"`
	PlusOne      bool   `json:"plus_one"`
	DietaryNotes string `json:"dietary_notes"`
}

// UpdateGuestRequest applies PATCH semantics: only non-nil fields mutate the
// guest.
type UpdateGuestRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Group        *string `json:"group"`
	PlusOne      *bool   `json:"plus_one"`
	DietaryNotes *string `json:"dietary_notes"`
}

type UpdateRSVPRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted declined"`
}

type GuestResponse struct {
	ID           string `json:"id"`
	WeddingID    string `json:"wedding_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Group        string `json:"group"`
	RSVPStatus   string `json:"rsvp_status"`
	PlusOne      bool   `json:"plus_one"`
	DietaryNotes string `json:"dietary_notes"`
	TableID      string `json:"table_id,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
