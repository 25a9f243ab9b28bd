package dto

type CreateVendorRequest struct {
	Name           string   `json:"name" validate:"required"`
	Company        string   `json:"company"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Website        string   `json:"website"`
	Price          *float64 `json:"price"`
	DepositAmount  *float64 `json:"deposit_amount"`
	DepositPaid    bool     `json:"deposit_paid"`
	ContractSigned bool     `json:"contract_signed"`
	Notes          string   `json:"notes"`
}

// UpdateVendorRequest applies PATCH semantics: only non-nil fields mutate the
// vendor. Price and DepositAmount stay nullable on the vendor itself, so a
// client clears them by sending an explicit zero.
type UpdateVendorRequest struct {
	Name           *string  `json:"name"`
	Company        *string  `json:"company"`
	Type           *string  `json:"type"`
	Status         *string  `json:"status"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Website        *string  `json:"website"`
	Price          *float64 `json:"price"`
	DepositAmount  *float64 `json:"deposit_amount"`
	DepositPaid    *bool    `json:"deposit_paid"`
	ContractSigned *bool    `json:"contract_signed"`
	Notes          *string  `json:"notes"`
}

type VendorResponse struct {
	ID             string   `json:"id"`
	WeddingID      string   `json:"wedding_id"`
	Name           string   `json:"name"`
	Company        string   `json:"company"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Website        string   `json:"website"`
	Price          *float64 `json:"price"`
	DepositAmount  *float64 `json:"deposit_amount"`
	DepositPaid    bool     `json:"deposit_paid"`
	ContractSigned bool     `json:"contract_signed"`
	Notes          string   `json:"notes"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}
