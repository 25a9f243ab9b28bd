package dto

import "time"

type CreateBudgetRequest struct {
	TotalAmount float64            `json:"total_amount"`
	Allocations map[string]float64 `json:"allocations"`
}

// UpdateBudgetRequest applies PATCH semantics: a nil Allocations leaves the
// existing allocations untouched, an empty map clears them.
type UpdateBudgetRequest struct {
	TotalAmount *float64           `json:"total_amount"`
	Allocations map[string]float64 `json:"allocations"`
}

type BudgetResponse struct {
	ID          string             `json:"id"`
	WeddingID   string             `json:"wedding_id"`
	TotalAmount float64            `json:"total_amount"`
	Allocations map[string]float64 `json:"allocations"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

type BudgetSummaryResponse struct {
	TotalBudget       float64            `json:"total_budget"`
	TotalSpent        float64            `json:"total_spent"`
	TotalPaid         float64            `json:"total_paid"`
	TotalPending      float64            `json:"total_pending"`
	RemainingBudget   float64            `json:"remaining_budget"`
	Allocations       map[string]float64 `json:"allocations"`
	SpentByCategory   map[string]float64 `json:"spent_by_category"`
	PendingByCategory map[string]float64 `json:"pending_by_category"`
}

type CreateExpenseRequest struct {
	Category    string     `json:"category" validate:"required"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      *string    `json:"status"`
	PaidAmount  *float64   `json:"paid_amount"`
	VendorID    *string    `json:"vendor_id"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateExpenseRequest applies PATCH semantics: only non-nil fields mutate
// the expense. When both Status and PaidAmount are supplied, PaidAmount is
// applied first and the explicit Status then overrides the derived one.
type UpdateExpenseRequest struct {
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount"`
	Status      *string    `json:"status"`
	PaidAmount  *float64   `json:"paid_amount"`
	DueDate     *time.Time `json:"due_date"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	BudgetID    string  `json:"budget_id"`
	VendorID    string  `json:"vendor_id,omitempty"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	PaidAmount  float64 `json:"paid_amount"`
	PaidAt      string  `json:"paid_at,omitempty"`
	DueDate     string  `json:"due_date,omitempty"`
	Type        string  `json:"type,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
