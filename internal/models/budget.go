package models

import (
	"time"

	"github.com/google/uuid"
)

// Budget is the per-wedding spending container. At most one exists per
// wedding; it is created explicitly, never derived.
type Budget struct {
	ID          uuid.UUID `db:"id"`
	WeddingID   uuid.UUID `db:"wedding_id"`
	TotalAmount float64   `db:"total_amount"`
	// Allocations maps a category name to its allocated amount.
	Allocations map[string]float64
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// BudgetSummary is the aggregate view over all expenses of a budget.
type BudgetSummary struct {
	TotalBudget       float64
	TotalSpent        float64
	TotalPaid         float64
	TotalPending      float64
	RemainingBudget   float64
	Allocations       map[string]float64
	SpentByCategory   map[string]float64
	PendingByCategory map[string]float64
}
