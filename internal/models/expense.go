package models

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseStatus string

const (
	ExpenseStatusPending ExpenseStatus = "pending"
	ExpenseStatusPartial ExpenseStatus = "partial"
	ExpenseStatusPaid    ExpenseStatus = "paid"
)

// Expense type tags for vendor-derived line items.
const (
	ExpenseTypeVendorDeposit = "vendor_deposit"
	ExpenseTypeVendorTotal   = "vendor_total"
)

// Expense is a single billable line item against a budget. VendorID is set
// only on vendor-derived expenses (see the vendor expense synchronizer).
type Expense struct {
	ID          uuid.UUID     `db:"id"`
	BudgetID    uuid.UUID     `db:"budget_id"`
	VendorID    *uuid.UUID    `db:"vendor_id"`
	Category    string        `db:"category"`
	Description string        `db:"description"`
	Amount      float64       `db:"amount"`
	Status      ExpenseStatus `db:"status"`
	PaidAmount  float64       `db:"paid_amount"`
	PaidAt      *time.Time    `db:"paid_at"`
	DueDate     *time.Time    `db:"due_date"`
	Type        string        `db:"type"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}
