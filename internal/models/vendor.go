package models

import (
	"time"

	"github.com/google/uuid"
)

type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "pending"
	VendorStatusContacted VendorStatus = "contacted"
	VendorStatusBooked    VendorStatus = "booked"
	VendorStatusRejected  VendorStatus = "rejected"
)

type Vendor struct {
	ID             uuid.UUID    `db:"id"`
	WeddingID      uuid.UUID    `db:"wedding_id"`
	Name           string       `db:"name"`
	Company        string       `db:"company"`
	Type           string       `db:"type"`
	Status         VendorStatus `db:"status"`
	Email          string       `db:"email"`
	Phone          string       `db:"phone"`
	Website        string       `db:"website"`
	Price          *float64     `db:"price"`
	DepositAmount  *float64     `db:"deposit_amount"`
	DepositPaid    bool         `db:"deposit_paid"`
	ContractSigned bool         `db:"contract_signed"`
	Notes          string       `db:"notes"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

// Priced reports whether the vendor carries any pricing information that
// should be reflected in the wedding budget.
func (v *Vendor) Priced() bool {
	return v.Price != nil || v.DepositAmount != nil
}
