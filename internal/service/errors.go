package service

import (
	"context"
	"errors"

	"aisleplan/internal/models"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("resource belongs to another user")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")

	// ErrBudgetExists is returned when a second budget is created for the
	// same wedding; the relation is strictly one-to-one.
	ErrBudgetExists = errors.New("wedding already has a budget")

	// ErrNoBudget means the vendor expense synchronizer was invoked for a
	// wedding without a budget. Callers are expected to check first, so
	// hitting this is a precondition violation, not a skippable condition.
	ErrNoBudget = errors.New("wedding has no budget")
)

// WeddingGetter is the slice of the wedding repository the ownership check
// needs.
type WeddingGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Wedding, error)
}

// ensureWeddingOwner loads the wedding and verifies it belongs to userID.
func ensureWeddingOwner(ctx context.Context, weddings WeddingGetter, weddingID, userID uuid.UUID) (*models.Wedding, error) {
	wedding, err := weddings.GetByID(ctx, weddingID)
	if err != nil {
		return nil, ErrNotFound
	}
	if wedding.OwnerID != userID {
		return nil, ErrForbidden
	}
	return wedding, nil
}
