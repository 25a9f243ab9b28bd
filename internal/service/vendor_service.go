package service

import (
	"context"
	"fmt"
	"time"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"
	"aisleplan/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VendorStore is the slice of the vendor repository the service needs.
type VendorStore interface {
	Create(ctx context.Context, v *models.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Vendor, error)
	Update(ctx context.Context, v *models.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VendorExpenseStore is the expense-side surface the synchronizer needs. The
// replace runs delete-old plus insert-new in one transaction so readers never
// see a half-synchronized vendor.
type VendorExpenseStore interface {
	ReplaceForVendor(ctx context.Context, vendorID uuid.UUID, expenses []*models.Expense) error
}

// BudgetGetter is the slice of the budget repository the service needs.
type BudgetGetter interface {
	GetByWeddingID(ctx context.Context, weddingID uuid.UUID) (*models.Budget, error)
}

type VendorService struct {
	vendors  VendorStore
	expenses VendorExpenseStore
	budgets  BudgetGetter
	weddings WeddingGetter
	logger   *zap.Logger
}

func NewVendorService(vendors VendorStore, expenses VendorExpenseStore, budgets BudgetGetter, weddings WeddingGetter, logger *zap.Logger) *VendorService {
	return &VendorService{
		vendors:  vendors,
		expenses: expenses,
		budgets:  budgets,
		weddings: weddings,
		logger:   logger,
	}
}

func (s *VendorService) CreateVendor(ctx context.Context, userID, weddingID uuid.UUID, req *dto.CreateVendorRequest) (*models.Vendor, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	vendor := &models.Vendor{
		ID:             uuid.New(),
		WeddingID:      weddingID,
		Name:           req.Name,
		Company:        req.Company,
		Type:           defaultString(req.Type, "other"),
		Status:         models.VendorStatus(defaultString(req.Status, string(models.VendorStatusPending))),
		Email:          req.Email,
		Phone:          req.Phone,
		Website:        req.Website,
		Price:          req.Price,
		DepositAmount:  req.DepositAmount,
		DepositPaid:    req.DepositPaid,
		ContractSigned: req.ContractSigned,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.vendors.Create(ctx, vendor); err != nil {
		return nil, err
	}

	if err := s.resyncIfPriced(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

func (s *VendorService) GetVendor(ctx context.Context, userID, vendorID uuid.UUID) (*models.Vendor, error) {
	return s.ownedVendor(ctx, userID, vendorID)
}

func (s *VendorService) ListVendors(ctx context.Context, userID, weddingID uuid.UUID) ([]*models.Vendor, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}
	return s.vendors.ListByWedding(ctx, weddingID)
}

// UpdateVendor applies a partial update, then resynchronizes the vendor's
// derived expenses when the vendor carries pricing and a budget exists.
func (s *VendorService) UpdateVendor(ctx context.Context, userID, vendorID uuid.UUID, req *dto.UpdateVendorRequest) (*models.Vendor, error) {
	vendor, err := s.ownedVendor(ctx, userID, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Company != nil {
		vendor.Company = *req.Company
	}
	if req.Type != nil {
		vendor.Type = *req.Type
	}
	if req.Status != nil {
		vendor.Status = models.VendorStatus(*req.Status)
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Website != nil {
		vendor.Website = *req.Website
	}
	if req.Price != nil {
		vendor.Price = req.Price
	}
	if req.DepositAmount != nil {
		vendor.DepositAmount = req.DepositAmount
	}
	if req.DepositPaid != nil {
		vendor.DepositPaid = *req.DepositPaid
	}
	if req.ContractSigned != nil {
		vendor.ContractSigned = *req.ContractSigned
	}
	if req.Notes != nil {
		vendor.Notes = *req.Notes
	}
	vendor.UpdatedAt = time.Now()

	if err := s.vendors.Update(ctx, vendor); err != nil {
		return nil, err
	}

	if err := s.resyncIfPriced(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

func (s *VendorService) DeleteVendor(ctx context.Context, userID, vendorID uuid.UUID) error {
	if _, err := s.ownedVendor(ctx, userID, vendorID); err != nil {
		return err
	}
	// Expenses derived from the vendor survive deletion; their vendor
	// reference is nulled by the schema.
	return s.vendors.Delete(ctx, vendorID)
}

// SyncVendorExpenses derives the vendor's expense line items and replaces any
// previously derived ones. The wedding must have a budget: a nil budget is a
// precondition violation surfaced as ErrNoBudget, never silently skipped.
//
// Full-replace semantics: the desired expense set is computed from the
// vendor's current pricing fields and swapped in atomically; there is no
// diffing against the old rows. Returns the last created expense, or nil when
// the vendor carries nothing billable, which is a valid outcome.
func (s *VendorService) SyncVendorExpenses(ctx context.Context, vendor *models.Vendor, budget *models.Budget) (*models.Expense, error) {
	if budget == nil {
		return nil, fmt.Errorf("sync expenses for vendor %s: %w", vendor.ID, ErrNoBudget)
	}

	expenses := buildVendorExpenses(vendor, budget.ID, time.Now())

	if err := s.expenses.ReplaceForVendor(ctx, vendor.ID, expenses); err != nil {
		return nil, err
	}

	s.logger.Info("Vendor expenses synchronized",
		zap.String("vendor_id", vendor.ID.String()),
		zap.Int("expense_count", len(expenses)),
	)

	if len(expenses) == 0 {
		return nil, nil
	}
	return expenses[len(expenses)-1], nil
}

// buildVendorExpenses computes the desired expense set for a vendor: a
// deposit line when a deposit is set, and a remaining-balance line for the
// rest of the price. Deposit paid means the deposit line is born paid and the
// deposit no longer counts toward the remaining balance.
func buildVendorExpenses(vendor *models.Vendor, budgetID uuid.UUID, now time.Time) []*models.Expense {
	var total, deposit float64
	if vendor.Price != nil {
		total = *vendor.Price
	}
	if vendor.DepositAmount != nil {
		deposit = *vendor.DepositAmount
	}

	var expenses []*models.Expense

	if deposit > 0 {
		e := &models.Expense{
			ID:          uuid.New(),
			BudgetID:    budgetID,
			VendorID:    &vendor.ID,
			Category:    vendor.Type,
			Description: vendor.Name + " - Deposit",
			Amount:      deposit,
			Status:      models.ExpenseStatusPending,
			Type:        models.ExpenseTypeVendorDeposit,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if vendor.DepositPaid {
			e.Status = models.ExpenseStatusPaid
			e.PaidAmount = deposit
			e.PaidAt = &now
		}
		expenses = append(expenses, e)
	}

	remaining := total
	if vendor.DepositPaid {
		remaining = total - deposit
	}
	if remaining > 0 {
		expenses = append(expenses, &models.Expense{
			ID:          uuid.New(),
			BudgetID:    budgetID,
			VendorID:    &vendor.ID,
			Category:    vendor.Type,
			Description: vendor.Name + " - Remaining Balance",
			Amount:      remaining,
			Status:      models.ExpenseStatusPending,
			Type:        models.ExpenseTypeVendorTotal,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return expenses
}

// resyncIfPriced runs the synchronizer after a vendor write when the vendor
// carries pricing and the wedding has a budget. No budget means nothing to
// sync; the precondition check belongs here, on the calling side. Only a
// missing budget is skippable: a failing budget lookup propagates, otherwise
// the vendor write would quietly leave stale derived expenses behind.
func (s *VendorService) resyncIfPriced(ctx context.Context, vendor *models.Vendor) error {
	if !vendor.Priced() {
		return nil
	}

	budget, err := s.budgets.GetByWeddingID(ctx, vendor.WeddingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("look up budget for wedding %s: %w", vendor.WeddingID, err)
	}
	if budget == nil {
		return nil
	}

	_, err = s.SyncVendorExpenses(ctx, vendor, budget)
	return err
}

func (s *VendorService) ownedVendor(ctx context.Context, userID, vendorID uuid.UUID) (*models.Vendor, error) {
	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := ensureWeddingOwner(ctx, s.weddings, vendor.WeddingID, userID); err != nil {
		return nil, err
	}
	return vendor, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
