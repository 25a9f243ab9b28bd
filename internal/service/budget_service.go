package service

import (
	"context"
	"time"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BudgetStore is the slice of the budget repository the service needs.
type BudgetStore interface {
	Create(ctx context.Context, b *models.Budget) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error)
	GetByWeddingID(ctx context.Context, weddingID uuid.UUID) (*models.Budget, error)
	Update(ctx context.Context, b *models.Budget, replaceAllocations bool) error
}

// ExpenseStore is the slice of the expense repository the service needs.
type ExpenseStore interface {
	Create(ctx context.Context, e *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*models.Expense, error)
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BudgetService struct {
	budgets  BudgetStore
	expenses ExpenseStore
	weddings WeddingGetter
	logger   *zap.Logger
}

func NewBudgetService(budgets BudgetStore, expenses ExpenseStore, weddings WeddingGetter, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgets:  budgets,
		expenses: expenses,
		weddings: weddings,
		logger:   logger,
	}
}

// CreateBudget creates the single budget for a wedding. Budgets are never
// auto-created; this is the only entry point.
func (s *BudgetService) CreateBudget(ctx context.Context, userID, weddingID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}

	if existing, _ := s.budgets.GetByWeddingID(ctx, weddingID); existing != nil {
		return nil, ErrBudgetExists
	}

	allocations := req.Allocations
	if allocations == nil {
		allocations = make(map[string]float64)
	}

	now := time.Now()
	budget := &models.Budget{
		ID:          uuid.New(),
		WeddingID:   weddingID,
		TotalAmount: req.TotalAmount,
		Allocations: allocations,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.budgets.Create(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

func (s *BudgetService) GetBudget(ctx context.Context, userID, weddingID uuid.UUID) (*models.Budget, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}

	budget, err := s.budgets.GetByWeddingID(ctx, weddingID)
	if err != nil {
		return nil, ErrNotFound
	}
	return budget, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.ownedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.TotalAmount != nil {
		budget.TotalAmount = *req.TotalAmount
	}
	replaceAllocations := req.Allocations != nil
	if replaceAllocations {
		budget.Allocations = req.Allocations
	}
	budget.UpdatedAt = time.Now()

	if err := s.budgets.Update(ctx, budget, replaceAllocations); err != nil {
		return nil, err
	}

	return budget, nil
}

// CreateExpense records a user-entered expense against a budget. Amounts are
// deliberately unvalidated; zero and negative values pass through.
func (s *BudgetService) CreateExpense(ctx context.Context, userID, budgetID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	budget, err := s.ownedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	var vendorID *uuid.UUID
	if req.VendorID != nil {
		id, err := uuid.Parse(*req.VendorID)
		if err != nil {
			return nil, ErrNotFound
		}
		vendorID = &id
	}

	now := time.Now()
	expense := &models.Expense{
		ID:          uuid.New(),
		BudgetID:    budget.ID,
		VendorID:    vendorID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      models.ExpenseStatusPending,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.applyPaymentFields(expense, req.PaidAmount, req.Status, now)

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// UpdateExpense applies a partial update: only non-nil fields mutate state.
func (s *BudgetService) UpdateExpense(ctx context.Context, userID, expenseID uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, expenseID)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := s.ownedBudget(ctx, userID, expense.BudgetID); err != nil {
		return nil, err
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.DueDate != nil {
		expense.DueDate = req.DueDate
	}

	now := time.Now()
	s.applyPaymentFields(expense, req.PaidAmount, req.Status, now)
	expense.UpdatedAt = now

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *BudgetService) DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) error {
	expense, err := s.expenses.GetByID(ctx, expenseID)
	if err != nil {
		return ErrNotFound
	}
	if _, err := s.ownedBudget(ctx, userID, expense.BudgetID); err != nil {
		return err
	}
	return s.expenses.Delete(ctx, expenseID)
}

func (s *BudgetService) ListExpenses(ctx context.Context, userID, budgetID uuid.UUID) ([]*models.Expense, error) {
	budget, err := s.ownedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	return s.expenses.ListByBudget(ctx, budget.ID)
}

// Summarize computes the aggregate spend figures for a budget. It is pure
// with respect to stored state: no writes, identical output for identical
// input.
func (s *BudgetService) Summarize(ctx context.Context, userID, budgetID uuid.UUID) (*models.BudgetSummary, error) {
	budget, err := s.ownedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.ListByBudget(ctx, budget.ID)
	if err != nil {
		return nil, err
	}

	return summarize(budget, expenses), nil
}

// applyPaymentFields applies paidAmount and status in the documented order:
// paidAmount first, deriving a status from the paid/total ratio, then the
// explicit status, which overrides the derived one and its side effects.
func (s *BudgetService) applyPaymentFields(e *models.Expense, paidAmount *float64, status *string, now time.Time) {
	if paidAmount != nil && status != nil {
		s.logger.Warn("Both status and paid_amount supplied; explicit status wins",
			zap.String("expense_id", e.ID.String()),
			zap.String("status", *status),
			zap.Float64("paid_amount", *paidAmount),
		)
	}

	if paidAmount != nil {
		switch pa := *paidAmount; {
		case pa >= e.Amount:
			e.Status = models.ExpenseStatusPaid
			e.PaidAmount = e.Amount
			e.PaidAt = &now
		case pa > 0:
			e.Status = models.ExpenseStatusPartial
			e.PaidAmount = pa
		default:
			e.Status = models.ExpenseStatusPending
			e.PaidAmount = 0
			e.PaidAt = nil
		}
	}

	if status != nil {
		switch models.ExpenseStatus(*status) {
		case models.ExpenseStatusPaid:
			e.Status = models.ExpenseStatusPaid
			e.PaidAmount = e.Amount
			e.PaidAt = &now
		case models.ExpenseStatusPending:
			e.Status = models.ExpenseStatusPending
			e.PaidAmount = 0
			e.PaidAt = nil
		case models.ExpenseStatusPartial:
			// paidAmount keeps whatever value was set above (or before)
			e.Status = models.ExpenseStatusPartial
		}
	}
}

func summarize(budget *models.Budget, expenses []*models.Expense) *models.BudgetSummary {
	summary := &models.BudgetSummary{
		TotalBudget:       budget.TotalAmount,
		Allocations:       budget.Allocations,
		SpentByCategory:   make(map[string]float64),
		PendingByCategory: make(map[string]float64),
	}

	for _, e := range expenses {
		var effectivePaid float64
		switch e.Status {
		case models.ExpenseStatusPaid:
			effectivePaid = e.Amount
		case models.ExpenseStatusPartial:
			effectivePaid = e.PaidAmount
		}

		summary.TotalSpent += e.Amount
		summary.TotalPaid += effectivePaid
		summary.TotalPending += e.Amount - effectivePaid
		summary.SpentByCategory[e.Category] += e.Amount
		summary.PendingByCategory[e.Category] += e.Amount - effectivePaid
	}

	summary.RemainingBudget = summary.TotalBudget - summary.TotalSpent
	return summary
}

func (s *BudgetService) ownedBudget(ctx context.Context, userID, budgetID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := ensureWeddingOwner(ctx, s.weddings, budget.WeddingID, userID); err != nil {
		return nil, err
	}
	return budget, nil
}
