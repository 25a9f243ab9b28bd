package service

import (
	"context"
	"reflect"
	"testing"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func newBudgetFixture(t *testing.T) (*BudgetService, *fakeBudgetStore, *fakeExpenseStore, uuid.UUID, *models.Budget) {
	t.Helper()

	weddings := newFakeWeddingStore()
	budgets := newFakeBudgetStore()
	expenses := newFakeExpenseStore()
	userID, weddingID := seedWedding(weddings)

	svc := NewBudgetService(budgets, expenses, weddings, testLogger())

	budget, err := svc.CreateBudget(context.Background(), userID, weddingID, &dto.CreateBudgetRequest{
		TotalAmount: 5000,
		Allocations: map[string]float64{"catering": 2000, "venue": 1500},
	})
	if err != nil {
		t.Fatalf("CreateBudget: %v", err)
	}
	return svc, budgets, expenses, userID, budget
}

func TestCreateBudget_SecondBudgetRejected(t *testing.T) {
	svc, _, _, userID, budget := newBudgetFixture(t)

	_, err := svc.CreateBudget(context.Background(), userID, budget.WeddingID, &dto.CreateBudgetRequest{TotalAmount: 100})
	if err != ErrBudgetExists {
		t.Fatalf("expected ErrBudgetExists, got %v", err)
	}
}

func TestSummarize_Aggregation(t *testing.T) {
	svc, _, _, userID, budget := newBudgetFixture(t)
	ctx := context.Background()

	// 1000 paid, 500 with 200 paid, 300 untouched.
	if _, err := svc.CreateExpense(ctx, userID, budget.ID, &dto.CreateExpenseRequest{
		Category: "venue", Amount: 1000, Status: strPtr("paid"),
	}); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}
	if _, err := svc.CreateExpense(ctx, userID, budget.ID, &dto.CreateExpenseRequest{
		Category: "catering", Amount: 500, PaidAmount: floatPtr(200),
	}); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}
	if _, err := svc.CreateExpense(ctx, userID, budget.ID, &dto.CreateExpenseRequest{
		Category: "catering", Amount: 300,
	}); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	summary, err := svc.Summarize(ctx, userID, budget.ID)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if summary.TotalBudget != 5000 {
		t.Errorf("TotalBudget = %v, want 5000", summary.TotalBudget)
	}
	if summary.TotalSpent != 1800 {
		t.Errorf("TotalSpent = %v, want 1800", summary.TotalSpent)
	}
	if summary.TotalPaid != 1200 {
		t.Errorf("TotalPaid = %v, want 1200", summary.TotalPaid)
	}
	if summary.TotalPending != 600 {
		t.Errorf("TotalPending = %v, want 600", summary.TotalPending)
	}
	if summary.RemainingBudget != 3200 {
		t.Errorf("RemainingBudget = %v, want 3200", summary.RemainingBudget)
	}
	if got := summary.SpentByCategory["catering"]; got != 800 {
		t.Errorf("SpentByCategory[catering] = %v, want 800", got)
	}
	if got := summary.PendingByCategory["catering"]; got != 600 {
		t.Errorf("PendingByCategory[catering] = %v, want 600", got)
	}
	if got := summary.PendingByCategory["venue"]; got != 0 {
		t.Errorf("PendingByCategory[venue] = %v, want 0", got)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	svc, _, _, userID, budget := newBudgetFixture(t)
	ctx := context.Background()

	if _, err := svc.CreateExpense(ctx, userID, budget.ID, &dto.CreateExpenseRequest{
		Category: "flowers", Amount: 400, PaidAmount: floatPtr(150),
	}); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	first, err := svc.Summarize(ctx, userID, budget.ID)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	second, err := svc.Summarize(ctx, userID, budget.ID)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated summaries differ: %+v vs %+v", first, second)
	}
}

func TestCreateExpense_PaidAmountDerivesStatus(t *testing.T) {
	svc, _, _, userID, budget := newBudgetFixture(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		amount     float64
		paidAmount float64
		wantStatus models.ExpenseStatus
		wantPaid   float64
		wantPaidAt bool
	}{
		{"full payment", 100, 100, models.ExpenseStatusPaid, 100, true},
		{"overpayment clamps", 100, 150, models.ExpenseStatusPaid, 100, true},
		{"partial payment", 100, 40, models.ExpenseStatusPartial, 40, false},
		{"zero payment", 100, 0, models.ExpenseStatusPending, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := svc.CreateExpense(ctx, userID, budget.ID, &dto.CreateExpenseRequest{
				Category: "misc", Amount: tt.amount, PaidAmount: floatPtr(tt.paidAmount),
			})
			if err != nil {
				t.Fatalf("CreateExpense: %v", err)
			}
			if e.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", e.Status, tt.wantStatus)
			}
			if e.PaidAmount != tt.wantPaid {
				t.Errorf("PaidAmount = %v, want %v", e.PaidAmount, tt.wantPaid)
			}
			if (e.PaidAt != nil) != tt.wantPaidAt {
				t.Errorf("PaidAt set = %v, want %v", e.PaidAt != nil, tt.wantPaidAt)
			}
		})
	}
}

func TestCreateExpense_ExplicitStatusOverridesPaidAmount(t *testing.T) {
	svc, _, _, userID, budget := newBudgetFixture(t)

	e, err := svc.CreateExpense(context.Background(), userID, budget.ID, &dto.CreateExpenseRequest{
		Category:   "venue",
		Amount:     100,
		Status:     strPtr("paid"),
		PaidAmount: floatPtr(30),
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	if e.Status != models.ExpenseStatusPaid {
		t.Errorf("Status = %q, want paid", e.Status)
	}
	if e.PaidAmount != 100 {
		t.Errorf("PaidAmount = %v, want full amount 100", e.PaidAmount)
	}
	if e.PaidAt == nil {
		t.Error("PaidAt not set on paid expense")
	}
}

func TestUpdateExpense_PartialApplication(t *testing.T) {
	svc, _, _, userID, budget := newBudgetFixture(t)
	ctx := context.Background()

	e, err := svc.CreateExpense(ctx, userID, budget.ID, &dto.CreateExpenseRequest{
		Category: "venue", Description: "hall rental", Amount: 1000,
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	updated, err := svc.UpdateExpense(ctx, userID, e.ID, &dto.UpdateExpenseRequest{
		Amount: floatPtr(1200),
	})
	if err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}

	if updated.Amount != 1200 {
		t.Errorf("Amount = %v, want 1200", updated.Amount)
	}
	if updated.Description != "hall rental" {
		t.Errorf("Description = %q, changed by unrelated update", updated.Description)
	}
	if updated.Category != "venue" {
		t.Errorf("Category = %q, changed by unrelated update", updated.Category)
	}
	if updated.Status != models.ExpenseStatusPending {
		t.Errorf("Status = %q, changed by unrelated update", updated.Status)
	}
}

func TestUpdateExpense_PendingResetsPayment(t *testing.T) {
	svc, _, _, userID, budget := newBudgetFixture(t)
	ctx := context.Background()

	e, err := svc.CreateExpense(ctx, userID, budget.ID, &dto.CreateExpenseRequest{
		Category: "venue", Amount: 500, Status: strPtr("paid"),
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	updated, err := svc.UpdateExpense(ctx, userID, e.ID, &dto.UpdateExpenseRequest{
		Status: strPtr("pending"),
	})
	if err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}

	if updated.Status != models.ExpenseStatusPending {
		t.Errorf("Status = %q, want pending", updated.Status)
	}
	if updated.PaidAmount != 0 {
		t.Errorf("PaidAmount = %v, want 0 after reset", updated.PaidAmount)
	}
	if updated.PaidAt != nil {
		t.Error("PaidAt still set after reset to pending")
	}
}

func TestBudgetOwnership(t *testing.T) {
	svc, _, _, _, budget := newBudgetFixture(t)

	stranger := uuid.New()
	if _, err := svc.Summarize(context.Background(), stranger, budget.ID); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}
