package service

import (
	"context"
	"errors"
	"testing"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
)

func newVendorFixture(t *testing.T, withBudget bool) (*VendorService, *fakeExpenseStore, uuid.UUID, uuid.UUID) {
	t.Helper()

	weddings := newFakeWeddingStore()
	budgets := newFakeBudgetStore()
	expenses := newFakeExpenseStore()
	vendors := newFakeVendorStore()
	userID, weddingID := seedWedding(weddings)

	if withBudget {
		budgetID := uuid.New()
		budgets.budgets[budgetID] = &models.Budget{
			ID:          budgetID,
			WeddingID:   weddingID,
			TotalAmount: 10000,
		}
	}

	svc := NewVendorService(vendors, expenses, budgets, weddings, testLogger())
	return svc, expenses, userID, weddingID
}

func TestSyncVendorExpenses_DepositAndRemainder(t *testing.T) {
	svc, expenses, userID, weddingID := newVendorFixture(t, true)
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, userID, weddingID, &dto.CreateVendorRequest{
		Name:          "Bloom & Co",
		Type:          "florist",
		Price:         floatPtr(1000),
		DepositAmount: floatPtr(200),
		DepositPaid:   true,
	})
	if err != nil {
		t.Fatalf("CreateVendor: %v", err)
	}

	derived, err := expenses.ListByVendor(ctx, vendor.ID)
	if err != nil {
		t.Fatalf("ListByVendor: %v", err)
	}
	if len(derived) != 2 {
		t.Fatalf("derived expense count = %d, want 2", len(derived))
	}

	byType := make(map[string]*models.Expense)
	for _, e := range derived {
		byType[e.Type] = e
	}

	deposit := byType[models.ExpenseTypeVendorDeposit]
	if deposit == nil {
		t.Fatal("no deposit expense derived")
	}
	if deposit.Amount != 200 {
		t.Errorf("deposit Amount = %v, want 200", deposit.Amount)
	}
	if deposit.Status != models.ExpenseStatusPaid {
		t.Errorf("deposit Status = %q, want paid", deposit.Status)
	}
	if deposit.PaidAmount != 200 || deposit.PaidAt == nil {
		t.Errorf("deposit payment fields = (%v, %v), want (200, set)", deposit.PaidAmount, deposit.PaidAt)
	}
	if deposit.Description != "Bloom & Co - Deposit" {
		t.Errorf("deposit Description = %q", deposit.Description)
	}
	if deposit.Category != "florist" {
		t.Errorf("deposit Category = %q, want vendor type", deposit.Category)
	}

	remainder := byType[models.ExpenseTypeVendorTotal]
	if remainder == nil {
		t.Fatal("no remaining-balance expense derived")
	}
	if remainder.Amount != 800 {
		t.Errorf("remainder Amount = %v, want 800", remainder.Amount)
	}
	if remainder.Status != models.ExpenseStatusPending {
		t.Errorf("remainder Status = %q, want pending", remainder.Status)
	}
	if remainder.Description != "Bloom & Co - Remaining Balance" {
		t.Errorf("remainder Description = %q", remainder.Description)
	}
}

func TestSyncVendorExpenses_UnpaidDepositKeepsFullBalance(t *testing.T) {
	svc, expenses, userID, weddingID := newVendorFixture(t, true)
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, userID, weddingID, &dto.CreateVendorRequest{
		Name:          "Shutter Stories",
		Type:          "photographer",
		Price:         floatPtr(1500),
		DepositAmount: floatPtr(300),
	})
	if err != nil {
		t.Fatalf("CreateVendor: %v", err)
	}

	derived, _ := expenses.ListByVendor(ctx, vendor.ID)
	if len(derived) != 2 {
		t.Fatalf("derived expense count = %d, want 2", len(derived))
	}
	var total float64
	for _, e := range derived {
		if e.Status != models.ExpenseStatusPending {
			t.Errorf("expense %q Status = %q, want pending", e.Description, e.Status)
		}
		total += e.Amount
	}
	// Unpaid deposit does not reduce the remaining balance: 300 + 1500.
	if total != 1800 {
		t.Errorf("total derived amount = %v, want 1800", total)
	}
}

func TestSyncVendorExpenses_NoDeposit(t *testing.T) {
	svc, expenses, userID, weddingID := newVendorFixture(t, true)
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, userID, weddingID, &dto.CreateVendorRequest{
		Name:  "DJ Nova",
		Type:  "music",
		Price: floatPtr(500),
	})
	if err != nil {
		t.Fatalf("CreateVendor: %v", err)
	}

	derived, _ := expenses.ListByVendor(ctx, vendor.ID)
	if len(derived) != 1 {
		t.Fatalf("derived expense count = %d, want 1", len(derived))
	}
	if derived[0].Amount != 500 || derived[0].Status != models.ExpenseStatusPending {
		t.Errorf("expense = (%v, %q), want (500, pending)", derived[0].Amount, derived[0].Status)
	}
	if derived[0].Type != models.ExpenseTypeVendorTotal {
		t.Errorf("expense Type = %q, want vendor_total", derived[0].Type)
	}
}

func TestSyncVendorExpenses_FullReplace(t *testing.T) {
	svc, expenses, userID, weddingID := newVendorFixture(t, true)
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, userID, weddingID, &dto.CreateVendorRequest{
		Name:          "Grand Hall",
		Type:          "venue",
		Price:         floatPtr(4000),
		DepositAmount: floatPtr(1000),
	})
	if err != nil {
		t.Fatalf("CreateVendor: %v", err)
	}

	// Repriced update replaces the derived set instead of stacking new rows.
	if _, err := svc.UpdateVendor(ctx, userID, vendor.ID, &dto.UpdateVendorRequest{
		Price: floatPtr(4500),
	}); err != nil {
		t.Fatalf("UpdateVendor: %v", err)
	}
	if _, err := svc.UpdateVendor(ctx, userID, vendor.ID, &dto.UpdateVendorRequest{
		DepositPaid: boolPtr(true),
	}); err != nil {
		t.Fatalf("UpdateVendor: %v", err)
	}

	derived, _ := expenses.ListByVendor(ctx, vendor.ID)
	if len(derived) != 2 {
		t.Fatalf("derived expense count after resyncs = %d, want 2", len(derived))
	}
	var total float64
	for _, e := range derived {
		total += e.Amount
	}
	if total != 4500 {
		t.Errorf("total derived amount = %v, want 4500", total)
	}
}

func TestSyncVendorExpenses_NoBudget(t *testing.T) {
	svc, _, userID, weddingID := newVendorFixture(t, false)
	ctx := context.Background()

	// Vendor writes succeed without a budget; the sync is skipped.
	vendor, err := svc.CreateVendor(ctx, userID, weddingID, &dto.CreateVendorRequest{
		Name:  "Late Caterer",
		Price: floatPtr(900),
	})
	if err != nil {
		t.Fatalf("CreateVendor: %v", err)
	}

	// Calling the synchronizer directly without a budget is a precondition
	// violation.
	if _, err := svc.SyncVendorExpenses(ctx, vendor, nil); !errors.Is(err, ErrNoBudget) {
		t.Fatalf("expected ErrNoBudget, got %v", err)
	}
}

func TestSyncVendorExpenses_UnchangedVendorKeepsSet(t *testing.T) {
	svc, expenses, userID, weddingID := newVendorFixture(t, true)
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, userID, weddingID, &dto.CreateVendorRequest{
		Name:          "Grand Hall",
		Type:          "venue",
		Price:         floatPtr(4000),
		DepositAmount: floatPtr(1000),
		DepositPaid:   true,
	})
	if err != nil {
		t.Fatalf("CreateVendor: %v", err)
	}

	before, _ := expenses.ListByVendor(ctx, vendor.ID)

	// An update that changes nothing still resyncs, and the derived set
	// must come out identical.
	if _, err := svc.UpdateVendor(ctx, userID, vendor.ID, &dto.UpdateVendorRequest{}); err != nil {
		t.Fatalf("UpdateVendor: %v", err)
	}

	after, _ := expenses.ListByVendor(ctx, vendor.ID)
	if len(after) != len(before) {
		t.Fatalf("derived expense count changed: %d -> %d", len(before), len(after))
	}

	byDesc := make(map[string]*models.Expense, len(before))
	for _, e := range before {
		byDesc[e.Description] = e
	}
	for _, e := range after {
		prev := byDesc[e.Description]
		if prev == nil {
			t.Fatalf("resync produced new line %q", e.Description)
		}
		if e.Amount != prev.Amount || e.Status != prev.Status || e.Type != prev.Type {
			t.Errorf("line %q changed: (%v, %q, %q) -> (%v, %q, %q)",
				e.Description, prev.Amount, prev.Status, prev.Type, e.Amount, e.Status, e.Type)
		}
	}
}

type failingBudgetStore struct{}

func (failingBudgetStore) GetByWeddingID(ctx context.Context, weddingID uuid.UUID) (*models.Budget, error) {
	return nil, errors.New("connection refused")
}

func TestSyncVendorExpenses_BudgetLookupFailurePropagates(t *testing.T) {
	weddings := newFakeWeddingStore()
	vendors := newFakeVendorStore()
	userID, weddingID := seedWedding(weddings)

	svc := NewVendorService(vendors, newFakeExpenseStore(), failingBudgetStore{}, weddings, testLogger())

	// A budget lookup failure is not absence; the write must not succeed
	// with the derived expenses silently out of date.
	_, err := svc.CreateVendor(context.Background(), userID, weddingID, &dto.CreateVendorRequest{
		Name:  "Grand Hall",
		Price: floatPtr(4000),
	})
	if err == nil {
		t.Fatal("CreateVendor succeeded despite failing budget lookup")
	}
}

func TestSyncVendorExpenses_NothingBillable(t *testing.T) {
	svc, expenses, userID, weddingID := newVendorFixture(t, true)
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, userID, weddingID, &dto.CreateVendorRequest{
		Name: "Maybe Band",
		Type: "music",
	})
	if err != nil {
		t.Fatalf("CreateVendor: %v", err)
	}

	derived, _ := expenses.ListByVendor(ctx, vendor.ID)
	if len(derived) != 0 {
		t.Fatalf("unpriced vendor derived %d expenses, want 0", len(derived))
	}

	budget := &models.Budget{ID: uuid.New(), WeddingID: weddingID}
	last, err := svc.SyncVendorExpenses(ctx, vendor, budget)
	if err != nil {
		t.Fatalf("SyncVendorExpenses: %v", err)
	}
	if last != nil {
		t.Errorf("expected nil expense for unpriced vendor, got %+v", last)
	}
}

func boolPtr(b bool) *bool { return &b }
