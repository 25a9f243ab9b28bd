package service

import (
	"context"
	"time"

	"aisleplan/internal/models"
	"aisleplan/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fakes signal absence the way the repositories do.
var errFakeNotFound = repository.ErrNoRows

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// fakeWeddingStore implements WeddingGetter and WeddingStore in memory.
type fakeWeddingStore struct {
	weddings map[uuid.UUID]*models.Wedding
}

func newFakeWeddingStore() *fakeWeddingStore {
	return &fakeWeddingStore{weddings: make(map[uuid.UUID]*models.Wedding)}
}

func (f *fakeWeddingStore) Create(_ context.Context, w *models.Wedding) error {
	f.weddings[w.ID] = w
	return nil
}

func (f *fakeWeddingStore) GetByID(_ context.Context, id uuid.UUID) (*models.Wedding, error) {
	w, ok := f.weddings[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return w, nil
}

func (f *fakeWeddingStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*models.Wedding, error) {
	var out []*models.Wedding
	for _, w := range f.weddings {
		if w.OwnerID == ownerID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWeddingStore) Update(_ context.Context, w *models.Wedding) error {
	f.weddings[w.ID] = w
	return nil
}

func (f *fakeWeddingStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.weddings, id)
	return nil
}

// fakeBudgetStore implements BudgetStore and BudgetGetter in memory.
type fakeBudgetStore struct {
	budgets map[uuid.UUID]*models.Budget
}

func newFakeBudgetStore() *fakeBudgetStore {
	return &fakeBudgetStore{budgets: make(map[uuid.UUID]*models.Budget)}
}

func (f *fakeBudgetStore) Create(_ context.Context, b *models.Budget) error {
	f.budgets[b.ID] = b
	return nil
}

func (f *fakeBudgetStore) GetByID(_ context.Context, id uuid.UUID) (*models.Budget, error) {
	b, ok := f.budgets[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return b, nil
}

func (f *fakeBudgetStore) GetByWeddingID(_ context.Context, weddingID uuid.UUID) (*models.Budget, error) {
	for _, b := range f.budgets {
		if b.WeddingID == weddingID {
			return b, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeBudgetStore) Update(_ context.Context, b *models.Budget, _ bool) error {
	f.budgets[b.ID] = b
	return nil
}

// fakeExpenseStore implements ExpenseStore and VendorExpenseStore in memory.
type fakeExpenseStore struct {
	expenses map[uuid.UUID]*models.Expense
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{expenses: make(map[uuid.UUID]*models.Expense)}
}

func (f *fakeExpenseStore) Create(_ context.Context, e *models.Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeExpenseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return e, nil
}

func (f *fakeExpenseStore) ListByBudget(_ context.Context, budgetID uuid.UUID) ([]*models.Expense, error) {
	var out []*models.Expense
	for _, e := range f.expenses {
		if e.BudgetID == budgetID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseStore) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]*models.Expense, error) {
	var out []*models.Expense
	for _, e := range f.expenses {
		if e.VendorID != nil && *e.VendorID == vendorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseStore) Update(_ context.Context, e *models.Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeExpenseStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.expenses, id)
	return nil
}

func (f *fakeExpenseStore) ReplaceForVendor(_ context.Context, vendorID uuid.UUID, expenses []*models.Expense) error {
	for id, e := range f.expenses {
		if e.VendorID != nil && *e.VendorID == vendorID {
			delete(f.expenses, id)
		}
	}
	for _, e := range expenses {
		f.expenses[e.ID] = e
	}
	return nil
}

// fakeVendorStore implements VendorStore in memory.
type fakeVendorStore struct {
	vendors map[uuid.UUID]*models.Vendor
}

func newFakeVendorStore() *fakeVendorStore {
	return &fakeVendorStore{vendors: make(map[uuid.UUID]*models.Vendor)}
}

func (f *fakeVendorStore) Create(_ context.Context, v *models.Vendor) error {
	f.vendors[v.ID] = v
	return nil
}

func (f *fakeVendorStore) GetByID(_ context.Context, id uuid.UUID) (*models.Vendor, error) {
	v, ok := f.vendors[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return v, nil
}

func (f *fakeVendorStore) ListByWedding(_ context.Context, weddingID uuid.UUID) ([]*models.Vendor, error) {
	var out []*models.Vendor
	for _, v := range f.vendors {
		if v.WeddingID == weddingID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVendorStore) Update(_ context.Context, v *models.Vendor) error {
	f.vendors[v.ID] = v
	return nil
}

func (f *fakeVendorStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.vendors, id)
	return nil
}

// fakeTableStore implements TableStore in memory.
type fakeTableStore struct {
	tables map[uuid.UUID]*models.Table
}

func newFakeTableStore() *fakeTableStore {
	return &fakeTableStore{tables: make(map[uuid.UUID]*models.Table)}
}

func (f *fakeTableStore) Create(_ context.Context, t *models.Table) error {
	f.tables[t.ID] = t
	return nil
}

func (f *fakeTableStore) GetByID(_ context.Context, id uuid.UUID) (*models.Table, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return t, nil
}

func (f *fakeTableStore) ListByWedding(_ context.Context, weddingID uuid.UUID) ([]*models.Table, error) {
	var out []*models.Table
	for _, t := range f.tables {
		if t.WeddingID == weddingID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTableStore) Update(_ context.Context, t *models.Table) error {
	f.tables[t.ID] = t
	return nil
}

func (f *fakeTableStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.tables, id)
	return nil
}

// fakeGuestStore implements GuestStore and SeatingGuestStore in memory.
type fakeGuestStore struct {
	guests map[uuid.UUID]*models.Guest
}

func newFakeGuestStore() *fakeGuestStore {
	return &fakeGuestStore{guests: make(map[uuid.UUID]*models.Guest)}
}

func (f *fakeGuestStore) Create(_ context.Context, g *models.Guest) error {
	f.guests[g.ID] = g
	return nil
}

func (f *fakeGuestStore) GetByID(_ context.Context, id uuid.UUID) (*models.Guest, error) {
	g, ok := f.guests[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return g, nil
}

func (f *fakeGuestStore) ListByWedding(_ context.Context, weddingID uuid.UUID) ([]*models.Guest, error) {
	var out []*models.Guest
	for _, g := range f.guests {
		if g.WeddingID == weddingID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuestStore) ListByTable(_ context.Context, tableID uuid.UUID) ([]*models.Guest, error) {
	var out []*models.Guest
	for _, g := range f.guests {
		if g.TableID != nil && *g.TableID == tableID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuestStore) Update(_ context.Context, g *models.Guest) error {
	f.guests[g.ID] = g
	return nil
}

func (f *fakeGuestStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.guests, id)
	return nil
}

func (f *fakeGuestStore) ReplaceTableAssignments(_ context.Context, tableID uuid.UUID, guestIDs []uuid.UUID, updatedAt time.Time) error {
	for _, g := range f.guests {
		if g.TableID != nil && *g.TableID == tableID {
			g.TableID = nil
			g.UpdatedAt = updatedAt
		}
	}
	for _, id := range guestIDs {
		if g, ok := f.guests[id]; ok {
			tid := tableID
			g.TableID = &tid
			g.UpdatedAt = updatedAt
		}
	}
	return nil
}

// seedWedding creates an owner and wedding pair used by most tests.
func seedWedding(weddings *fakeWeddingStore) (userID, weddingID uuid.UUID) {
	userID = uuid.New()
	weddingID = uuid.New()
	weddings.weddings[weddingID] = &models.Wedding{
		ID:      weddingID,
		OwnerID: userID,
		Title:   "Test Wedding",
	}
	return userID, weddingID
}
