package service

import (
	"context"
	"fmt"
	"time"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TableStore is the slice of the table repository the service needs.
type TableStore interface {
	Create(ctx context.Context, t *models.Table) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Table, error)
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Table, error)
	Update(ctx context.Context, t *models.Table) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SeatingGuestStore is the guest-side surface of seat assignment.
type SeatingGuestStore interface {
	ListByTable(ctx context.Context, tableID uuid.UUID) ([]*models.Guest, error)
	ReplaceTableAssignments(ctx context.Context, tableID uuid.UUID, guestIDs []uuid.UUID, updatedAt time.Time) error
}

// SeatingValidation is the structured outcome of a seating check. A failed
// validation is a normal result the caller acts on, not an error.
type SeatingValidation struct {
	IsValid bool
	Errors  []string
}

// SeatingRule checks one constraint on a proposed assignment and returns the
// violations it finds. Additional rules (cross-table double booking, minimum
// fill) can be registered without touching the assignment flow.
type SeatingRule func(table *models.Table, guestIDs []uuid.UUID) []string

// capacityRule rejects assignments that seat more guests than the table holds.
func capacityRule(table *models.Table, guestIDs []uuid.UUID) []string {
	if len(guestIDs) > table.Capacity {
		return []string{fmt.Sprintf("table %q seats %d guests, %d assigned", table.Name, table.Capacity, len(guestIDs))}
	}
	return nil
}

type SeatingService struct {
	tables   TableStore
	guests   SeatingGuestStore
	weddings WeddingGetter
	rules    []SeatingRule
	logger   *zap.Logger
}

func NewSeatingService(tables TableStore, guests SeatingGuestStore, weddings WeddingGetter, logger *zap.Logger) *SeatingService {
	return &SeatingService{
		tables:   tables,
		guests:   guests,
		weddings: weddings,
		rules:    []SeatingRule{capacityRule},
		logger:   logger,
	}
}

// RegisterRule appends an extra validation rule.
func (s *SeatingService) RegisterRule(rule SeatingRule) {
	s.rules = append(s.rules, rule)
}

func (s *SeatingService) CreateTable(ctx context.Context, userID, weddingID uuid.UUID, req *dto.CreateTableRequest) (*models.Table, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	table := &models.Table{
		ID:          uuid.New(),
		WeddingID:   weddingID,
		Name:        req.Name,
		Capacity:    req.Capacity,
		MinCapacity: req.MinCapacity,
		Shape:       models.TableShape(defaultString(req.Shape, string(models.TableShapeRound))),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tables.Create(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

func (s *SeatingService) ListTables(ctx context.Context, userID, weddingID uuid.UUID) ([]*models.Table, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}
	return s.tables.ListByWedding(ctx, weddingID)
}

func (s *SeatingService) GuestsAtTable(ctx context.Context, tableID uuid.UUID) ([]*models.Guest, error) {
	return s.guests.ListByTable(ctx, tableID)
}

func (s *SeatingService) UpdateTable(ctx context.Context, userID, tableID uuid.UUID, req *dto.UpdateTableRequest) (*models.Table, error) {
	table, err := s.ownedTable(ctx, userID, tableID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		table.Name = *req.Name
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.MinCapacity != nil {
		table.MinCapacity = *req.MinCapacity
	}
	if req.Shape != nil {
		table.Shape = models.TableShape(*req.Shape)
	}
	table.UpdatedAt = time.Now()

	if err := s.tables.Update(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

func (s *SeatingService) DeleteTable(ctx context.Context, userID, tableID uuid.UUID) error {
	if _, err := s.ownedTable(ctx, userID, tableID); err != nil {
		return err
	}
	return s.tables.Delete(ctx, tableID)
}

// ValidateAssignment runs every registered rule against the proposed seating.
func (s *SeatingService) ValidateAssignment(table *models.Table, guestIDs []uuid.UUID) SeatingValidation {
	var violations []string
	for _, rule := range s.rules {
		violations = append(violations, rule(table, guestIDs)...)
	}
	return SeatingValidation{
		IsValid: len(violations) == 0,
		Errors:  violations,
	}
}

// AssignGuests validates the proposed seating and, when valid, replaces the
// table's guest assignments. An invalid assignment returns the validation
// result and writes nothing.
func (s *SeatingService) AssignGuests(ctx context.Context, userID, tableID uuid.UUID, guestIDs []uuid.UUID) (SeatingValidation, error) {
	table, err := s.ownedTable(ctx, userID, tableID)
	if err != nil {
		return SeatingValidation{}, err
	}

	validation := s.ValidateAssignment(table, guestIDs)
	if !validation.IsValid {
		return validation, nil
	}

	if err := s.guests.ReplaceTableAssignments(ctx, tableID, guestIDs, time.Now()); err != nil {
		return SeatingValidation{}, err
	}

	return validation, nil
}

func (s *SeatingService) ownedTable(ctx context.Context, userID, tableID uuid.UUID) (*models.Table, error) {
	table, err := s.tables.GetByID(ctx, tableID)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := ensureWeddingOwner(ctx, s.weddings, table.WeddingID, userID); err != nil {
		return nil, err
	}
	return table, nil
}
