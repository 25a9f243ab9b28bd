package service

import (
	"context"
	"time"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GuestStore is the slice of the guest repository the service needs.
type GuestStore interface {
	Create(ctx context.Context, g *models.Guest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Guest, error)
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Guest, error)
	Update(ctx context.Context, g *models.Guest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GuestService struct {
	guests   GuestStore
	weddings WeddingGetter
	logger   *zap.Logger
}

func NewGuestService(guests GuestStore, weddings WeddingGetter, logger *zap.Logger) *GuestService {
	return &GuestService{
		guests:   guests,
		weddings: weddings,
		logger:   logger,
	}
}

func (s *GuestService) CreateGuest(ctx context.Context, userID, weddingID uuid.UUID, req *dto.CreateGuestRequest) (*models.Guest, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	guest := &models.Guest{
		ID:           uuid.New(),
		WeddingID:    weddingID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Group:        models.GuestGroup(defaultString(req.Group, string(models.GuestGroupOther))),
		RSVPStatus:   models.RSVPPending,
		PlusOne:      req.PlusOne,
		DietaryNotes: req.DietaryNotes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, err
	}

	return guest, nil
}

func (s *GuestService) ListGuests(ctx context.Context, userID, weddingID uuid.UUID) ([]*models.Guest, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}
	return s.guests.ListByWedding(ctx, weddingID)
}

func (s *GuestService) UpdateGuest(ctx context.Context, userID, guestID uuid.UUID, req *dto.UpdateGuestRequest) (*models.Guest, error) {
	guest, err := s.ownedGuest(ctx, userID, guestID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		guest.Name = *req.Name
	}
	if req.Email != nil {
		guest.Email = *req.Email
	}
	if req.Phone != nil {
		guest.Phone = *req.Phone
	}
	if req.Group != nil {
		guest.Group = models.GuestGroup(*req.Group)
	}
	if req.PlusOne != nil {
		guest.PlusOne = *req.PlusOne
	}
	if req.DietaryNotes != nil {
		guest.DietaryNotes = *req.DietaryNotes
	}
	guest.UpdatedAt = time.Now()

	if err := s.guests.Update(ctx, guest); err != nil {
		return nil, err
	}

	return guest, nil
}

func (s *GuestService) UpdateRSVP(ctx context.Context, userID, guestID uuid.UUID, status models.RSVPStatus) (*models.Guest, error) {
	guest, err := s.ownedGuest(ctx, userID, guestID)
	if err != nil {
		return nil, err
	}

	guest.RSVPStatus = status
	guest.UpdatedAt = time.Now()

	if err := s.guests.Update(ctx, guest); err != nil {
		return nil, err
	}

	return guest, nil
}

func (s *GuestService) DeleteGuest(ctx context.Context, userID, guestID uuid.UUID) error {
	if _, err := s.ownedGuest(ctx, userID, guestID); err != nil {
		return err
	}
	return s.guests.Delete(ctx, guestID)
}

func (s *GuestService) ownedGuest(ctx context.Context, userID, guestID uuid.UUID) (*models.Guest, error) {
	guest, err := s.guests.GetByID(ctx, guestID)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := ensureWeddingOwner(ctx, s.weddings, guest.WeddingID, userID); err != nil {
		return nil, err
	}
	return guest, nil
}
