package service

import (
	"context"
	"time"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WeddingStore is the slice of the wedding repository the service needs.
type WeddingStore interface {
	Create(ctx context.Context, w *models.Wedding) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Wedding, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Wedding, error)
	Update(ctx context.Context, w *models.Wedding) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type WeddingService struct {
	weddings WeddingStore
	logger   *zap.Logger
}

func NewWeddingService(weddings WeddingStore, logger *zap.Logger) *WeddingService {
	return &WeddingService{
		weddings: weddings,
		logger:   logger,
	}
}

func (s *WeddingService) CreateWedding(ctx context.Context, ownerID uuid.UUID, req *dto.CreateWeddingRequest) (*models.Wedding, error) {
	now := time.Now()
	wedding := &models.Wedding{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Title:         req.Title,
		PartnerOne:    req.PartnerOne,
		PartnerTwo:    req.PartnerTwo,
		Date:          req.Date,
		Venue:         req.Venue,
		City:          req.City,
		GuestEstimate: req.GuestEstimate,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.weddings.Create(ctx, wedding); err != nil {
		return nil, err
	}

	return wedding, nil
}

func (s *WeddingService) GetWedding(ctx context.Context, userID, weddingID uuid.UUID) (*models.Wedding, error) {
	return ensureWeddingOwner(ctx, s.weddings, weddingID, userID)
}

func (s *WeddingService) ListWeddings(ctx context.Context, ownerID uuid.UUID) ([]*models.Wedding, error) {
	return s.weddings.ListByOwner(ctx, ownerID)
}

func (s *WeddingService) UpdateWedding(ctx context.Context, userID, weddingID uuid.UUID, req *dto.UpdateWeddingRequest) (*models.Wedding, error) {
	wedding, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		wedding.Title = *req.Title
	}
	if req.PartnerOne != nil {
		wedding.PartnerOne = *req.PartnerOne
	}
	if req.PartnerTwo != nil {
		wedding.PartnerTwo = *req.PartnerTwo
	}
	if req.Date != nil {
		wedding.Date = req.Date
	}
	if req.Venue != nil {
		wedding.Venue = *req.Venue
	}
	if req.City != nil {
		wedding.City = *req.City
	}
	if req.GuestEstimate != nil {
		wedding.GuestEstimate = *req.GuestEstimate
	}
	if req.Notes != nil {
		wedding.Notes = *req.Notes
	}
	wedding.UpdatedAt = time.Now()

	if err := s.weddings.Update(ctx, wedding); err != nil {
		return nil, err
	}

	return wedding, nil
}

func (s *WeddingService) DeleteWedding(ctx context.Context, userID, weddingID uuid.UUID) error {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return err
	}
	return s.weddings.Delete(ctx, weddingID)
}
