package service

import (
	"context"
	"time"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TimelineStore is the slice of the timeline repository the service needs.
type TimelineStore interface {
	Create(ctx context.Context, e *models.TimelineEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TimelineEvent, error)
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.TimelineEvent, error)
	Update(ctx context.Context, e *models.TimelineEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimelineService struct {
	events   TimelineStore
	weddings WeddingGetter
	logger   *zap.Logger
}

func NewTimelineService(events TimelineStore, weddings WeddingGetter, logger *zap.Logger) *TimelineService {
	return &TimelineService{
		events:   events,
		weddings: weddings,
		logger:   logger,
	}
}

func (s *TimelineService) CreateEvent(ctx context.Context, userID, weddingID uuid.UUID, req *dto.CreateTimelineEventRequest) (*models.TimelineEvent, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	event := &models.TimelineEvent{
		ID:          uuid.New(),
		WeddingID:   weddingID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Location:    req.Location,
		SortOrder:   req.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *TimelineService) ListEvents(ctx context.Context, userID, weddingID uuid.UUID) ([]*models.TimelineEvent, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}
	return s.events.ListByWedding(ctx, weddingID)
}

func (s *TimelineService) UpdateEvent(ctx context.Context, userID, eventID uuid.UUID, req *dto.UpdateTimelineEventRequest) (*models.TimelineEvent, error) {
	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.SortOrder != nil {
		event.SortOrder = *req.SortOrder
	}
	event.UpdatedAt = time.Now()

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *TimelineService) DeleteEvent(ctx context.Context, userID, eventID uuid.UUID) error {
	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}
	return s.events.Delete(ctx, eventID)
}

func (s *TimelineService) ownedEvent(ctx context.Context, userID, eventID uuid.UUID) (*models.TimelineEvent, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := ensureWeddingOwner(ctx, s.weddings, event.WeddingID, userID); err != nil {
		return nil, err
	}
	return event, nil
}
