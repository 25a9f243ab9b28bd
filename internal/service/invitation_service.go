package service

import (
	"context"
	"strings"
	"time"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvitationStore is the slice of the invitation repository the service needs.
type InvitationStore interface {
	Create(ctx context.Context, i *models.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error)
	GetByToken(ctx context.Context, token string) (*models.Invitation, error)
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Invitation, error)
	Update(ctx context.Context, i *models.Invitation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type InvitationService struct {
	invitations InvitationStore
	guests      GuestStore
	weddings    WeddingGetter
	logger      *zap.Logger
}

func NewInvitationService(invitations InvitationStore, guests GuestStore, weddings WeddingGetter, logger *zap.Logger) *InvitationService {
	return &InvitationService{
		invitations: invitations,
		guests:      guests,
		weddings:    weddings,
		logger:      logger,
	}
}

func (s *InvitationService) CreateInvitation(ctx context.Context, userID, weddingID uuid.UUID, req *dto.CreateInvitationRequest) (*models.Invitation, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		return nil, ErrNotFound
	}
	guest, err := s.guests.GetByID(ctx, guestID)
	if err != nil || guest.WeddingID != weddingID {
		return nil, ErrNotFound
	}

	now := time.Now()
	invitation := &models.Invitation{
		ID:        uuid.New(),
		WeddingID: weddingID,
		GuestID:   guestID,
		Channel:   models.InvitationChannel(defaultString(req.Channel, string(models.InvitationChannelLink))),
		Token:     newInvitationToken(),
		Status:    models.InvitationStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.invitations.Create(ctx, invitation); err != nil {
		return nil, err
	}

	return invitation, nil
}

func (s *InvitationService) ListInvitations(ctx context.Context, userID, weddingID uuid.UUID) ([]*models.Invitation, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}
	return s.invitations.ListByWedding(ctx, weddingID)
}

// Send marks the invitation as sent. Delivery itself happens outside this
// service; the guest receives the RSVP link through whatever channel the
// couple uses.
func (s *InvitationService) Send(ctx context.Context, userID, invitationID uuid.UUID) (*models.Invitation, error) {
	invitation, err := s.ownedInvitation(ctx, userID, invitationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invitation.Status = models.InvitationStatusSent
	invitation.SentAt = &now
	invitation.UpdatedAt = now

	if err := s.invitations.Update(ctx, invitation); err != nil {
		return nil, err
	}

	return invitation, nil
}

// RespondByToken records a guest's RSVP answer for the invitation identified
// by its public token, and mirrors the answer onto the guest record.
func (s *InvitationService) RespondByToken(ctx context.Context, token, answer string) (*models.Invitation, error) {
	invitation, err := s.invitations.GetByToken(ctx, token)
	if err != nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	invitation.Status = models.InvitationStatusResponded
	invitation.RespondedAt = &now
	invitation.RSVPAnswer = &answer
	invitation.UpdatedAt = now

	if err := s.invitations.Update(ctx, invitation); err != nil {
		return nil, err
	}

	guest, err := s.guests.GetByID(ctx, invitation.GuestID)
	if err == nil {
		guest.RSVPStatus = models.RSVPStatus(answer)
		guest.UpdatedAt = now
		if err := s.guests.Update(ctx, guest); err != nil {
			s.logger.Warn("Failed to mirror RSVP onto guest",
				zap.String("guest_id", guest.ID.String()),
				zap.Error(err),
			)
		}
	}

	return invitation, nil
}

func (s *InvitationService) DeleteInvitation(ctx context.Context, userID, invitationID uuid.UUID) error {
	if _, err := s.ownedInvitation(ctx, userID, invitationID); err != nil {
		return err
	}
	return s.invitations.Delete(ctx, invitationID)
}

func (s *InvitationService) ownedInvitation(ctx context.Context, userID, invitationID uuid.UUID) (*models.Invitation, error) {
	invitation, err := s.invitations.GetByID(ctx, invitationID)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := ensureWeddingOwner(ctx, s.weddings, invitation.WeddingID, userID); err != nil {
		return nil, err
	}
	return invitation, nil
}

func newInvitationToken() string {
	return strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
}
