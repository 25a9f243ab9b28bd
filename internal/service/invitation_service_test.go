package service

import (
	"context"
	"testing"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
)

// fakeInvitationStore implements InvitationStore in memory.
type fakeInvitationStore struct {
	invitations map[uuid.UUID]*models.Invitation
}

func newFakeInvitationStore() *fakeInvitationStore {
	return &fakeInvitationStore{invitations: make(map[uuid.UUID]*models.Invitation)}
}

func (f *fakeInvitationStore) Create(_ context.Context, i *models.Invitation) error {
	f.invitations[i.ID] = i
	return nil
}

func (f *fakeInvitationStore) GetByID(_ context.Context, id uuid.UUID) (*models.Invitation, error) {
	i, ok := f.invitations[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return i, nil
}

func (f *fakeInvitationStore) GetByToken(_ context.Context, token string) (*models.Invitation, error) {
	for _, i := range f.invitations {
		if i.Token == token {
			return i, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeInvitationStore) ListByWedding(_ context.Context, weddingID uuid.UUID) ([]*models.Invitation, error) {
	var out []*models.Invitation
	for _, i := range f.invitations {
		if i.WeddingID == weddingID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInvitationStore) Update(_ context.Context, i *models.Invitation) error {
	f.invitations[i.ID] = i
	return nil
}

func (f *fakeInvitationStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.invitations, id)
	return nil
}

func newInvitationFixture(t *testing.T) (*InvitationService, *fakeGuestStore, uuid.UUID, uuid.UUID, *models.Guest) {
	t.Helper()

	weddings := newFakeWeddingStore()
	guests := newFakeGuestStore()
	invitations := newFakeInvitationStore()
	userID, weddingID := seedWedding(weddings)

	guest := &models.Guest{
		ID:         uuid.New(),
		WeddingID:  weddingID,
		Name:       "Alex Rivera",
		RSVPStatus: models.RSVPPending,
	}
	guests.guests[guest.ID] = guest

	svc := NewInvitationService(invitations, guests, weddings, testLogger())
	return svc, guests, userID, weddingID, guest
}

func TestCreateInvitation_GuestMustBelongToWedding(t *testing.T) {
	svc, guests, userID, weddingID, _ := newInvitationFixture(t)
	ctx := context.Background()

	outsider := &models.Guest{ID: uuid.New(), WeddingID: uuid.New(), Name: "Stranger"}
	guests.guests[outsider.ID] = outsider

	_, err := svc.CreateInvitation(ctx, userID, weddingID, &dto.CreateInvitationRequest{
		GuestID: outsider.ID.String(),
	})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for guest of another wedding, got %v", err)
	}
}

func TestInvitationLifecycle(t *testing.T) {
	svc, _, userID, weddingID, guest := newInvitationFixture(t)
	ctx := context.Background()

	invitation, err := svc.CreateInvitation(ctx, userID, weddingID, &dto.CreateInvitationRequest{
		GuestID: guest.ID.String(),
	})
	if err != nil {
		t.Fatalf("CreateInvitation: %v", err)
	}
	if invitation.Status != models.InvitationStatusDraft {
		t.Errorf("Status = %q, want draft", invitation.Status)
	}
	if invitation.Token == "" {
		t.Error("invitation has no token")
	}

	sent, err := svc.Send(ctx, userID, invitation.ID)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if sent.Status != models.InvitationStatusSent || sent.SentAt == nil {
		t.Errorf("sent invitation = (%q, %v), want (sent, stamped)", sent.Status, sent.SentAt)
	}
}

func TestRespondByToken_MirrorsGuestRSVP(t *testing.T) {
	svc, guests, userID, weddingID, guest := newInvitationFixture(t)
	ctx := context.Background()

	invitation, err := svc.CreateInvitation(ctx, userID, weddingID, &dto.CreateInvitationRequest{
		GuestID: guest.ID.String(),
	})
	if err != nil {
		t.Fatalf("CreateInvitation: %v", err)
	}

	responded, err := svc.RespondByToken(ctx, invitation.Token, "accepted")
	if err != nil {
		t.Fatalf("RespondByToken: %v", err)
	}
	if responded.Status != models.InvitationStatusResponded || responded.RespondedAt == nil {
		t.Errorf("invitation = (%q, %v), want (responded, stamped)", responded.Status, responded.RespondedAt)
	}
	if responded.RSVPAnswer == nil || *responded.RSVPAnswer != "accepted" {
		t.Errorf("RSVPAnswer = %v, want accepted", responded.RSVPAnswer)
	}

	mirrored := guests.guests[guest.ID]
	if mirrored.RSVPStatus != models.RSVPAccepted {
		t.Errorf("guest RSVPStatus = %q, want accepted", mirrored.RSVPStatus)
	}
}

func TestRespondByToken_UnknownToken(t *testing.T) {
	svc, _, _, _, _ := newInvitationFixture(t)

	if _, err := svc.RespondByToken(context.Background(), "no-such-token", "declined"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
