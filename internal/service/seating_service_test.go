package service

import (
	"context"
	"strings"
	"testing"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
)

func newSeatingFixture(t *testing.T) (*SeatingService, *fakeGuestStore, uuid.UUID, *models.Table) {
	t.Helper()

	weddings := newFakeWeddingStore()
	tables := newFakeTableStore()
	guests := newFakeGuestStore()
	userID, weddingID := seedWedding(weddings)

	svc := NewSeatingService(tables, guests, weddings, testLogger())

	table, err := svc.CreateTable(context.Background(), userID, weddingID, &dto.CreateTableRequest{
		Name:     "Head Table",
		Capacity: 4,
	})
	if err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	return svc, guests, userID, table
}

func seedGuests(guests *fakeGuestStore, weddingID uuid.UUID, n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		id := uuid.New()
		guests.guests[id] = &models.Guest{ID: id, WeddingID: weddingID, Name: "Guest"}
		ids[i] = id
	}
	return ids
}

func TestValidateAssignment_OverCapacity(t *testing.T) {
	svc, guests, _, table := newSeatingFixture(t)
	guestIDs := seedGuests(guests, table.WeddingID, 5)

	validation := svc.ValidateAssignment(table, guestIDs)
	if validation.IsValid {
		t.Fatal("5 guests at a 4-seat table passed validation")
	}
	if len(validation.Errors) != 1 {
		t.Fatalf("Errors = %v, want one capacity violation", validation.Errors)
	}
	if !strings.Contains(validation.Errors[0], "Head Table") {
		t.Errorf("violation %q does not name the table", validation.Errors[0])
	}
}

func TestValidateAssignment_AtCapacity(t *testing.T) {
	svc, guests, _, table := newSeatingFixture(t)
	guestIDs := seedGuests(guests, table.WeddingID, 4)

	validation := svc.ValidateAssignment(table, guestIDs)
	if !validation.IsValid {
		t.Fatalf("assignment at exact capacity rejected: %v", validation.Errors)
	}
	if len(validation.Errors) != 0 {
		t.Errorf("Errors = %v, want none", validation.Errors)
	}
}

func TestAssignGuests_ValidWrites(t *testing.T) {
	svc, guests, userID, table := newSeatingFixture(t)
	ctx := context.Background()
	guestIDs := seedGuests(guests, table.WeddingID, 3)

	validation, err := svc.AssignGuests(ctx, userID, table.ID, guestIDs)
	if err != nil {
		t.Fatalf("AssignGuests: %v", err)
	}
	if !validation.IsValid {
		t.Fatalf("valid assignment rejected: %v", validation.Errors)
	}

	seated, err := svc.GuestsAtTable(ctx, table.ID)
	if err != nil {
		t.Fatalf("GuestsAtTable: %v", err)
	}
	if len(seated) != 3 {
		t.Errorf("seated count = %d, want 3", len(seated))
	}
}

func TestAssignGuests_InvalidWritesNothing(t *testing.T) {
	svc, guests, userID, table := newSeatingFixture(t)
	ctx := context.Background()
	guestIDs := seedGuests(guests, table.WeddingID, 5)

	validation, err := svc.AssignGuests(ctx, userID, table.ID, guestIDs)
	if err != nil {
		t.Fatalf("AssignGuests: %v", err)
	}
	if validation.IsValid {
		t.Fatal("over-capacity assignment accepted")
	}

	seated, _ := svc.GuestsAtTable(ctx, table.ID)
	if len(seated) != 0 {
		t.Errorf("rejected assignment still seated %d guests", len(seated))
	}
}

func TestAssignGuests_ReplacesExistingSeating(t *testing.T) {
	svc, guests, userID, table := newSeatingFixture(t)
	ctx := context.Background()

	first := seedGuests(guests, table.WeddingID, 2)
	if _, err := svc.AssignGuests(ctx, userID, table.ID, first); err != nil {
		t.Fatalf("AssignGuests: %v", err)
	}

	second := seedGuests(guests, table.WeddingID, 2)
	if _, err := svc.AssignGuests(ctx, userID, table.ID, second); err != nil {
		t.Fatalf("AssignGuests: %v", err)
	}

	seated, _ := svc.GuestsAtTable(ctx, table.ID)
	if len(seated) != 2 {
		t.Fatalf("seated count after reassignment = %d, want 2", len(seated))
	}
	for _, g := range seated {
		if g.ID == first[0] || g.ID == first[1] {
			t.Errorf("guest %s from the replaced assignment is still seated", g.ID)
		}
	}
}

func TestRegisterRule_ExtraRuleApplied(t *testing.T) {
	svc, guests, _, table := newSeatingFixture(t)

	svc.RegisterRule(func(table *models.Table, guestIDs []uuid.UUID) []string {
		if len(guestIDs) < table.MinCapacity {
			return []string{"table below minimum fill"}
		}
		return nil
	})
	table.MinCapacity = 2

	guestIDs := seedGuests(guests, table.WeddingID, 1)
	validation := svc.ValidateAssignment(table, guestIDs)
	if validation.IsValid {
		t.Fatal("registered rule not applied")
	}
}

func TestAssignGuests_Ownership(t *testing.T) {
	svc, _, _, table := newSeatingFixture(t)

	stranger := uuid.New()
	if _, err := svc.AssignGuests(context.Background(), stranger, table.ID, nil); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}
