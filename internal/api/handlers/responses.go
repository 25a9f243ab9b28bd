package handlers

import (
	"aisleplan/internal/dto"
	"aisleplan/internal/models"
	"aisleplan/internal/service"
)

func weddingResponse(w *models.Wedding) dto.WeddingResponse {
	return dto.WeddingResponse{
		ID:            w.ID.String(),
		Title:         w.Title,
		PartnerOne:    w.PartnerOne,
		PartnerTwo:    w.PartnerTwo,
		Date:          fmtTimePtr(w.Date),
		Venue:         w.Venue,
		City:          w.City,
		GuestEstimate: w.GuestEstimate,
		Notes:         w.Notes,
		CreatedAt:     fmtTime(w.CreatedAt),
		UpdatedAt:     fmtTime(w.UpdatedAt),
	}
}

func guestResponse(g *models.Guest) dto.GuestResponse {
	return dto.GuestResponse{
		ID:           g.ID.String(),
		WeddingID:    g.WeddingID.String(),
		Name:         g.Name,
		Email:        g.Email,
		Phone:        g.Phone,
		Group:        string(g.Group),
		RSVPStatus:   string(g.RSVPStatus),
		PlusOne:      g.PlusOne,
		DietaryNotes: g.DietaryNotes,
		TableID:      uuidPtrString(g.TableID),
		CreatedAt:    fmtTime(g.CreatedAt),
		UpdatedAt:    fmtTime(g.UpdatedAt),
	}
}

func budgetResponse(b *models.Budget) dto.BudgetResponse {
	return dto.BudgetResponse{
		ID:          b.ID.String(),
		WeddingID:   b.WeddingID.String(),
		TotalAmount: b.TotalAmount,
		Allocations: b.Allocations,
		CreatedAt:   fmtTime(b.CreatedAt),
		UpdatedAt:   fmtTime(b.UpdatedAt),
	}
}

func budgetSummaryResponse(s *models.BudgetSummary) dto.BudgetSummaryResponse {
	return dto.BudgetSummaryResponse{
		TotalBudget:       s.TotalBudget,
		TotalSpent:        s.TotalSpent,
		TotalPaid:         s.TotalPaid,
		TotalPending:      s.TotalPending,
		RemainingBudget:   s.RemainingBudget,
		Allocations:       s.Allocations,
		SpentByCategory:   s.SpentByCategory,
		PendingByCategory: s.PendingByCategory,
	}
}

func expenseResponse(e *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID.String(),
		BudgetID:    e.BudgetID.String(),
		VendorID:    uuidPtrString(e.VendorID),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Status:      string(e.Status),
		PaidAmount:  e.PaidAmount,
		PaidAt:      fmtTimePtr(e.PaidAt),
		DueDate:     fmtTimePtr(e.DueDate),
		Type:        e.Type,
		CreatedAt:   fmtTime(e.CreatedAt),
		UpdatedAt:   fmtTime(e.UpdatedAt),
	}
}

func vendorResponse(v *models.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:             v.ID.String(),
		WeddingID:      v.WeddingID.String(),
		Name:           v.Name,
		Company:        v.Company,
		Type:           v.Type,
		Status:         string(v.Status),
		Email:          v.Email,
		Phone:          v.Phone,
		Website:        v.Website,
		Price:          v.Price,
		DepositAmount:  v.DepositAmount,
		DepositPaid:    v.DepositPaid,
		ContractSigned: v.ContractSigned,
		Notes:          v.Notes,
		CreatedAt:      fmtTime(v.CreatedAt),
		UpdatedAt:      fmtTime(v.UpdatedAt),
	}
}

func tableResponse(t *models.Table, guests []*models.Guest) dto.TableResponse {
	resp := dto.TableResponse{
		ID:          t.ID.String(),
		WeddingID:   t.WeddingID.String(),
		Name:        t.Name,
		Capacity:    t.Capacity,
		MinCapacity: t.MinCapacity,
		Shape:       string(t.Shape),
		CreatedAt:   fmtTime(t.CreatedAt),
		UpdatedAt:   fmtTime(t.UpdatedAt),
	}
	for _, g := range guests {
		resp.Guests = append(resp.Guests, guestResponse(g))
	}
	return resp
}

func seatingValidationResponse(v service.SeatingValidation) dto.SeatingValidationResponse {
	errs := v.Errors
	if errs == nil {
		errs = []string{}
	}
	return dto.SeatingValidationResponse{
		IsValid: v.IsValid,
		Errors:  errs,
	}
}

func taskResponse(t *models.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID.String(),
		WeddingID:   t.WeddingID.String(),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     fmtTimePtr(t.DueDate),
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Assignee:    t.Assignee,
		CreatedAt:   fmtTime(t.CreatedAt),
		UpdatedAt:   fmtTime(t.UpdatedAt),
	}
}

func timelineEventResponse(e *models.TimelineEvent) dto.TimelineEventResponse {
	return dto.TimelineEventResponse{
		ID:          e.ID.String(),
		WeddingID:   e.WeddingID.String(),
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    fmtTime(e.StartsAt),
		EndsAt:      fmtTimePtr(e.EndsAt),
		Location:    e.Location,
		SortOrder:   e.SortOrder,
		CreatedAt:   fmtTime(e.CreatedAt),
		UpdatedAt:   fmtTime(e.UpdatedAt),
	}
}

func invitationResponse(i *models.Invitation) dto.InvitationResponse {
	resp := dto.InvitationResponse{
		ID:          i.ID.String(),
		WeddingID:   i.WeddingID.String(),
		GuestID:     i.GuestID.String(),
		Channel:     string(i.Channel),
		Token:       i.Token,
		Status:      string(i.Status),
		SentAt:      fmtTimePtr(i.SentAt),
		RespondedAt: fmtTimePtr(i.RespondedAt),
		CreatedAt:   fmtTime(i.CreatedAt),
		UpdatedAt:   fmtTime(i.UpdatedAt),
	}
	if i.RSVPAnswer != nil {
		resp.RSVPAnswer = *i.RSVPAnswer
	}
	return resp
}

func photoResponse(p *models.Photo) dto.PhotoResponse {
	return dto.PhotoResponse{
		ID:        p.ID.String(),
		WeddingID: p.WeddingID.String(),
		Caption:   p.Caption,
		Album:     p.Album,
		FileName:  p.FileName,
		FileSize:  p.FileSize,
		FileURL:   p.FileURL,
		CreatedAt: fmtTime(p.CreatedAt),
	}
}
