package handlers

import (
	"aisleplan/internal/dto"
	"aisleplan/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InvitationHandler struct {
	invitationService *service.InvitationService
	logger            *zap.Logger
}

func NewInvitationHandler(invitationService *service.InvitationService, logger *zap.Logger) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
		logger:            logger,
	}
}

// Create godoc
// @Summary Create an invitation for a guest
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Param request body dto.CreateInvitationRequest true "Invitation"
// @Success 201 {object} dto.InvitationResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/weddings/{id}/invitations [post]
func (h *InvitationHandler) Create(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.GuestID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "guest_id is required",
		})
	}

	invitation, err := h.invitationService.CreateInvitation(c.Context(), uid, weddingID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create invitation")
	}

	return c.Status(fiber.StatusCreated).JSON(invitationResponse(invitation))
}

// List godoc
// @Summary List invitations of a wedding
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Success 200 {array} dto.InvitationResponse
// @Router /api/v1/weddings/{id}/invitations [get]
func (h *InvitationHandler) List(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	invitations, err := h.invitationService.ListInvitations(c.Context(), uid, weddingID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list invitations")
	}

	resp := make([]dto.InvitationResponse, 0, len(invitations))
	for _, i := range invitations {
		resp = append(resp, invitationResponse(i))
	}
	return c.JSON(resp)
}

// Send godoc
// @Summary Mark an invitation as sent
// @Description Transitions the invitation to sent and stamps the send time; delivery happens out of band
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} dto.InvitationResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/invitations/{id}/send [post]
func (h *InvitationHandler) Send(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	invitationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	invitation, err := h.invitationService.Send(c.Context(), uid, invitationID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to send invitation")
	}

	return c.JSON(invitationResponse(invitation))
}

// Respond godoc
// @Summary Respond to an invitation by token
// @Description Public RSVP endpoint; the answer is mirrored onto the guest's RSVP status
// @Tags invitations
// @Accept json
// @Produce json
// @Param token path string true "Invitation token"
// @Param request body dto.RSVPByTokenRequest true "RSVP answer"
// @Success 200 {object} dto.InvitationResponse
// @Failure 404 {object} map[string]string
// @Router /rsvp/{token} [post]
func (h *InvitationHandler) Respond(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Token is required",
		})
	}

	var req dto.RSVPByTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Answer != "accepted" && req.Answer != "declined" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Answer must be accepted or declined",
		})
	}

	invitation, err := h.invitationService.RespondByToken(c.Context(), token, req.Answer)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to record RSVP")
	}

	return c.JSON(invitationResponse(invitation))
}

// Delete godoc
// @Summary Remove an invitation
// @Tags invitations
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/invitations/{id} [delete]
func (h *InvitationHandler) Delete(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	invitationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.invitationService.DeleteInvitation(c.Context(), uid, invitationID); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete invitation")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
