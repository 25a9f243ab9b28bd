package handlers

import (
	"aisleplan/internal/dto"
	"aisleplan/internal/models"
	"aisleplan/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GuestHandler struct {
	guestService *service.GuestService
	logger       *zap.Logger
}

func NewGuestHandler(guestService *service.GuestService, logger *zap.Logger) *GuestHandler {
	return &GuestHandler{
		guestService: guestService,
		logger:       logger,
	}
}

// Create godoc
// @Summary Add a guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Param request body dto.CreateGuestRequest true "Guest"
// @Success 201 {object} dto.GuestResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/weddings/{id}/guests [post]
func (h *GuestHandler) Create(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	guest, err := h.guestService.CreateGuest(c.Context(), uid, weddingID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create guest")
	}

	return c.Status(fiber.StatusCreated).JSON(guestResponse(guest))
}

// List godoc
// @Summary List guests of a wedding
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Success 200 {array} dto.GuestResponse
// @Router /api/v1/weddings/{id}/guests [get]
func (h *GuestHandler) List(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	guests, err := h.guestService.ListGuests(c.Context(), uid, weddingID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list guests")
	}

	resp := make([]dto.GuestResponse, 0, len(guests))
	for _, g := range guests {
		resp = append(resp, guestResponse(g))
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary Update a guest
// @Description Partial update; omitted fields are left unchanged
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Fields to update"
// @Success 200 {object} dto.GuestResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/guests/{id} [put]
func (h *GuestHandler) Update(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	guestID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	guest, err := h.guestService.UpdateGuest(c.Context(), uid, guestID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update guest")
	}

	return c.JSON(guestResponse(guest))
}

// UpdateRSVP godoc
// @Summary Set a guest's RSVP status
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateRSVPRequest true "RSVP status"
// @Success 200 {object} dto.GuestResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/guests/{id}/rsvp [put]
func (h *GuestHandler) UpdateRSVP(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	guestID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateRSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	status := models.RSVPStatus(req.Status)
	switch status {
	case models.RSVPPending, models.RSVPAccepted, models.RSVPDeclined:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid RSVP status",
		})
	}

	guest, err := h.guestService.UpdateRSVP(c.Context(), uid, guestID, status)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update RSVP")
	}

	return c.JSON(guestResponse(guest))
}

// Delete godoc
// @Summary Remove a guest
// @Tags guests
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/guests/{id} [delete]
func (h *GuestHandler) Delete(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	guestID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.guestService.DeleteGuest(c.Context(), uid, guestID); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete guest")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
