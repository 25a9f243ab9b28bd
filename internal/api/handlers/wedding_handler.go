package handlers

import (
	"aisleplan/internal/dto"
	"aisleplan/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type WeddingHandler struct {
	weddingService *service.WeddingService
	logger         *zap.Logger
}

func NewWeddingHandler(weddingService *service.WeddingService, logger *zap.Logger) *WeddingHandler {
	return &WeddingHandler{
		weddingService: weddingService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Create a wedding
// @Description Create a new wedding owned by the authenticated user
// @Tags weddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWeddingRequest true "Wedding"
// @Success 201 {object} dto.WeddingResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/weddings [post]
func (h *WeddingHandler) Create(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.CreateWeddingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	wedding, err := h.weddingService.CreateWedding(c.Context(), uid, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create wedding")
	}

	return c.Status(fiber.StatusCreated).JSON(weddingResponse(wedding))
}

// List godoc
// @Summary List weddings
// @Description List the authenticated user's weddings
// @Tags weddings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.WeddingResponse
// @Router /api/v1/weddings [get]
func (h *WeddingHandler) List(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	weddings, err := h.weddingService.ListWeddings(c.Context(), uid)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list weddings")
	}

	resp := make([]dto.WeddingResponse, 0, len(weddings))
	for _, w := range weddings {
		resp = append(resp, weddingResponse(w))
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary Get a wedding
// @Tags weddings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Success 200 {object} dto.WeddingResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/weddings/{id} [get]
func (h *WeddingHandler) Get(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	wedding, err := h.weddingService.GetWedding(c.Context(), uid, id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get wedding")
	}

	return c.JSON(weddingResponse(wedding))
}

// Update godoc
// @Summary Update a wedding
// @Description Partial update; omitted fields are left unchanged
// @Tags weddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Param request body dto.UpdateWeddingRequest true "Fields to update"
// @Success 200 {object} dto.WeddingResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/weddings/{id} [put]
func (h *WeddingHandler) Update(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateWeddingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	wedding, err := h.weddingService.UpdateWedding(c.Context(), uid, id, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update wedding")
	}

	return c.JSON(weddingResponse(wedding))
}

// Delete godoc
// @Summary Delete a wedding
// @Tags weddings
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/weddings/{id} [delete]
func (h *WeddingHandler) Delete(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.weddingService.DeleteWedding(c.Context(), uid, id); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete wedding")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
