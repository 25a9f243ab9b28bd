package handlers

import (
	"aisleplan/internal/dto"
	"aisleplan/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TableHandler struct {
	seatingService *service.SeatingService
	logger         *zap.Logger
}

func NewTableHandler(seatingService *service.SeatingService, logger *zap.Logger) *TableHandler {
	return &TableHandler{
		seatingService: seatingService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Add a table
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Param request body dto.CreateTableRequest true "Table"
// @Success 201 {object} dto.TableResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/weddings/{id}/tables [post]
func (h *TableHandler) Create(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateTableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" || req.Capacity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and a positive capacity are required",
		})
	}

	table, err := h.seatingService.CreateTable(c.Context(), uid, weddingID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create table")
	}

	return c.Status(fiber.StatusCreated).JSON(tableResponse(table, nil))
}

// List godoc
// @Summary List tables of a wedding with seated guests
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Success 200 {array} dto.TableResponse
// @Router /api/v1/weddings/{id}/tables [get]
func (h *TableHandler) List(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	tables, err := h.seatingService.ListTables(c.Context(), uid, weddingID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list tables")
	}

	resp := make([]dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		guests, err := h.seatingService.GuestsAtTable(c.Context(), t.ID)
		if err != nil {
			return serviceError(c, h.logger, err, "Failed to list seated guests")
		}
		resp = append(resp, tableResponse(t, guests))
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary Update a table
// @Description Partial update; omitted fields are left unchanged
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Param request body dto.UpdateTableRequest true "Fields to update"
// @Success 200 {object} dto.TableResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/tables/{id} [put]
func (h *TableHandler) Update(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	tableID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	table, err := h.seatingService.UpdateTable(c.Context(), uid, tableID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update table")
	}

	return c.JSON(tableResponse(table, nil))
}

// AssignGuests godoc
// @Summary Assign guests to a table
// @Description Replaces the table's seating; a failed validation returns 422 with the violations and writes nothing
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Param request body dto.AssignGuestsRequest true "Guest IDs"
// @Success 200 {object} dto.SeatingValidationResponse
// @Failure 422 {object} dto.SeatingValidationResponse
// @Router /api/v1/tables/{id}/assignments [put]
func (h *TableHandler) AssignGuests(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	tableID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.AssignGuestsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	guestIDs := make([]uuid.UUID, 0, len(req.GuestIDs))
	for _, raw := range req.GuestIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid guest ID: " + raw,
			})
		}
		guestIDs = append(guestIDs, id)
	}

	validation, err := h.seatingService.AssignGuests(c.Context(), uid, tableID, guestIDs)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to assign guests")
	}

	if !validation.IsValid {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(seatingValidationResponse(validation))
	}
	return c.JSON(seatingValidationResponse(validation))
}

// Delete godoc
// @Summary Remove a table
// @Description Seated guests are unassigned, not deleted
// @Tags tables
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/tables/{id} [delete]
func (h *TableHandler) Delete(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	tableID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.seatingService.DeleteTable(c.Context(), uid, tableID); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete table")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
