package handlers

import (
	"aisleplan/internal/dto"
	"aisleplan/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TimelineHandler struct {
	timelineService *service.TimelineService
	logger          *zap.Logger
}

func NewTimelineHandler(timelineService *service.TimelineService, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Add a timeline event
// @Tags timeline
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Param request body dto.CreateTimelineEventRequest true "Event"
// @Success 201 {object} dto.TimelineEventResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/weddings/{id}/timeline [post]
func (h *TimelineHandler) Create(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateTimelineEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Title == "" || req.StartsAt.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and starts_at are required",
		})
	}

	event, err := h.timelineService.CreateEvent(c.Context(), uid, weddingID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create timeline event")
	}

	return c.Status(fiber.StatusCreated).JSON(timelineEventResponse(event))
}

// List godoc
// @Summary List timeline events of a wedding
// @Tags timeline
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Success 200 {array} dto.TimelineEventResponse
// @Router /api/v1/weddings/{id}/timeline [get]
func (h *TimelineHandler) List(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	events, err := h.timelineService.ListEvents(c.Context(), uid, weddingID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list timeline events")
	}

	resp := make([]dto.TimelineEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, timelineEventResponse(e))
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary Update a timeline event
// @Description Partial update; omitted fields are left unchanged
// @Tags timeline
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.UpdateTimelineEventRequest true "Fields to update"
// @Success 200 {object} dto.TimelineEventResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/timeline/{id} [put]
func (h *TimelineHandler) Update(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTimelineEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	event, err := h.timelineService.UpdateEvent(c.Context(), uid, eventID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update timeline event")
	}

	return c.JSON(timelineEventResponse(event))
}

// Delete godoc
// @Summary Remove a timeline event
// @Tags timeline
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/timeline/{id} [delete]
func (h *TimelineHandler) Delete(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.timelineService.DeleteEvent(c.Context(), uid, eventID); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete timeline event")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
