package handlers

import (
	"errors"
	"time"

	"aisleplan/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// userID extracts the authenticated user's ID set by the auth middleware.
// The returned error is a fiber error; handlers return it as-is and the app
// error handler writes the response.
func userID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userID").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	return id, nil
}

// uuidParam parses a path parameter as a UUID.
func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// serviceError maps service sentinels onto HTTP statuses. Unknown errors are
// logged and surfaced as a generic 500.
func serviceError(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied",
		})
	case errors.Is(err, service.ErrBudgetExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Budget already exists for this wedding",
		})
	case errors.Is(err, service.ErrNoBudget):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Wedding has no budget",
		})
	}
	logger.Error(fallback, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}

func fmtTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func fmtTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func uuidPtrString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
