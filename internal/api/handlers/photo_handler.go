package handlers

import (
	"aisleplan/internal/dto"
	"aisleplan/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PhotoHandler struct {
	photoService *service.PhotoService
	logger       *zap.Logger
}

func NewPhotoHandler(photoService *service.PhotoService, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		logger:       logger,
	}
}

// Upload godoc
// @Summary Upload a photo
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Param file formData file true "Photo file"
// @Param caption formData string false "Caption"
// @Param album formData string false "Album name"
// @Success 201 {object} dto.PhotoResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/weddings/{id}/photos [post]
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	photo, err := h.photoService.UploadPhoto(c.Context(), uid, weddingID, src, file.Filename, c.FormValue("caption"), c.FormValue("album"))
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to upload photo")
	}

	return c.Status(fiber.StatusCreated).JSON(photoResponse(photo))
}

// List godoc
// @Summary List photos of a wedding
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Success 200 {array} dto.PhotoResponse
// @Router /api/v1/weddings/{id}/photos [get]
func (h *PhotoHandler) List(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	photos, err := h.photoService.ListPhotos(c.Context(), uid, weddingID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list photos")
	}

	resp := make([]dto.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		resp = append(resp, photoResponse(p))
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary Remove a photo
// @Description Removes the photo record and its stored file
// @Tags photos
// @Security BearerAuth
// @Param id path string true "Photo ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/photos/{id} [delete]
func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	photoID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.photoService.DeletePhoto(c.Context(), uid, photoID); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete photo")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
