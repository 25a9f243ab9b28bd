package handlers

import (
	"aisleplan/internal/dto"
	"aisleplan/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type VendorHandler struct {
	vendorService *service.VendorService
	logger        *zap.Logger
}

func NewVendorHandler(vendorService *service.VendorService, logger *zap.Logger) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Add a vendor
// @Description Creates a vendor; a priced vendor's expenses are synchronized into the wedding budget
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Param request body dto.CreateVendorRequest true "Vendor"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/weddings/{id}/vendors [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateVendorRequest
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

	vendor, err := h.vendorService.CreateVendor(c.Context(), uid, weddingID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create vendor")
	}

	return c.Status(fiber.StatusCreated).JSON(vendorResponse(vendor))
}

// List godoc
// @Summary List vendors of a wedding
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Success 200 {array} dto.VendorResponse
// @Router /api/v1/weddings/{id}/vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	vendors, err := h.vendorService.ListVendors(c.Context(), uid, weddingID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list vendors")
	}

	resp := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		resp = append(resp, vendorResponse(v))
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary Get a vendor
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/vendors/{id} [get]
func (h *VendorHandler) Get(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	vendorID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	vendor, err := h.vendorService.GetVendor(c.Context(), uid, vendorID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get vendor")
	}

	return c.JSON(vendorResponse(vendor))
}

// Update godoc
// @Summary Update a vendor
// @Description Partial update; pricing changes resynchronize the vendor's budget expenses
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Param request body dto.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/vendors/{id} [put]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	vendorID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	vendor, err := h.vendorService.UpdateVendor(c.Context(), uid, vendorID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update vendor")
	}

	return c.JSON(vendorResponse(vendor))
}

// Delete godoc
// @Summary Remove a vendor
// @Description Derived expenses survive; their vendor reference is cleared
// @Tags vendors
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/vendors/{id} [delete]
func (h *VendorHandler) Delete(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	vendorID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.vendorService.DeleteVendor(c.Context(), uid, vendorID); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete vendor")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
