package handlers

import (
	"aisleplan/internal/dto"
	"aisleplan/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Create the wedding's budget
// @Description A wedding has at most one budget; a second create is rejected
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Param request body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} dto.BudgetResponse
// @Failure 409 {object} map[string]string
// @Router /api/v1/weddings/{id}/budget [post]
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	budget, err := h.budgetService.CreateBudget(c.Context(), uid, weddingID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create budget")
	}

	return c.Status(fiber.StatusCreated).JSON(budgetResponse(budget))
}

// Get godoc
// @Summary Get the wedding's budget
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/weddings/{id}/budget [get]
func (h *BudgetHandler) Get(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	budget, err := h.budgetService.GetBudget(c.Context(), uid, weddingID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get budget")
	}

	return c.JSON(budgetResponse(budget))
}

// Update godoc
// @Summary Update a budget
// @Description Partial update; a nil allocations map leaves allocations unchanged
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget ID"
// @Param request body dto.UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/budgets/{id} [put]
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	budgetID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	budget, err := h.budgetService.UpdateBudget(c.Context(), uid, budgetID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update budget")
	}

	return c.JSON(budgetResponse(budget))
}

// Summary godoc
// @Summary Get the budget summary
// @Description Aggregated totals and per-category breakdowns computed from current expenses
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget ID"
// @Success 200 {object} dto.BudgetSummaryResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/budgets/{id}/summary [get]
func (h *BudgetHandler) Summary(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	budgetID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.budgetService.Summarize(c.Context(), uid, budgetID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to compute budget summary")
	}

	return c.JSON(budgetSummaryResponse(summary))
}

// CreateExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget ID"
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/budgets/{id}/expenses [post]
func (h *BudgetHandler) CreateExpense(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	budgetID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category is required",
		})
	}

	expense, err := h.budgetService.CreateExpense(c.Context(), uid, budgetID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create expense")
	}

	return c.Status(fiber.StatusCreated).JSON(expenseResponse(expense))
}

// ListExpenses godoc
// @Summary List a budget's expenses
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget ID"
// @Success 200 {array} dto.ExpenseResponse
// @Router /api/v1/budgets/{id}/expenses [get]
func (h *BudgetHandler) ListExpenses(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	budgetID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	expenses, err := h.budgetService.ListExpenses(c.Context(), uid, budgetID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list expenses")
	}

	resp := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, expenseResponse(e))
	}
	return c.JSON(resp)
}

// UpdateExpense godoc
// @Summary Update an expense
// @Description Partial update; paid_amount derives a status, an explicit status wins
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Param request body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [put]
func (h *BudgetHandler) UpdateExpense(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	expenseID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	expense, err := h.budgetService.UpdateExpense(c.Context(), uid, expenseID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update expense")
	}

	return c.JSON(expenseResponse(expense))
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [delete]
func (h *BudgetHandler) DeleteExpense(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	expenseID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.budgetService.DeleteExpense(c.Context(), uid, expenseID); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete expense")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
