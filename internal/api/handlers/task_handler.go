package handlers

import (
	"aisleplan/internal/dto"
	"aisleplan/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService *service.TaskService
	logger      *zap.Logger
}

func NewTaskHandler(taskService *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// Create godoc
// @Summary Add a planning task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Param request body dto.CreateTaskRequest true "Task"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/weddings/{id}/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
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

	task, err := h.taskService.CreateTask(c.Context(), uid, weddingID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create task")
	}

	return c.Status(fiber.StatusCreated).JSON(taskResponse(task))
}

// List godoc
// @Summary List tasks of a wedding
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wedding ID"
// @Success 200 {array} dto.TaskResponse
// @Router /api/v1/weddings/{id}/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	weddingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Context(), uid, weddingID)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list tasks")
	}

	resp := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, taskResponse(t))
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary Update a task
// @Description Partial update; omitted fields are left unchanged
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	taskID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.taskService.UpdateTask(c.Context(), uid, taskID, &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update task")
	}

	return c.JSON(taskResponse(task))
}

// Delete godoc
// @Summary Remove a task
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	taskID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Context(), uid, taskID); err != nil {
		return serviceError(c, h.logger, err, "Failed to delete task")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
