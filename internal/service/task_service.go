package service

import (
	"context"
	"time"

	"aisleplan/internal/dto"
	"aisleplan/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskStore is the slice of the task repository the service needs.
type TaskStore interface {
	Create(ctx context.Context, t *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, t *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskService struct {
	tasks    TaskStore
	weddings WeddingGetter
	logger   *zap.Logger
}

func NewTaskService(tasks TaskStore, weddings WeddingGetter, logger *zap.Logger) *TaskService {
	return &TaskService{
		tasks:    tasks,
		weddings: weddings,
		logger:   logger,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, userID, weddingID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New(),
		WeddingID:   weddingID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    models.TaskPriority(defaultString(req.Priority, string(models.TaskPriorityMedium))),
		Status:      models.TaskStatusOpen,
		Assignee:    req.Assignee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID, weddingID uuid.UUID) ([]*models.Task, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}
	return s.tasks.ListByWedding(ctx, weddingID)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Priority != nil {
		task.Priority = models.TaskPriority(*req.Priority)
	}
	if req.Status != nil {
		task.Status = models.TaskStatus(*req.Status)
	}
	if req.Assignee != nil {
		task.Assignee = *req.Assignee
	}
	task.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, taskID)
}

func (s *TaskService) ownedTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := ensureWeddingOwner(ctx, s.weddings, task.WeddingID, userID); err != nil {
		return nil, err
	}
	return task, nil
}
