package repository

import (
	"context"

	"aisleplan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var taskColumns = []string{
	"id", "wedding_id", "title", "description", "due_date", "priority",
	"status", "assignee", "created_at", "updated_at",
}

type TaskRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TaskRepository) Create(ctx context.Context, t *models.Task) error {
	query := squirrel.Insert("tasks").
		Columns(taskColumns...).
		Values(t.ID, t.WeddingID, t.Title, t.Description, t.DueDate, t.Priority,
			t.Status, t.Assignee, t.CreatedAt, t.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	query := squirrel.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var t models.Task
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&t.ID, &t.WeddingID, &t.Title, &t.Description, &t.DueDate, &t.Priority,
		&t.Status, &t.Assignee, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *TaskRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Task, error) {
	query := squirrel.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"wedding_id": weddingID}).
		OrderBy("due_date ASC NULLS LAST", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.WeddingID, &t.Title, &t.Description, &t.DueDate, &t.Priority,
			&t.Status, &t.Assignee, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, &t)
	}

	return tasks, rows.Err()
}

func (r *TaskRepository) Update(ctx context.Context, t *models.Task) error {
	query := squirrel.Update("tasks").
		Set("title", t.Title).
		Set("description", t.Description).
		Set("due_date", t.DueDate).
		Set("priority", t.Priority).
		Set("status", t.Status).
		Set("assignee", t.Assignee).
		Set("updated_at", t.UpdatedAt).
		Where(squirrel.Eq{"id": t.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
