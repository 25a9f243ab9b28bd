package repository

import (
	"context"

	"aisleplan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var tableColumns = []string{
	"id", "wedding_id", "name", "capacity", "min_capacity", "shape", "created_at", "updated_at",
}

type TableRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTableRepository(db *pgxpool.Pool, logger *zap.Logger) *TableRepository {
	return &TableRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TableRepository) Create(ctx context.Context, t *models.Table) error {
	query := squirrel.Insert("tables").
		Columns(tableColumns...).
		Values(t.ID, t.WeddingID, t.Name, t.Capacity, t.MinCapacity, t.Shape, t.CreatedAt, t.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TableRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Table, error) {
	query := squirrel.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var t models.Table
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&t.ID, &t.WeddingID, &t.Name, &t.Capacity, &t.MinCapacity, &t.Shape, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *TableRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Table, error) {
	query := squirrel.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"wedding_id": weddingID}).
		OrderBy("name ASC").
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

	var tables []*models.Table
	for rows.Next() {
		var t models.Table
		if err := rows.Scan(
			&t.ID, &t.WeddingID, &t.Name, &t.Capacity, &t.MinCapacity, &t.Shape, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tables = append(tables, &t)
	}

	return tables, rows.Err()
}

func (r *TableRepository) Update(ctx context.Context, t *models.Table) error {
	query := squirrel.Update("tables").
		Set("name", t.Name).
		Set("capacity", t.Capacity).
		Set("min_capacity", t.MinCapacity).
		Set("shape", t.Shape).
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

func (r *TableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("tables").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
