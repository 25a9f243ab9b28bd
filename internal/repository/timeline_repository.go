package repository

import (
	"context"

	"aisleplan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var timelineColumns = []string{
	"id", "wedding_id", "title", "description", "starts_at", "ends_at",
	"location", "sort_order", "created_at", "updated_at",
}

type TimelineRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTimelineRepository(db *pgxpool.Pool, logger *zap.Logger) *TimelineRepository {
	return &TimelineRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TimelineRepository) Create(ctx context.Context, e *models.TimelineEvent) error {
	query := squirrel.Insert("timeline_events").
		Columns(timelineColumns...).
		Values(e.ID, e.WeddingID, e.Title, e.Description, e.StartsAt, e.EndsAt,
			e.Location, e.SortOrder, e.CreatedAt, e.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TimelineRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TimelineEvent, error) {
	query := squirrel.Select(timelineColumns...).
		From("timeline_events").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var e models.TimelineEvent
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.WeddingID, &e.Title, &e.Description, &e.StartsAt, &e.EndsAt,
		&e.Location, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *TimelineRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.TimelineEvent, error) {
	query := squirrel.Select(timelineColumns...).
		From("timeline_events").
		Where(squirrel.Eq{"wedding_id": weddingID}).
		OrderBy("sort_order ASC", "starts_at ASC").
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

	var events []*models.TimelineEvent
	for rows.Next() {
		var e models.TimelineEvent
		if err := rows.Scan(
			&e.ID, &e.WeddingID, &e.Title, &e.Description, &e.StartsAt, &e.EndsAt,
			&e.Location, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}

	return events, rows.Err()
}

func (r *TimelineRepository) Update(ctx context.Context, e *models.TimelineEvent) error {
	query := squirrel.Update("timeline_events").
		Set("title", e.Title).
		Set("description", e.Description).
		Set("starts_at", e.StartsAt).
		Set("ends_at", e.EndsAt).
		Set("location", e.Location).
		Set("sort_order", e.SortOrder).
		Set("updated_at", e.UpdatedAt).
		Where(squirrel.Eq{"id": e.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TimelineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("timeline_events").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
