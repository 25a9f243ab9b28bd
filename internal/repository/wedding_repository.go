package repository

import (
	"context"

	"aisleplan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var weddingColumns = []string{
	"id", "owner_id", "title", "partner_one", "partner_two", "date",
	"venue", "city", "guest_estimate", "notes", "created_at", "updated_at",
}

type WeddingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewWeddingRepository(db *pgxpool.Pool, logger *zap.Logger) *WeddingRepository {
	return &WeddingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *WeddingRepository) Create(ctx context.Context, w *models.Wedding) error {
	query := squirrel.Insert("weddings").
		Columns(weddingColumns...).
		Values(w.ID, w.OwnerID, w.Title, w.PartnerOne, w.PartnerTwo, w.Date,
			w.Venue, w.City, w.GuestEstimate, w.Notes, w.CreatedAt, w.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *WeddingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Wedding, error) {
	query := squirrel.Select(weddingColumns...).
		From("weddings").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var w models.Wedding
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&w.ID, &w.OwnerID, &w.Title, &w.PartnerOne, &w.PartnerTwo, &w.Date,
		&w.Venue, &w.City, &w.GuestEstimate, &w.Notes, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &w, nil
}

func (r *WeddingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Wedding, error) {
	query := squirrel.Select(weddingColumns...).
		From("weddings").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
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

	var weddings []*models.Wedding
	for rows.Next() {
		var w models.Wedding
		if err := rows.Scan(
			&w.ID, &w.OwnerID, &w.Title, &w.PartnerOne, &w.PartnerTwo, &w.Date,
			&w.Venue, &w.City, &w.GuestEstimate, &w.Notes, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, err
		}
		weddings = append(weddings, &w)
	}

	return weddings, rows.Err()
}

func (r *WeddingRepository) Update(ctx context.Context, w *models.Wedding) error {
	query := squirrel.Update("weddings").
		Set("title", w.Title).
		Set("partner_one", w.PartnerOne).
		Set("partner_two", w.PartnerTwo).
		Set("date", w.Date).
		Set("venue", w.Venue).
		Set("city", w.City).
		Set("guest_estimate", w.GuestEstimate).
		Set("notes", w.Notes).
		Set("updated_at", w.UpdatedAt).
		Where(squirrel.Eq{"id": w.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *WeddingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("weddings").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
