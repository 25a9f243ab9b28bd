package repository

import (
	"context"

	"aisleplan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var photoColumns = []string{
	"id", "wedding_id", "uploader_id", "caption", "album", "file_name",
	"file_size", "file_url", "created_at", "updated_at",
}

type PhotoRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPhotoRepository(db *pgxpool.Pool, logger *zap.Logger) *PhotoRepository {
	return &PhotoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PhotoRepository) Create(ctx context.Context, p *models.Photo) error {
	query := squirrel.Insert("photos").
		Columns(photoColumns...).
		Values(p.ID, p.WeddingID, p.UploaderID, p.Caption, p.Album, p.FileName,
			p.FileSize, p.FileURL, p.CreatedAt, p.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *PhotoRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	query := squirrel.Select(photoColumns...).
		From("photos").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p models.Photo
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.WeddingID, &p.UploaderID, &p.Caption, &p.Album, &p.FileName,
		&p.FileSize, &p.FileURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PhotoRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Photo, error) {
	query := squirrel.Select(photoColumns...).
		From("photos").
		Where(squirrel.Eq{"wedding_id": weddingID}).
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

	var photos []*models.Photo
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(
			&p.ID, &p.WeddingID, &p.UploaderID, &p.Caption, &p.Album, &p.FileName,
			&p.FileSize, &p.FileURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		photos = append(photos, &p)
	}

	return photos, rows.Err()
}

func (r *PhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("photos").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
