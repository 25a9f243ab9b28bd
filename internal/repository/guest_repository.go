package repository

import (
	"context"
	"time"

	"aisleplan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var guestColumns = []string{
	"id", "wedding_id", "name", "email", "phone", "group_name", "rsvp_status",
	"plus_one", "dietary_notes", "table_id", "created_at", "updated_at",
}

type GuestRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGuestRepository(db *pgxpool.Pool, logger *zap.Logger) *GuestRepository {
	return &GuestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *GuestRepository) Create(ctx context.Context, g *models.Guest) error {
	query := squirrel.Insert("guests").
		Columns(guestColumns...).
		Values(g.ID, g.WeddingID, g.Name, g.Email, g.Phone, g.Group, g.RSVPStatus,
			g.PlusOne, g.DietaryNotes, g.TableID, g.CreatedAt, g.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *GuestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Guest, error) {
	query := squirrel.Select(guestColumns...).
		From("guests").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var g models.Guest
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&g.ID, &g.WeddingID, &g.Name, &g.Email, &g.Phone, &g.Group, &g.RSVPStatus,
		&g.PlusOne, &g.DietaryNotes, &g.TableID, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *GuestRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Guest, error) {
	return r.listBy(ctx, squirrel.Eq{"wedding_id": weddingID})
}

func (r *GuestRepository) ListByTable(ctx context.Context, tableID uuid.UUID) ([]*models.Guest, error) {
	return r.listBy(ctx, squirrel.Eq{"table_id": tableID})
}

func (r *GuestRepository) listBy(ctx context.Context, pred squirrel.Eq) ([]*models.Guest, error) {
	query := squirrel.Select(guestColumns...).
		From("guests").
		Where(pred).
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

	var guests []*models.Guest
	for rows.Next() {
		var g models.Guest
		if err := rows.Scan(
			&g.ID, &g.WeddingID, &g.Name, &g.Email, &g.Phone, &g.Group, &g.RSVPStatus,
			&g.PlusOne, &g.DietaryNotes, &g.TableID, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		guests = append(guests, &g)
	}

	return guests, rows.Err()
}

func (r *GuestRepository) Update(ctx context.Context, g *models.Guest) error {
	query := squirrel.Update("guests").
		Set("name", g.Name).
		Set("email", g.Email).
		Set("phone", g.Phone).
		Set("group_name", g.Group).
		Set("rsvp_status", g.RSVPStatus).
		Set("plus_one", g.PlusOne).
		Set("dietary_notes", g.DietaryNotes).
		Set("table_id", g.TableID).
		Set("updated_at", g.UpdatedAt).
		Where(squirrel.Eq{"id": g.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *GuestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("guests").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ReplaceTableAssignments clears the table from guests no longer seated there
// and seats the given guests, in one transaction.
func (r *GuestRepository) ReplaceTableAssignments(ctx context.Context, tableID uuid.UUID, guestIDs []uuid.UUID, updatedAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	clear := squirrel.Update("guests").
		Set("table_id", nil).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"table_id": tableID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := clear.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	if len(guestIDs) > 0 {
		assign := squirrel.Update("guests").
			Set("table_id", tableID).
			Set("updated_at", updatedAt).
			Where(squirrel.Eq{"id": guestIDs}).
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := assign.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
