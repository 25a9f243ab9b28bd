package repository

import (
	"context"

	"aisleplan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var invitationColumns = []string{
	"id", "wedding_id", "guest_id", "channel", "token", "status",
	"sent_at", "responded_at", "rsvp_answer", "created_at", "updated_at",
}

type InvitationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInvitationRepository(db *pgxpool.Pool, logger *zap.Logger) *InvitationRepository {
	return &InvitationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *InvitationRepository) Create(ctx context.Context, i *models.Invitation) error {
	query := squirrel.Insert("invitations").
		Columns(invitationColumns...).
		Values(i.ID, i.WeddingID, i.GuestID, i.Channel, i.Token, i.Status,
			i.SentAt, i.RespondedAt, i.RSVPAnswer, i.CreatedAt, i.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *InvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *InvitationRepository) GetByToken(ctx context.Context, token string) (*models.Invitation, error) {
	return r.getBy(ctx, squirrel.Eq{"token": token})
}

func (r *InvitationRepository) getBy(ctx context.Context, pred squirrel.Eq) (*models.Invitation, error) {
	query := squirrel.Select(invitationColumns...).
		From("invitations").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var i models.Invitation
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&i.ID, &i.WeddingID, &i.GuestID, &i.Channel, &i.Token, &i.Status,
		&i.SentAt, &i.RespondedAt, &i.RSVPAnswer, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &i, nil
}

func (r *InvitationRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Invitation, error) {
	query := squirrel.Select(invitationColumns...).
		From("invitations").
		Where(squirrel.Eq{"wedding_id": weddingID}).
		OrderBy("created_at ASC").
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

	var invitations []*models.Invitation
	for rows.Next() {
		var i models.Invitation
		if err := rows.Scan(
			&i.ID, &i.WeddingID, &i.GuestID, &i.Channel, &i.Token, &i.Status,
			&i.SentAt, &i.RespondedAt, &i.RSVPAnswer, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		invitations = append(invitations, &i)
	}

	return invitations, rows.Err()
}

func (r *InvitationRepository) Update(ctx context.Context, i *models.Invitation) error {
	query := squirrel.Update("invitations").
		Set("channel", i.Channel).
		Set("status", i.Status).
		Set("sent_at", i.SentAt).
		Set("responded_at", i.RespondedAt).
		Set("rsvp_answer", i.RSVPAnswer).
		Set("updated_at", i.UpdatedAt).
		Where(squirrel.Eq{"id": i.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *InvitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("invitations").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
