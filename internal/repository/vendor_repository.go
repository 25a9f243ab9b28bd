package repository

import (
	"context"

	"aisleplan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var vendorColumns = []string{
	"id", "wedding_id", "name", "company", "type", "status", "email", "phone",
	"website", "price", "deposit_amount", "deposit_paid", "contract_signed",
	"notes", "created_at", "updated_at",
}

type VendorRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewVendorRepository(db *pgxpool.Pool, logger *zap.Logger) *VendorRepository {
	return &VendorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *VendorRepository) Create(ctx context.Context, v *models.Vendor) error {
	query := squirrel.Insert("vendors").
		Columns(vendorColumns...).
		Values(v.ID, v.WeddingID, v.Name, v.Company, v.Type, v.Status, v.Email, v.Phone,
			v.Website, v.Price, v.DepositAmount, v.DepositPaid, v.ContractSigned,
			v.Notes, v.CreatedAt, v.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *VendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	query := squirrel.Select(vendorColumns...).
		From("vendors").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var v models.Vendor
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&v.ID, &v.WeddingID, &v.Name, &v.Company, &v.Type, &v.Status, &v.Email, &v.Phone,
		&v.Website, &v.Price, &v.DepositAmount, &v.DepositPaid, &v.ContractSigned,
		&v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *VendorRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Vendor, error) {
	query := squirrel.Select(vendorColumns...).
		From("vendors").
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

	var vendors []*models.Vendor
	for rows.Next() {
		var v models.Vendor
		if err := rows.Scan(
			&v.ID, &v.WeddingID, &v.Name, &v.Company, &v.Type, &v.Status, &v.Email, &v.Phone,
			&v.Website, &v.Price, &v.DepositAmount, &v.DepositPaid, &v.ContractSigned,
			&v.Notes, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		vendors = append(vendors, &v)
	}

	return vendors, rows.Err()
}

func (r *VendorRepository) Update(ctx context.Context, v *models.Vendor) error {
	query := squirrel.Update("vendors").
		Set("name", v.Name).
		Set("company", v.Company).
		Set("type", v.Type).
		Set("status", v.Status).
		Set("email", v.Email).
		Set("phone", v.Phone).
		Set("website", v.Website).
		Set("price", v.Price).
		Set("deposit_amount", v.DepositAmount).
		Set("deposit_paid", v.DepositPaid).
		Set("contract_signed", v.ContractSigned).
		Set("notes", v.Notes).
		Set("updated_at", v.UpdatedAt).
		Where(squirrel.Eq{"id": v.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *VendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("vendors").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
