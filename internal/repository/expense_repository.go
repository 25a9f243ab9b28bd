package repository

import (
	"context"

	"aisleplan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var expenseColumns = []string{
	"id", "budget_id", "vendor_id", "category", "description", "amount",
	"status", "paid_amount", "paid_at", "due_date", "type", "created_at", "updated_at",
}

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	sql, args, err := expenseInsert(e).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var e models.Expense
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.BudgetID, &e.VendorID, &e.Category, &e.Description, &e.Amount,
		&e.Status, &e.PaidAmount, &e.PaidAt, &e.DueDate, &e.Type, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *ExpenseRepository) ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"budget_id": budgetID}).
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

	var expenses []*models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(
			&e.ID, &e.BudgetID, &e.VendorID, &e.Category, &e.Description, &e.Amount,
			&e.Status, &e.PaidAmount, &e.PaidAt, &e.DueDate, &e.Type, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}

	return expenses, rows.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, e *models.Expense) error {
	query := squirrel.Update("expenses").
		Set("category", e.Category).
		Set("description", e.Description).
		Set("amount", e.Amount).
		Set("status", e.Status).
		Set("paid_amount", e.PaidAmount).
		Set("paid_at", e.PaidAt).
		Set("due_date", e.DueDate).
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

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ReplaceForVendor deletes every expense referencing the vendor and inserts
// the given replacements in a single transaction, so concurrent readers never
// observe a partially synchronized state.
func (r *ExpenseRepository) ReplaceForVendor(ctx context.Context, vendorID uuid.UUID, expenses []*models.Expense) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	del := squirrel.Delete("expenses").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := del.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	for _, e := range expenses {
		sql, args, err := expenseInsert(e).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func expenseInsert(e *models.Expense) squirrel.InsertBuilder {
	return squirrel.Insert("expenses").
		Columns(expenseColumns...).
		Values(e.ID, e.BudgetID, e.VendorID, e.Category, e.Description, e.Amount,
			e.Status, e.PaidAmount, e.PaidAt, e.DueDate, e.Type, e.CreatedAt, e.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)
}
