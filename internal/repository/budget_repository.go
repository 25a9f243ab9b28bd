package repository

import (
	"context"
	"errors"

	"aisleplan/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrNoRows is re-exported so callers do not need to import pgx directly.
var ErrNoRows = pgx.ErrNoRows

type BudgetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the budget and its category allocations in one transaction.
func (r *BudgetRepository) Create(ctx context.Context, b *models.Budget) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insert := squirrel.Insert("budgets").
		Columns("id", "wedding_id", "total_amount", "created_at", "updated_at").
		Values(b.ID, b.WeddingID, b.TotalAmount, b.CreatedAt, b.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	if err := insertAllocations(ctx, tx, b.ID, b.Allocations); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *BudgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *BudgetRepository) GetByWeddingID(ctx context.Context, weddingID uuid.UUID) (*models.Budget, error) {
	return r.getBy(ctx, squirrel.Eq{"wedding_id": weddingID})
}

func (r *BudgetRepository) getBy(ctx context.Context, pred squirrel.Eq) (*models.Budget, error) {
	query := squirrel.Select("id", "wedding_id", "total_amount", "created_at", "updated_at").
		From("budgets").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var b models.Budget
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&b.ID, &b.WeddingID, &b.TotalAmount, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Allocations, err = r.loadAllocations(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// Update writes the budget row and, when allocations is non-nil, replaces the
// allocation rows in the same transaction.
func (r *BudgetRepository) Update(ctx context.Context, b *models.Budget, replaceAllocations bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	update := squirrel.Update("budgets").
		Set("total_amount", b.TotalAmount).
		Set("updated_at", b.UpdatedAt).
		Where(squirrel.Eq{"id": b.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := update.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	if replaceAllocations {
		del := squirrel.Delete("budget_allocations").
			Where(squirrel.Eq{"budget_id": b.ID}).
			PlaceholderFormat(squirrel.Dollar)
		sql, args, err := del.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
		if err := insertAllocations(ctx, tx, b.ID, b.Allocations); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *BudgetRepository) loadAllocations(ctx context.Context, budgetID uuid.UUID) (map[string]float64, error) {
	query := squirrel.Select("category", "amount").
		From("budget_allocations").
		Where(squirrel.Eq{"budget_id": budgetID}).
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

	allocations := make(map[string]float64)
	for rows.Next() {
		var category string
		var amount float64
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, err
		}
		allocations[category] = amount
	}

	return allocations, rows.Err()
}

func insertAllocations(ctx context.Context, tx pgx.Tx, budgetID uuid.UUID, allocations map[string]float64) error {
	if len(allocations) == 0 {
		return nil
	}

	builder := squirrel.Insert("budget_allocations").
		Columns("budget_id", "category", "amount").
		PlaceholderFormat(squirrel.Dollar)
	for category, amount := range allocations {
		builder = builder.Values(budgetID, category, amount)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
