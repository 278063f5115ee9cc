package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// ExpenseRepository defines persistence access for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, filter domain.TenantFilter, id int64) error
	GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Expense, error)
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Expense, error)
	SumAmount(ctx context.Context, filter domain.TenantFilter) (int64, error)
}

type expenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository returns a Postgres-backed implementation.
func NewExpenseRepository(pool *pgxpool.Pool) ExpenseRepository {
	return &expenseRepository{pool: pool}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	const query = `
        INSERT INTO expenses (gym_id, description, category, amount_cents, spent_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		expense.GymID,
		expense.Description,
		expense.Category,
		expense.AmountCents,
		expense.SpentAt,
	).Scan(&expense.ID, &expense.CreatedAt)
}

func (r *expenseRepository) Delete(ctx context.Context, filter domain.TenantFilter, id int64) error {
	const query = `DELETE FROM expenses WHERE id=$1 AND ($2 OR gym_id = $3)`

	cmd, err := r.pool.Exec(ctx, query, id, filter.All, filter.GymID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Expense, error) {
	const query = `
        SELECT id, gym_id, description, category, amount_cents, spent_at, created_at
        FROM expenses WHERE id=$1 AND ($2 OR gym_id = $3)`

	var expense domain.Expense
	if err := r.pool.QueryRow(ctx, query, id, filter.All, filter.GymID).Scan(
		&expense.ID,
		&expense.GymID,
		&expense.Description,
		&expense.Category,
		&expense.AmountCents,
		&expense.SpentAt,
		&expense.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Expense, error) {
	const query = `
        SELECT id, gym_id, description, category, amount_cents, spent_at, created_at
        FROM expenses WHERE ($1 OR gym_id = $2)
        ORDER BY spent_at DESC`

	rows, err := r.pool.Query(ctx, query, filter.All, filter.GymID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(
			&expense.ID,
			&expense.GymID,
			&expense.Description,
			&expense.Category,
			&expense.AmountCents,
			&expense.SpentAt,
			&expense.CreatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) SumAmount(ctx context.Context, filter domain.TenantFilter) (int64, error) {
	const query = `
        SELECT COALESCE(SUM(amount_cents), 0)
        FROM expenses WHERE ($1 OR gym_id = $2)`

	var total int64
	if err := r.pool.QueryRow(ctx, query, filter.All, filter.GymID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
