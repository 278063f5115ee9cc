package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// PaymentRepository defines persistence access for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, filter domain.TenantFilter, id int64) error
	GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Payment, error)
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Payment, error)
	SumAmount(ctx context.Context, filter domain.TenantFilter) (int64, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (gym_id, member_id, amount_cents, method, paid_at, note)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		payment.GymID,
		payment.MemberID,
		payment.AmountCents,
		payment.Method,
		payment.PaidAt,
		payment.Note,
	).Scan(&payment.ID, &payment.CreatedAt)
}

func (r *paymentRepository) Delete(ctx context.Context, filter domain.TenantFilter, id int64) error {
	const query = `DELETE FROM payments WHERE id=$1 AND ($2 OR gym_id = $3)`

	cmd, err := r.pool.Exec(ctx, query, id, filter.All, filter.GymID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Payment, error) {
	const query = `
        SELECT id, gym_id, member_id, amount_cents, method, paid_at, note, created_at
        FROM payments WHERE id=$1 AND ($2 OR gym_id = $3)`

	var payment domain.Payment
	if err := r.pool.QueryRow(ctx, query, id, filter.All, filter.GymID).Scan(
		&payment.ID,
		&payment.GymID,
		&payment.MemberID,
		&payment.AmountCents,
		&payment.Method,
		&payment.PaidAt,
		&payment.Note,
		&payment.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Payment, error) {
	const query = `
        SELECT id, gym_id, member_id, amount_cents, method, paid_at, note, created_at
        FROM payments WHERE ($1 OR gym_id = $2)
        ORDER BY paid_at DESC`

	rows, err := r.pool.Query(ctx, query, filter.All, filter.GymID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.GymID,
			&payment.MemberID,
			&payment.AmountCents,
			&payment.Method,
			&payment.PaidAt,
			&payment.Note,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) SumAmount(ctx context.Context, filter domain.TenantFilter) (int64, error) {
	const query = `
        SELECT COALESCE(SUM(amount_cents), 0)
        FROM payments WHERE ($1 OR gym_id = $2)`

	var total int64
	if err := r.pool.QueryRow(ctx, query, filter.All, filter.GymID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
