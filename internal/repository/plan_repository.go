package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// PlanRepository defines persistence access for subscription plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) error
	Update(ctx context.Context, filter domain.TenantFilter, plan *domain.Plan) error
	Delete(ctx context.Context, filter domain.TenantFilter, id int64) error
	GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Plan, error)
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Plan, error)
	ListPublic(ctx context.Context) ([]domain.Plan, error)
}

type planRepository struct {
	pool *pgxpool.Pool
}

// NewPlanRepository returns a Postgres-backed implementation.
func NewPlanRepository(pool *pgxpool.Pool) PlanRepository {
	return &planRepository{pool: pool}
}

func (r *planRepository) Create(ctx context.Context, plan *domain.Plan) error {
	const query = `
        INSERT INTO plans (gym_id, name, price_cents, duration_days, public)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		plan.GymID,
		plan.Name,
		plan.PriceCents,
		plan.DurationDays,
		plan.Public,
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
}

func (r *planRepository) Update(ctx context.Context, filter domain.TenantFilter, plan *domain.Plan) error {
	const query = `
        UPDATE plans SET name=$1, price_cents=$2, duration_days=$3, public=$4, updated_at=NOW()
        WHERE id=$5 AND ($6 OR gym_id = $7)`

	cmd, err := r.pool.Exec(ctx, query,
		plan.Name,
		plan.PriceCents,
		plan.DurationDays,
		plan.Public,
		plan.ID,
		filter.All,
		filter.GymID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *planRepository) Delete(ctx context.Context, filter domain.TenantFilter, id int64) error {
	const query = `DELETE FROM plans WHERE id=$1 AND ($2 OR gym_id = $3)`

	cmd, err := r.pool.Exec(ctx, query, id, filter.All, filter.GymID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *planRepository) GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Plan, error) {
	const query = `
        SELECT id, gym_id, name, price_cents, duration_days, public, created_at, updated_at
        FROM plans WHERE id=$1 AND ($2 OR gym_id = $3)`

	var plan domain.Plan
	if err := r.pool.QueryRow(ctx, query, id, filter.All, filter.GymID).Scan(
		&plan.ID,
		&plan.GymID,
		&plan.Name,
		&plan.PriceCents,
		&plan.DurationDays,
		&plan.Public,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Plan, error) {
	const query = `
        SELECT id, gym_id, name, price_cents, duration_days, public, created_at, updated_at
        FROM plans WHERE ($1 OR gym_id = $2)
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, filter.All, filter.GymID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlans(rows)
}

// ListPublic serves the unauthenticated plan listing. Public visibility is
// an explicit flag, not a tenant bypass.
func (r *planRepository) ListPublic(ctx context.Context) ([]domain.Plan, error) {
	const query = `
        SELECT id, gym_id, name, price_cents, duration_days, public, created_at, updated_at
        FROM plans WHERE public = TRUE
        ORDER BY gym_id, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlans(rows)
}

func scanPlans(rows pgx.Rows) ([]domain.Plan, error) {
	var plans []domain.Plan
	for rows.Next() {
		var plan domain.Plan
		if err := rows.Scan(
			&plan.ID,
			&plan.GymID,
			&plan.Name,
			&plan.PriceCents,
			&plan.DurationDays,
			&plan.Public,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}
