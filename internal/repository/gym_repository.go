package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// GymRepository defines persistence access for tenants.
type GymRepository interface {
	Create(ctx context.Context, gym *domain.Gym) error
	Update(ctx context.Context, gym *domain.Gym) error
	GetByID(ctx context.Context, id int64) (*domain.Gym, error)
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Gym, error)
	Count(ctx context.Context) (int64, error)
}

type gymRepository struct {
	pool *pgxpool.Pool
}

// NewGymRepository returns a Postgres-backed implementation.
func NewGymRepository(pool *pgxpool.Pool) GymRepository {
	return &gymRepository{pool: pool}
}

func (r *gymRepository) Create(ctx context.Context, gym *domain.Gym) error {
	const query = `
        INSERT INTO gyms (name, subscription_status)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		gym.Name,
		gym.SubscriptionStatus,
	).Scan(&gym.ID, &gym.CreatedAt, &gym.UpdatedAt)
}

func (r *gymRepository) Update(ctx context.Context, gym *domain.Gym) error {
	const query = `
        UPDATE gyms SET name=$1, subscription_status=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, gym.Name, gym.SubscriptionStatus, gym.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *gymRepository) GetByID(ctx context.Context, id int64) (*domain.Gym, error) {
	const query = `
        SELECT id, name, subscription_status, created_at, updated_at
        FROM gyms WHERE id=$1`

	var gym domain.Gym
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&gym.ID,
		&gym.Name,
		&gym.SubscriptionStatus,
		&gym.CreatedAt,
		&gym.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &gym, nil
}

func (r *gymRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Gym, error) {
	const query = `
        SELECT id, name, subscription_status, created_at, updated_at
        FROM gyms WHERE ($1 OR id = $2)
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, filter.All, filter.GymID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gyms []domain.Gym
	for rows.Next() {
		var gym domain.Gym
		if err := rows.Scan(
			&gym.ID,
			&gym.Name,
			&gym.SubscriptionStatus,
			&gym.CreatedAt,
			&gym.UpdatedAt,
		); err != nil {
			return nil, err
		}
		gyms = append(gyms, gym)
	}
	return gyms, rows.Err()
}

func (r *gymRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM gyms`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
