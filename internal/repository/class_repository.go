package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// ClassRepository defines persistence access for scheduled classes.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) error
	Update(ctx context.Context, filter domain.TenantFilter, class *domain.Class) error
	Delete(ctx context.Context, filter domain.TenantFilter, id int64) error
	GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Class, error)
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Class, error)
}

type classRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository returns a Postgres-backed implementation.
func NewClassRepository(pool *pgxpool.Pool) ClassRepository {
	return &classRepository{pool: pool}
}

func (r *classRepository) Create(ctx context.Context, class *domain.Class) error {
	const query = `
        INSERT INTO classes (gym_id, name, trainer_id, schedule, capacity)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		class.GymID,
		class.Name,
		class.TrainerID,
		class.Schedule,
		class.Capacity,
	).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
}

func (r *classRepository) Update(ctx context.Context, filter domain.TenantFilter, class *domain.Class) error {
	const query = `
        UPDATE classes SET name=$1, trainer_id=$2, schedule=$3, capacity=$4, updated_at=NOW()
        WHERE id=$5 AND ($6 OR gym_id = $7)`

	cmd, err := r.pool.Exec(ctx, query,
		class.Name,
		class.TrainerID,
		class.Schedule,
		class.Capacity,
		class.ID,
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

func (r *classRepository) Delete(ctx context.Context, filter domain.TenantFilter, id int64) error {
	const query = `DELETE FROM classes WHERE id=$1 AND ($2 OR gym_id = $3)`

	cmd, err := r.pool.Exec(ctx, query, id, filter.All, filter.GymID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *classRepository) GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Class, error) {
	const query = `
        SELECT id, gym_id, name, trainer_id, schedule, capacity, created_at, updated_at
        FROM classes WHERE id=$1 AND ($2 OR gym_id = $3)`

	var class domain.Class
	if err := r.pool.QueryRow(ctx, query, id, filter.All, filter.GymID).Scan(
		&class.ID,
		&class.GymID,
		&class.Name,
		&class.TrainerID,
		&class.Schedule,
		&class.Capacity,
		&class.CreatedAt,
		&class.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Class, error) {
	const query = `
        SELECT id, gym_id, name, trainer_id, schedule, capacity, created_at, updated_at
        FROM classes WHERE ($1 OR gym_id = $2)
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, filter.All, filter.GymID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []domain.Class
	for rows.Next() {
		var class domain.Class
		if err := rows.Scan(
			&class.ID,
			&class.GymID,
			&class.Name,
			&class.TrainerID,
			&class.Schedule,
			&class.Capacity,
			&class.CreatedAt,
			&class.UpdatedAt,
		); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}
