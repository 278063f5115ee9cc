package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// TrainerRepository defines persistence access for trainers.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) error
	Update(ctx context.Context, filter domain.TenantFilter, trainer *domain.Trainer) error
	Delete(ctx context.Context, filter domain.TenantFilter, id int64) error
	GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Trainer, error)
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Trainer, error)
}

type trainerRepository struct {
	pool *pgxpool.Pool
}

// NewTrainerRepository returns a Postgres-backed implementation.
func NewTrainerRepository(pool *pgxpool.Pool) TrainerRepository {
	return &trainerRepository{pool: pool}
}

func (r *trainerRepository) Create(ctx context.Context, trainer *domain.Trainer) error {
	const query = `
        INSERT INTO trainers (gym_id, name, email, phone, specialty)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		trainer.GymID,
		trainer.Name,
		trainer.Email,
		trainer.Phone,
		trainer.Specialty,
	).Scan(&trainer.ID, &trainer.CreatedAt, &trainer.UpdatedAt)
}

func (r *trainerRepository) Update(ctx context.Context, filter domain.TenantFilter, trainer *domain.Trainer) error {
	const query = `
        UPDATE trainers SET name=$1, email=$2, phone=$3, specialty=$4, updated_at=NOW()
        WHERE id=$5 AND ($6 OR gym_id = $7)`

	cmd, err := r.pool.Exec(ctx, query,
		trainer.Name,
		trainer.Email,
		trainer.Phone,
		trainer.Specialty,
		trainer.ID,
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

func (r *trainerRepository) Delete(ctx context.Context, filter domain.TenantFilter, id int64) error {
	const query = `DELETE FROM trainers WHERE id=$1 AND ($2 OR gym_id = $3)`

	cmd, err := r.pool.Exec(ctx, query, id, filter.All, filter.GymID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *trainerRepository) GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Trainer, error) {
	const query = `
        SELECT id, gym_id, name, email, phone, specialty, created_at, updated_at
        FROM trainers WHERE id=$1 AND ($2 OR gym_id = $3)`

	var trainer domain.Trainer
	if err := r.pool.QueryRow(ctx, query, id, filter.All, filter.GymID).Scan(
		&trainer.ID,
		&trainer.GymID,
		&trainer.Name,
		&trainer.Email,
		&trainer.Phone,
		&trainer.Specialty,
		&trainer.CreatedAt,
		&trainer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Trainer, error) {
	const query = `
        SELECT id, gym_id, name, email, phone, specialty, created_at, updated_at
        FROM trainers WHERE ($1 OR gym_id = $2)
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, filter.All, filter.GymID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainers []domain.Trainer
	for rows.Next() {
		var trainer domain.Trainer
		if err := rows.Scan(
			&trainer.ID,
			&trainer.GymID,
			&trainer.Name,
			&trainer.Email,
			&trainer.Phone,
			&trainer.Specialty,
			&trainer.CreatedAt,
			&trainer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		trainers = append(trainers, trainer)
	}
	return trainers, rows.Err()
}
