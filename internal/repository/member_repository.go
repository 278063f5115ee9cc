package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// MemberRepository defines persistence access for gym members. Every read
// and write takes the caller's tenant filter as a mandatory predicate.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, filter domain.TenantFilter, member *domain.Member) error
	Delete(ctx context.Context, filter domain.TenantFilter, id int64) error
	GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Member, error)
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Member, error)
}

type memberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository returns a Postgres-backed implementation.
func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepository{pool: pool}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	const query = `
        INSERT INTO members (gym_id, name, email, phone, plan_id, joined_at, expires_at, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		member.GymID,
		member.Name,
		member.Email,
		member.Phone,
		member.PlanID,
		member.JoinedAt,
		member.ExpiresAt,
		member.Active,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *memberRepository) Update(ctx context.Context, filter domain.TenantFilter, member *domain.Member) error {
	const query = `
        UPDATE members SET name=$1, email=$2, phone=$3, plan_id=$4, expires_at=$5, active=$6, updated_at=NOW()
        WHERE id=$7 AND ($8 OR gym_id = $9)`

	cmd, err := r.pool.Exec(ctx, query,
		member.Name,
		member.Email,
		member.Phone,
		member.PlanID,
		member.ExpiresAt,
		member.Active,
		member.ID,
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

func (r *memberRepository) Delete(ctx context.Context, filter domain.TenantFilter, id int64) error {
	const query = `DELETE FROM members WHERE id=$1 AND ($2 OR gym_id = $3)`

	cmd, err := r.pool.Exec(ctx, query, id, filter.All, filter.GymID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Member, error) {
	const query = `
        SELECT id, gym_id, name, email, phone, plan_id, joined_at, expires_at, active, created_at, updated_at
        FROM members WHERE id=$1 AND ($2 OR gym_id = $3)`

	var member domain.Member
	if err := r.pool.QueryRow(ctx, query, id, filter.All, filter.GymID).Scan(
		&member.ID,
		&member.GymID,
		&member.Name,
		&member.Email,
		&member.Phone,
		&member.PlanID,
		&member.JoinedAt,
		&member.ExpiresAt,
		&member.Active,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Member, error) {
	const query = `
        SELECT id, gym_id, name, email, phone, plan_id, joined_at, expires_at, active, created_at, updated_at
        FROM members WHERE ($1 OR gym_id = $2)
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, filter.All, filter.GymID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var member domain.Member
		if err := rows.Scan(
			&member.ID,
			&member.GymID,
			&member.Name,
			&member.Email,
			&member.Phone,
			&member.PlanID,
			&member.JoinedAt,
			&member.ExpiresAt,
			&member.Active,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}
