package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/gym-service/internal/domain"
)

// AssetRepository defines persistence access for gym assets.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	Update(ctx context.Context, filter domain.TenantFilter, asset *domain.Asset) error
	Delete(ctx context.Context, filter domain.TenantFilter, id int64) error
	GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Asset, error)
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Asset, error)
}

type assetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository returns a Postgres-backed implementation.
func NewAssetRepository(pool *pgxpool.Pool) AssetRepository {
	return &assetRepository{pool: pool}
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	const query = `
        INSERT INTO assets (gym_id, name, category, cost_cents, purchased_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		asset.GymID,
		asset.Name,
		asset.Category,
		asset.CostCents,
		asset.PurchasedAt,
	).Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
}

func (r *assetRepository) Update(ctx context.Context, filter domain.TenantFilter, asset *domain.Asset) error {
	const query = `
        UPDATE assets SET name=$1, category=$2, cost_cents=$3, purchased_at=$4, updated_at=NOW()
        WHERE id=$5 AND ($6 OR gym_id = $7)`

	cmd, err := r.pool.Exec(ctx, query,
		asset.Name,
		asset.Category,
		asset.CostCents,
		asset.PurchasedAt,
		asset.ID,
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

func (r *assetRepository) Delete(ctx context.Context, filter domain.TenantFilter, id int64) error {
	const query = `DELETE FROM assets WHERE id=$1 AND ($2 OR gym_id = $3)`

	cmd, err := r.pool.Exec(ctx, query, id, filter.All, filter.GymID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *assetRepository) GetByID(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Asset, error) {
	const query = `
        SELECT id, gym_id, name, category, cost_cents, purchased_at, created_at, updated_at
        FROM assets WHERE id=$1 AND ($2 OR gym_id = $3)`

	var asset domain.Asset
	if err := r.pool.QueryRow(ctx, query, id, filter.All, filter.GymID).Scan(
		&asset.ID,
		&asset.GymID,
		&asset.Name,
		&asset.Category,
		&asset.CostCents,
		&asset.PurchasedAt,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Asset, error) {
	const query = `
        SELECT id, gym_id, name, category, cost_cents, purchased_at, created_at, updated_at
        FROM assets WHERE ($1 OR gym_id = $2)
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, filter.All, filter.GymID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var asset domain.Asset
		if err := rows.Scan(
			&asset.ID,
			&asset.GymID,
			&asset.Name,
			&asset.Category,
			&asset.CostCents,
			&asset.PurchasedAt,
			&asset.CreatedAt,
			&asset.UpdatedAt,
		); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}
