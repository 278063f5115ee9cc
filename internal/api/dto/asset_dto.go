package dto

import (
	"time"

	"github.com/spec-kit/gym-service/internal/domain"
)

// AssetRequest payload for creating or updating an asset.
type AssetRequest struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	CostCents   int64      `json:"cost_cents"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	GymID       int64      `json:"gym_id,omitempty"`
}

// AssetResponse projection of an asset.
type AssetResponse struct {
	ID          int64     `json:"id"`
	GymID       int64     `json:"gym_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	CostCents   int64     `json:"cost_cents"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// FromAsset maps a domain asset onto the response shape.
func FromAsset(asset *domain.Asset) AssetResponse {
	return AssetResponse{
		ID:          asset.ID,
		GymID:       asset.GymID,
		Name:        asset.Name,
		Category:    asset.Category,
		CostCents:   asset.CostCents,
		PurchasedAt: asset.PurchasedAt,
	}
}

// FromAssets maps a slice of assets.
func FromAssets(assets []domain.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		out = append(out, FromAsset(&assets[i]))
	}
	return out
}
