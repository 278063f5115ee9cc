package dto

import (
	"github.com/spec-kit/gym-service/internal/domain"
)

// PlanRequest payload for creating or updating a plan.
type PlanRequest struct {
	Name         string `json:"name"`
	PriceCents   int64  `json:"price_cents"`
	DurationDays int    `json:"duration_days"`
	Public       bool   `json:"public"`
	GymID        int64  `json:"gym_id,omitempty"`
}

// PlanResponse projection of a plan.
type PlanResponse struct {
	ID           int64  `json:"id"`
	GymID        int64  `json:"gym_id"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price_cents"`
	DurationDays int    `json:"duration_days"`
	Public       bool   `json:"public"`
}

// FromPlan maps a domain plan onto the response shape.
func FromPlan(plan *domain.Plan) PlanResponse {
	return PlanResponse{
		ID:           plan.ID,
		GymID:        plan.GymID,
		Name:         plan.Name,
		PriceCents:   plan.PriceCents,
		DurationDays: plan.DurationDays,
		Public:       plan.Public,
	}
}

// FromPlans maps a slice of plans.
func FromPlans(plans []domain.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, FromPlan(&plans[i]))
	}
	return out
}
