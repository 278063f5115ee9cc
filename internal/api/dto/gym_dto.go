package dto

import (
	"time"

	"github.com/spec-kit/gym-service/internal/domain"
)

// GymRequest payload for creating or updating a gym.
type GymRequest struct {
	Name               string `json:"name"`
	SubscriptionStatus string `json:"subscription_status"`
}

// GymResponse projection of a gym.
type GymResponse struct {
	ID                 int64                     `json:"id"`
	Name               string                    `json:"name"`
	SubscriptionStatus domain.SubscriptionStatus `json:"subscription_status"`
	CreatedAt          time.Time                 `json:"created_at"`
}

// FromGym maps a domain gym onto the response shape.
func FromGym(gym *domain.Gym) GymResponse {
	return GymResponse{
		ID:                 gym.ID,
		Name:               gym.Name,
		SubscriptionStatus: gym.SubscriptionStatus,
		CreatedAt:          gym.CreatedAt,
	}
}

// FromGyms maps a slice of gyms.
func FromGyms(gyms []domain.Gym) []GymResponse {
	out := make([]GymResponse, 0, len(gyms))
	for i := range gyms {
		out = append(out, FromGym(&gyms[i]))
	}
	return out
}
