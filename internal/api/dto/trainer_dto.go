package dto

import (
	"github.com/spec-kit/gym-service/internal/domain"
)

// TrainerRequest payload for creating or updating a trainer.
type TrainerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	GymID     int64  `json:"gym_id,omitempty"`
}

// TrainerResponse projection of a trainer.
type TrainerResponse struct {
	ID        int64  `json:"id"`
	GymID     int64  `json:"gym_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

// FromTrainer maps a domain trainer onto the response shape.
func FromTrainer(trainer *domain.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:        trainer.ID,
		GymID:     trainer.GymID,
		Name:      trainer.Name,
		Email:     trainer.Email,
		Phone:     trainer.Phone,
		Specialty: trainer.Specialty,
	}
}

// FromTrainers maps a slice of trainers.
func FromTrainers(trainers []domain.Trainer) []TrainerResponse {
	out := make([]TrainerResponse, 0, len(trainers))
	for i := range trainers {
		out = append(out, FromTrainer(&trainers[i]))
	}
	return out
}
