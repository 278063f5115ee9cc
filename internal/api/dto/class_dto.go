package dto

import (
	"github.com/spec-kit/gym-service/internal/domain"
)

// ClassRequest payload for creating or updating a class.
type ClassRequest struct {
	Name      string `json:"name"`
	TrainerID *int64 `json:"trainer_id,omitempty"`
	Schedule  string `json:"schedule"`
	Capacity  int    `json:"capacity"`
	GymID     int64  `json:"gym_id,omitempty"`
}

// ClassResponse projection of a class.
type ClassResponse struct {
	ID        int64  `json:"id"`
	GymID     int64  `json:"gym_id"`
	Name      string `json:"name"`
	TrainerID *int64 `json:"trainer_id,omitempty"`
	Schedule  string `json:"schedule"`
	Capacity  int    `json:"capacity"`
}

// FromClass maps a domain class onto the response shape.
func FromClass(class *domain.Class) ClassResponse {
	return ClassResponse{
		ID:        class.ID,
		GymID:     class.GymID,
		Name:      class.Name,
		TrainerID: class.TrainerID,
		Schedule:  class.Schedule,
		Capacity:  class.Capacity,
	}
}

// FromClasses maps a slice of classes.
func FromClasses(classes []domain.Class) []ClassResponse {
	out := make([]ClassResponse, 0, len(classes))
	for i := range classes {
		out = append(out, FromClass(&classes[i]))
	}
	return out
}
