package domain

import "time"

// Class is a scheduled group session.
type Class struct {
	ID        int64
	GymID     int64
	Name      string
	TrainerID *int64
	Schedule  string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
