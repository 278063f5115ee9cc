package domain

import "time"

// Trainer is an instructor employed by a gym.
type Trainer struct {
	ID        int64
	GymID     int64
	Name      string
	Email     string
	Phone     string
	Specialty string
	CreatedAt time.Time
	UpdatedAt time.Time
}
