package domain

import "time"

// Member is a gym member record, owned by exactly one gym.
type Member struct {
	ID        int64
	GymID     int64
	Name      string
	Email     string
	Phone     string
	PlanID    *int64
	JoinedAt  time.Time
	ExpiresAt *time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
