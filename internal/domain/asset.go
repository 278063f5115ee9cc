package domain

import "time"

// Asset is a piece of equipment or property owned by a gym.
type Asset struct {
	ID          int64
	GymID       int64
	Name        string
	Category    string
	CostCents   int64
	PurchasedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
