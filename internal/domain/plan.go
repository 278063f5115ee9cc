package domain

import "time"

// Plan is a subscription plan offered by a gym. Public plans appear on the
// unauthenticated listing endpoint.
type Plan struct {
	ID           int64
	GymID        int64
	Name         string
	PriceCents   int64
	DurationDays int
	Public       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
