package domain

import "time"

// Expense records money spent by a gym. Amounts are in cents.
type Expense struct {
	ID          int64
	GymID       int64
	Description string
	Category    string
	AmountCents int64
	SpentAt     time.Time
	CreatedAt   time.Time
}
