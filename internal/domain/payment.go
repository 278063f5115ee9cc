package domain

import "time"

// PaymentMethod enumerates accepted payment channels.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// Payment records money received from a member. Amounts are in cents.
type Payment struct {
	ID          int64
	GymID       int64
	MemberID    int64
	AmountCents int64
	Method      PaymentMethod
	PaidAt      time.Time
	Note        string
	CreatedAt   time.Time
}
