package events

import (
	"time"

	"github.com/spec-kit/gym-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMemberRegistered EventType = "member_registered"
	EventPaymentRecorded  EventType = "payment_recorded"
	EventGymCreated       EventType = "gym_created"
)

// Actor records who triggered an event.
type Actor struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	GymID     int64       `json:"gym_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MemberRegisteredPayload payload.
type MemberRegisteredPayload struct {
	MemberID int64  `json:"member_id"`
	Name     string `json:"name"`
	PlanID   *int64 `json:"plan_id,omitempty"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID   int64                `json:"payment_id"`
	MemberID    int64                `json:"member_id"`
	AmountCents int64                `json:"amount_cents"`
	Method      domain.PaymentMethod `json:"method"`
}

// GymCreatedPayload payload.
type GymCreatedPayload struct {
	Name string `json:"name"`
}
