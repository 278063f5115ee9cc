package dto

import (
	"time"

	"github.com/spec-kit/gym-service/internal/domain"
)

// PaymentRequest payload for recording a payment.
type PaymentRequest struct {
	MemberID    int64                `json:"member_id"`
	AmountCents int64                `json:"amount_cents"`
	Method      domain.PaymentMethod `json:"method"`
	PaidAt      *time.Time           `json:"paid_at,omitempty"`
	Note        string               `json:"note,omitempty"`
}

// PaymentResponse projection of a payment.
type PaymentResponse struct {
	ID          int64                `json:"id"`
	GymID       int64                `json:"gym_id"`
	MemberID    int64                `json:"member_id"`
	AmountCents int64                `json:"amount_cents"`
	Method      domain.PaymentMethod `json:"method"`
	PaidAt      time.Time            `json:"paid_at"`
	Note        string               `json:"note,omitempty"`
}

// FromPayment maps a domain payment onto the response shape.
func FromPayment(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          payment.ID,
		GymID:       payment.GymID,
		MemberID:    payment.MemberID,
		AmountCents: payment.AmountCents,
		Method:      payment.Method,
		PaidAt:      payment.PaidAt,
		Note:        payment.Note,
	}
}

// FromPayments maps a slice of payments.
func FromPayments(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, FromPayment(&payments[i]))
	}
	return out
}
