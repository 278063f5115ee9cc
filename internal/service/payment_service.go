package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/events"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// PaymentService records and lists payments under the caller's tenant filter.
type PaymentService struct {
	payments   repository.PaymentRepository
	members    repository.MemberRepository
	dispatcher events.Dispatcher
}

// NewPaymentService builds the service.
func NewPaymentService(payments repository.PaymentRepository, members repository.MemberRepository, dispatcher events.Dispatcher) *PaymentService {
	return &PaymentService{payments: payments, members: members, dispatcher: dispatcher}
}

// Record stores a payment against a member the caller can see and emits a
// payment_recorded event. The member lookup uses the same filter, so a
// payment can never attach to another tenant's member.
func (s *PaymentService) Record(ctx context.Context, identity *domain.Identity, filter domain.TenantFilter, payment *domain.Payment) error {
	member, err := s.members.GetByID(ctx, filter, payment.MemberID)
	if err != nil {
		return err
	}
	payment.GymID = member.GymID
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now()
	}
	if payment.AmountCents <= 0 {
		return apperrors.NewValidationError("amount must be positive", nil)
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPaymentRecorded,
			GymID:     payment.GymID,
			Actor:     events.Actor{UserID: identity.UserID, Role: identity.Role},
			Timestamp: time.Now(),
			Payload: events.PaymentRecordedPayload{
				PaymentID:   payment.ID,
				MemberID:    payment.MemberID,
				AmountCents: payment.AmountCents,
				Method:      payment.Method,
			},
		})
	}
	return nil
}

// List returns payments visible under the filter.
func (s *PaymentService) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Payment, error) {
	return s.payments.List(ctx, filter)
}

// Get returns one payment visible under the filter.
func (s *PaymentService) Get(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, filter, id)
}

// Remove deletes a payment visible under the filter.
func (s *PaymentService) Remove(ctx context.Context, filter domain.TenantFilter, id int64) error {
	return s.payments.Delete(ctx, filter, id)
}
