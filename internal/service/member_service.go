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

// MemberService manages member records under the caller's tenant filter.
type MemberService struct {
	members    repository.MemberRepository
	dispatcher events.Dispatcher
}

// NewMemberService builds the service.
func NewMemberService(members repository.MemberRepository, dispatcher events.Dispatcher) *MemberService {
	return &MemberService{members: members, dispatcher: dispatcher}
}

// Register creates a member in the gym the filter resolves to and emits a
// member_registered event.
func (s *MemberService) Register(ctx context.Context, identity *domain.Identity, filter domain.TenantFilter, member *domain.Member) error {
	gymID, err := filter.TargetGym(nilIfZero(member.GymID))
	if err != nil {
		return apperrors.NewValidationError("gym_id required for cross-tenant create", nil)
	}
	member.GymID = gymID
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	member.Active = true

	if err := s.members.Create(ctx, member); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMemberRegistered,
			GymID:     member.GymID,
			Actor:     events.Actor{UserID: identity.UserID, Role: identity.Role},
			Timestamp: time.Now(),
			Payload: events.MemberRegisteredPayload{
				MemberID: member.ID,
				Name:     member.Name,
				PlanID:   member.PlanID,
			},
		})
	}
	return nil
}

// List returns members visible under the filter.
func (s *MemberService) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Member, error) {
	return s.members.List(ctx, filter)
}

// Get returns one member visible under the filter.
func (s *MemberService) Get(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Member, error) {
	return s.members.GetByID(ctx, filter, id)
}

// Update modifies a member visible under the filter.
func (s *MemberService) Update(ctx context.Context, filter domain.TenantFilter, member *domain.Member) error {
	return s.members.Update(ctx, filter, member)
}

// Remove deletes a member visible under the filter.
func (s *MemberService) Remove(ctx context.Context, filter domain.TenantFilter, id int64) error {
	return s.members.Delete(ctx, filter, id)
}

func nilIfZero(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
