package dto

import (
	"time"

	"github.com/spec-kit/gym-service/internal/domain"
)

// MemberRequest payload for creating or updating a member. GymID is only
// honored for super-tenant callers; everyone else writes to their own gym.
type MemberRequest struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	PlanID    *int64     `json:"plan_id,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Active    *bool      `json:"active,omitempty"`
	GymID     int64      `json:"gym_id,omitempty"`
}

// MemberResponse projection of a member.
type MemberResponse struct {
	ID        int64      `json:"id"`
	GymID     int64      `json:"gym_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	PlanID    *int64     `json:"plan_id,omitempty"`
	JoinedAt  time.Time  `json:"joined_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Active    bool       `json:"active"`
}

// FromMember maps a domain member onto the response shape.
func FromMember(member *domain.Member) MemberResponse {
	return MemberResponse{
		ID:        member.ID,
		GymID:     member.GymID,
		Name:      member.Name,
		Email:     member.Email,
		Phone:     member.Phone,
		PlanID:    member.PlanID,
		JoinedAt:  member.JoinedAt,
		ExpiresAt: member.ExpiresAt,
		Active:    member.Active,
	}
}

// FromMembers maps a slice of members.
func FromMembers(members []domain.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, FromMember(&members[i]))
	}
	return out
}
