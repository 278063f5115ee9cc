package domain

import (
	"errors"
	"time"
)

// SuperGymID is the reserved tenant id granted cross-tenant visibility.
const SuperGymID int64 = 1

// SubscriptionStatus represents a gym's platform subscription state.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

// Gym is a tenant. All business data is partitioned by gym id.
type Gym struct {
	ID                 int64
	Name               string
	SubscriptionStatus SubscriptionStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ErrGymRequired is returned when an unrestricted write names no target gym.
var ErrGymRequired = errors.New("gym id required for cross-tenant write")

// TenantFilter is the predicate every tenant-scoped query must apply:
// either pinned to exactly one gym or explicitly unrestricted. There is
// no third path.
type TenantFilter struct {
	All   bool
	GymID int64
}

// ScopedTo builds a filter pinned to a single gym.
func ScopedTo(gymID int64) TenantFilter {
	return TenantFilter{GymID: gymID}
}

// Unrestricted builds the super-tenant bypass filter.
func Unrestricted() TenantFilter {
	return TenantFilter{All: true}
}

// Admits reports whether a record owned by gymID is visible under the filter.
func (f TenantFilter) Admits(gymID int64) bool {
	return f.All || f.GymID == gymID
}

// TargetGym resolves the gym a write should land in. A pinned filter always
// writes to its own gym and ignores the requested id; an unrestricted filter
// must name the target explicitly.
func (f TenantFilter) TargetGym(requested *int64) (int64, error) {
	if !f.All {
		return f.GymID, nil
	}
	if requested == nil {
		return 0, ErrGymRequired
	}
	return *requested, nil
}
