package domain

import "time"

// User is an account holder. GymID is nil only during onboarding, before
// a gym is assigned.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	GymID        *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity projects the request-scoped identity triple from the user row.
func (u *User) Identity() *Identity {
	return &Identity{UserID: u.ID, Role: u.Role, GymID: u.GymID}
}
