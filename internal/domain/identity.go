package domain

// Role enumerates the closed set of account roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
	RoleUser    Role = "user"
)

// Valid reports whether the role belongs to the known set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCashier, RoleUser:
		return true
	}
	return false
}

// Identity is the authenticated caller for the duration of one request.
// It is rebuilt from the users table on every request and never cached,
// so role or gym changes apply on the caller's next request.
type Identity struct {
	UserID int64
	Role   Role
	GymID  *int64
}

// IsSuperTenant reports whether the identity belongs to the platform gym.
// The bypass is keyed off the gym id, not the role.
func (i *Identity) IsSuperTenant() bool {
	return i != nil && i.GymID != nil && *i.GymID == SuperGymID
}
