package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// IdentityResolver turns a verified subject id into the caller's current
// identity. It re-reads the users table on every request: a deleted user
// invalidates all outstanding tokens immediately, and role or gym changes
// apply on the next request without reissuing tokens.
type IdentityResolver struct {
	users repository.UserRepository
}

// NewIdentityResolver constructs a resolver.
func NewIdentityResolver(users repository.UserRepository) *IdentityResolver {
	return &IdentityResolver{users: users}
}

// Resolve loads the identity for the subject. A missing user is a caller
// problem (401); any other storage failure surfaces as a 5xx.
func (r *IdentityResolver) Resolve(ctx context.Context, userID int64) (*domain.Identity, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("user no longer exists")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user.Identity(), nil
}
