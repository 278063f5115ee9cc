package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/config"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// AuthService coordinates registration, login and platform bootstrap.
type AuthService struct {
	users      repository.UserRepository
	gyms       repository.GymRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	GymRepo  repository.GymRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		gyms:       deps.GymRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account. New accounts get the user role; a gym
// binding is optional because onboarding happens before a gym is assigned.
func (s *AuthService) Register(ctx context.Context, name, email, password string, gymID *int64) (*domain.User, string, time.Time, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	if gymID != nil {
		if _, err := s.gyms.GetByID(ctx, *gymID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, "", time.Time{}, apperrors.NewValidationError("unknown gym", nil)
			}
			return nil, "", time.Time{}, err
		}
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		GymID:        gymID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates an account by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Setup bootstraps the platform: it creates the first gym, which takes the
// reserved super-tenant id, and its admin account. Refused once any gym
// exists.
func (s *AuthService) Setup(ctx context.Context, gymName, adminName, adminEmail, password string) (*domain.Gym, *domain.User, error) {
	count, err := s.gyms.Count(ctx)
	if err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, apperrors.NewConflict("setup already completed", nil)
	}

	gym := &domain.Gym{Name: gymName, SubscriptionStatus: domain.SubscriptionActive}
	if err := s.gyms.Create(ctx, gym); err != nil {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	admin := &domain.User{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		GymID:        &gym.ID,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return nil, nil, err
	}
	return gym, admin, nil
}

// Me returns the full user record for a resolved identity.
func (s *AuthService) Me(ctx context.Context, identity *domain.Identity) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("user no longer exists")
		}
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
