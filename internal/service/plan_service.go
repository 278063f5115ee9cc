package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
)

const publicPlansCacheKey = "plans:public"

// PlanService manages subscription plans. The public listing is served
// through a Redis cache because it is the one unauthenticated read that
// fans out to anonymous traffic; the cache is dropped on every plan write.
type PlanService struct {
	plans    repository.PlanRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewPlanService builds the service. A nil cache client disables caching.
func NewPlanService(plans repository.PlanRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *PlanService {
	return &PlanService{plans: plans, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// ListPublic returns all public plans across gyms, cache-first.
func (s *PlanService) ListPublic(ctx context.Context) ([]domain.Plan, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, publicPlansCacheKey).Bytes()
		if err == nil {
			var plans []domain.Plan
			if err := json.Unmarshal(cached, &plans); err == nil {
				return plans, nil
			}
		}
	}

	plans, err := s.plans.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(plans); err == nil {
			if err := s.cache.Set(ctx, publicPlansCacheKey, encoded, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache public plans", zap.Error(err))
			}
		}
	}
	return plans, nil
}

// List returns plans visible under the filter.
func (s *PlanService) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Plan, error) {
	return s.plans.List(ctx, filter)
}

// Get returns one plan visible under the filter.
func (s *PlanService) Get(ctx context.Context, filter domain.TenantFilter, id int64) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, filter, id)
}

// Create stores a plan and invalidates the public cache.
func (s *PlanService) Create(ctx context.Context, plan *domain.Plan) error {
	if err := s.plans.Create(ctx, plan); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Update modifies a plan visible under the filter and invalidates the cache.
func (s *PlanService) Update(ctx context.Context, filter domain.TenantFilter, plan *domain.Plan) error {
	if err := s.plans.Update(ctx, filter, plan); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Remove deletes a plan visible under the filter and invalidates the cache.
func (s *PlanService) Remove(ctx context.Context, filter domain.TenantFilter, id int64) error {
	if err := s.plans.Delete(ctx, filter, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *PlanService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, publicPlansCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate plan cache", zap.Error(err))
	}
}
