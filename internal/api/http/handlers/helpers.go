package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}

// requestScope pulls the identity and tenant filter the gates injected.
// A missing filter on a tenant-scoped route is a wiring bug, not a caller
// error, and surfaces as a 5xx.
func requestScope(c *fiber.Ctx) (*domain.Identity, domain.TenantFilter, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return nil, domain.TenantFilter{}, apperrors.NewUnauthorized("authentication required")
	}
	filter, ok := auth.TenantFilterFromContext(c)
	if !ok {
		return nil, domain.TenantFilter{}, apperrors.NewInternalError(errors.New("tenant filter missing from context"))
	}
	return identity, filter, nil
}

func optionalID(v int64) *int64 {
	if v <= 0 {
		return nil
	}
	return &v
}

func notFoundIfNoRows(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, nil)
	}
	return err
}
