package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/domain"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

const tenantFilterKey = "tenant_filter"

// ScopeFor computes the tenant visibility for a resolved identity:
// the reserved super gym sees every tenant, an ordinary gym sees only
// itself, and an identity with no gym assigned cannot perform
// tenant-scoped work at all.
func ScopeFor(identity *domain.Identity) (domain.TenantFilter, error) {
	if identity == nil {
		return domain.TenantFilter{}, apperrors.NewUnauthorized("authentication required")
	}
	if identity.GymID == nil {
		return domain.TenantFilter{}, apperrors.NewMissingTenant()
	}
	if *identity.GymID == domain.SuperGymID {
		return domain.Unrestricted(), nil
	}
	return domain.ScopedTo(*identity.GymID), nil
}

// TenantFilterFromContext retrieves the filter stored by the capability gate.
func TenantFilterFromContext(c *fiber.Ctx) (domain.TenantFilter, bool) {
	val := c.Locals(tenantFilterKey)
	if val == nil {
		return domain.TenantFilter{}, false
	}
	filter, ok := val.(domain.TenantFilter)
	return filter, ok
}

// Exemption names a route reachable without a token, by method and path
// prefix. The set is declared statically at startup; nothing mutates it
// afterwards.
type Exemption struct {
	Method     string
	PathPrefix string
}

// Exempt reports whether the request matches a declared exemption.
func Exempt(exemptions []Exemption, method, path string) bool {
	for _, e := range exemptions {
		if e.Method != "" && !strings.EqualFold(e.Method, method) {
			continue
		}
		if strings.HasPrefix(path, e.PathPrefix) {
			return true
		}
	}
	return false
}
