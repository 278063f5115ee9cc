package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/domain"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// Capability declares what an operation demands from the caller: the role
// set that may invoke it and whether it touches tenant-owned data. Every
// route attaches exactly one Capability in the route table, so the
// operation-to-role mapping is inspectable in one place.
type Capability struct {
	Roles        []domain.Role
	TenantScoped bool
}

// AnyRole admits every authenticated caller.
func AnyRole() []domain.Role { return nil }

// Require builds the gate for a capability. It checks authentication, then
// role membership, then computes the tenant filter for scoped operations.
// Handlers behind the gate never re-derive any of this.
func Require(cap Capability) fiber.Handler {
	allowed := make(map[domain.Role]struct{}, len(cap.Roles))
	for _, role := range cap.Roles {
		allowed[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}

		if len(allowed) > 0 {
			if _, exists := allowed[identity.Role]; !exists {
				return apperrors.NewForbidden("insufficient role")
			}
		}

		if cap.TenantScoped {
			filter, err := ScopeFor(identity)
			if err != nil {
				return err
			}
			c.Locals(tenantFilterKey, filter)
		}

		return c.Next()
	}
}
