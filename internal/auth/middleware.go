package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/domain"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

const identityKey = "auth_identity"

// Middleware verifies bearer tokens and resolves the caller's identity.
// It runs on every request except the declared exemptions; business
// handlers never execute unless the whole chain passed.
type Middleware struct {
	tokens     *TokenManager
	resolver   *IdentityResolver
	exemptions []Exemption
}

// NewMiddleware constructs middleware with a static exemption set.
func NewMiddleware(tokens *TokenManager, resolver *IdentityResolver, exemptions []Exemption) *Middleware {
	return &Middleware{tokens: tokens, resolver: resolver, exemptions: exemptions}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	if Exempt(m.exemptions, c.Method(), c.Path()) {
		return c.Next()
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	userID, err := m.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized(err.Error())
	}

	identity, err := m.resolver.Resolve(c.Context(), userID)
	if err != nil {
		return err
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}
