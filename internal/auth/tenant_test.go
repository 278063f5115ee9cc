package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gym-service/internal/domain"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

func gymID(id int64) *int64 { return &id }

func TestScopeForOrdinaryTenant(t *testing.T) {
	identity := &domain.Identity{UserID: 10, Role: domain.RoleCashier, GymID: gymID(5)}

	filter, err := ScopeFor(identity)
	require.NoError(t, err)
	assert.False(t, filter.All)
	assert.Equal(t, int64(5), filter.GymID)

	assert.True(t, filter.Admits(5))
	assert.False(t, filter.Admits(1))
	assert.False(t, filter.Admits(6))
}

func TestScopeForSuperTenant(t *testing.T) {
	identity := &domain.Identity{UserID: 1, Role: domain.RoleAdmin, GymID: gymID(domain.SuperGymID)}

	filter, err := ScopeFor(identity)
	require.NoError(t, err)
	assert.True(t, filter.All)
	assert.True(t, filter.Admits(5))
	assert.True(t, filter.Admits(999))
}

func TestScopeForSuperTenantIsOnlyGymOne(t *testing.T) {
	for _, id := range []int64{2, 3, 100} {
		filter, err := ScopeFor(&domain.Identity{UserID: 1, Role: domain.RoleAdmin, GymID: gymID(id)})
		require.NoError(t, err)
		assert.False(t, filter.All, "gym %d must not be unrestricted", id)
	}
}

func TestScopeForMissingTenant(t *testing.T) {
	identity := &domain.Identity{UserID: 10, Role: domain.RoleUser}

	_, err := ScopeFor(identity)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "MISSING_TENANT", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
}

func TestScopeForNilIdentity(t *testing.T) {
	_, err := ScopeFor(nil)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, 401, domainErr.HTTPStatus)
}

func TestExemptMatching(t *testing.T) {
	exemptions := []Exemption{
		{Method: "POST", PathPrefix: "/auth/login"},
		{Method: "GET", PathPrefix: "/plans/public"},
		{Method: "GET", PathPrefix: "/health"},
	}

	assert.True(t, Exempt(exemptions, "POST", "/auth/login"))
	assert.True(t, Exempt(exemptions, "GET", "/plans/public"))
	assert.True(t, Exempt(exemptions, "GET", "/health/ready"))

	assert.False(t, Exempt(exemptions, "GET", "/auth/login"))
	assert.False(t, Exempt(exemptions, "POST", "/members"))
	assert.False(t, Exempt(exemptions, "GET", "/plans"))
}
