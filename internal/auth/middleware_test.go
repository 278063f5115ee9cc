package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gym-service/internal/domain"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) CountAll(context.Context) (int64, error)    { return 0, nil }

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestApp(repo *fakeUserRepo, exemptions []Exemption, routes func(app *fiber.App)) (*fiber.App, *TokenManager) {
	tm := NewTokenManager(testSecret, time.Hour)
	mw := NewMiddleware(tm, NewIdentityResolver(repo), exemptions)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"error": fiber.Map{"code": domainErr.Code, "message": domainErr.Message},
			})
		},
	})
	app.Use(mw.Handle)
	routes(app)
	return app, tm
}

func echoIdentity(c *fiber.Ctx) error {
	identity, ok := IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"user_id": identity.UserID, "role": identity.Role})
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	app, _ := newTestApp(&fakeUserRepo{}, nil, func(app *fiber.App) {
		app.Get("/protected", echoIdentity)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMiddlewareRejectsBadScheme(t *testing.T) {
	app, _ := newTestApp(&fakeUserRepo{}, nil, func(app *fiber.App) {
		app.Get("/protected", echoIdentity)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMiddlewareRejectsInvalidToken(t *testing.T) {
	app, _ := newTestApp(&fakeUserRepo{}, nil, func(app *fiber.App) {
		app.Get("/protected", echoIdentity)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMiddlewareRejectsDeletedUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{}}
	app, tm := newTestApp(repo, nil, func(app *fiber.App) {
		app.Get("/protected", echoIdentity)
	})

	// valid token for a subject that no longer exists
	token, _, err := tm.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMiddlewareResolvesIdentity(t *testing.T) {
	five := int64(5)
	repo := &fakeUserRepo{users: map[int64]*domain.User{
		42: {ID: 42, Role: domain.RoleCashier, GymID: &five},
	}}
	app, tm := newTestApp(repo, nil, func(app *fiber.App) {
		app.Get("/protected", echoIdentity)
	})

	token, _, err := tm.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestMiddlewareSkipsExemptRoutes(t *testing.T) {
	app, _ := newTestApp(&fakeUserRepo{}, []Exemption{{Method: "GET", PathPrefix: "/public"}}, func(app *fiber.App) {
		app.Get("/public", func(c *fiber.Ctx) error { return c.SendString("ok") })
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/public", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRequireRoleGate(t *testing.T) {
	five := int64(5)
	repo := &fakeUserRepo{users: map[int64]*domain.User{
		42: {ID: 42, Role: domain.RoleCashier, GymID: &five},
	}}
	app, tm := newTestApp(repo, nil, func(app *fiber.App) {
		adminOnly := Capability{Roles: []domain.Role{domain.RoleAdmin}, TenantScoped: true}
		staff := Capability{Roles: []domain.Role{domain.RoleAdmin, domain.RoleCashier}, TenantScoped: true}
		app.Get("/admin", Require(adminOnly), echoIdentity)
		app.Get("/staff", Require(staff), func(c *fiber.Ctx) error {
			filter, ok := TenantFilterFromContext(c)
			if !ok {
				return apperrors.NewInternalError(nil)
			}
			return c.JSON(fiber.Map{"all": filter.All, "gym_id": filter.GymID})
		})
	})

	token, _, err := tm.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode, "cashier must not pass an admin-only gate")

	req = httptest.NewRequest("GET", "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRequireMissingTenant(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{
		42: {ID: 42, Role: domain.RoleUser},
	}}
	app, tm := newTestApp(repo, nil, func(app *fiber.App) {
		scoped := Capability{TenantScoped: true}
		app.Get("/scoped", Require(scoped), echoIdentity)
	})

	token, _, err := tm.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/scoped", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode, "valid token and resolved identity but no gym assigned")
}

func TestRequireUnauthenticated(t *testing.T) {
	app, _ := newTestApp(&fakeUserRepo{}, []Exemption{{PathPrefix: "/open"}}, func(app *fiber.App) {
		app.Get("/open", Require(Capability{}), echoIdentity)
	})

	// exempt from token verification, but the gate still demands an identity
	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
