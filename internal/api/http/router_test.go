package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/spec-kit/gym-service/internal/api/http"
	"github.com/spec-kit/gym-service/internal/api/http/handlers"
	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/config"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/events"
	"github.com/spec-kit/gym-service/internal/observability"
	"github.com/spec-kit/gym-service/internal/service"
)

type memUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) CountAll(context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type memGymRepo struct {
	gyms   map[int64]*domain.Gym
	nextID int64
}

func (r *memGymRepo) Create(_ context.Context, gym *domain.Gym) error {
	r.nextID++
	gym.ID = r.nextID
	stored := *gym
	r.gyms[gym.ID] = &stored
	return nil
}

func (r *memGymRepo) Update(_ context.Context, gym *domain.Gym) error {
	if _, ok := r.gyms[gym.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *gym
	r.gyms[gym.ID] = &stored
	return nil
}

func (r *memGymRepo) GetByID(_ context.Context, id int64) (*domain.Gym, error) {
	if gym, ok := r.gyms[id]; ok {
		copied := *gym
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memGymRepo) List(_ context.Context, filter domain.TenantFilter) ([]domain.Gym, error) {
	var out []domain.Gym
	for _, gym := range r.gyms {
		if filter.Admits(gym.ID) {
			out = append(out, *gym)
		}
	}
	return out, nil
}

func (r *memGymRepo) Count(context.Context) (int64, error) {
	return int64(len(r.gyms)), nil
}

type memMemberRepo struct {
	members map[int64]*domain.Member
	nextID  int64
}

func (r *memMemberRepo) Create(_ context.Context, member *domain.Member) error {
	r.nextID++
	member.ID = r.nextID
	stored := *member
	r.members[member.ID] = &stored
	return nil
}

func (r *memMemberRepo) Update(_ context.Context, filter domain.TenantFilter, member *domain.Member) error {
	existing, ok := r.members[member.ID]
	if !ok || !filter.Admits(existing.GymID) {
		return pgx.ErrNoRows
	}
	stored := *member
	r.members[member.ID] = &stored
	return nil
}

func (r *memMemberRepo) Delete(_ context.Context, filter domain.TenantFilter, id int64) error {
	existing, ok := r.members[id]
	if !ok || !filter.Admits(existing.GymID) {
		return pgx.ErrNoRows
	}
	delete(r.members, id)
	return nil
}

func (r *memMemberRepo) GetByID(_ context.Context, filter domain.TenantFilter, id int64) (*domain.Member, error) {
	existing, ok := r.members[id]
	if !ok || !filter.Admits(existing.GymID) {
		return nil, pgx.ErrNoRows
	}
	copied := *existing
	return &copied, nil
}

func (r *memMemberRepo) List(_ context.Context, filter domain.TenantFilter) ([]domain.Member, error) {
	var out []domain.Member
	for _, member := range r.members {
		if filter.Admits(member.GymID) {
			out = append(out, *member)
		}
	}
	return out, nil
}

type memPlanRepo struct {
	plans  map[int64]*domain.Plan
	nextID int64
}

func (r *memPlanRepo) Create(_ context.Context, plan *domain.Plan) error {
	r.nextID++
	plan.ID = r.nextID
	stored := *plan
	r.plans[plan.ID] = &stored
	return nil
}

func (r *memPlanRepo) Update(_ context.Context, filter domain.TenantFilter, plan *domain.Plan) error {
	existing, ok := r.plans[plan.ID]
	if !ok || !filter.Admits(existing.GymID) {
		return pgx.ErrNoRows
	}
	stored := *plan
	r.plans[plan.ID] = &stored
	return nil
}

func (r *memPlanRepo) Delete(_ context.Context, filter domain.TenantFilter, id int64) error {
	existing, ok := r.plans[id]
	if !ok || !filter.Admits(existing.GymID) {
		return pgx.ErrNoRows
	}
	delete(r.plans, id)
	return nil
}

func (r *memPlanRepo) GetByID(_ context.Context, filter domain.TenantFilter, id int64) (*domain.Plan, error) {
	existing, ok := r.plans[id]
	if !ok || !filter.Admits(existing.GymID) {
		return nil, pgx.ErrNoRows
	}
	copied := *existing
	return &copied, nil
}

func (r *memPlanRepo) List(_ context.Context, filter domain.TenantFilter) ([]domain.Plan, error) {
	var out []domain.Plan
	for _, plan := range r.plans {
		if filter.Admits(plan.GymID) {
			out = append(out, *plan)
		}
	}
	return out, nil
}

func (r *memPlanRepo) ListPublic(context.Context) ([]domain.Plan, error) {
	var out []domain.Plan
	for _, plan := range r.plans {
		if plan.Public {
			out = append(out, *plan)
		}
	}
	return out, nil
}

type memPaymentRepo struct {
	payments map[int64]*domain.Payment
	nextID   int64
}

func (r *memPaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	r.nextID++
	payment.ID = r.nextID
	stored := *payment
	r.payments[payment.ID] = &stored
	return nil
}

func (r *memPaymentRepo) Delete(_ context.Context, filter domain.TenantFilter, id int64) error {
	existing, ok := r.payments[id]
	if !ok || !filter.Admits(existing.GymID) {
		return pgx.ErrNoRows
	}
	delete(r.payments, id)
	return nil
}

func (r *memPaymentRepo) GetByID(_ context.Context, filter domain.TenantFilter, id int64) (*domain.Payment, error) {
	existing, ok := r.payments[id]
	if !ok || !filter.Admits(existing.GymID) {
		return nil, pgx.ErrNoRows
	}
	copied := *existing
	return &copied, nil
}

func (r *memPaymentRepo) List(_ context.Context, filter domain.TenantFilter) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, payment := range r.payments {
		if filter.Admits(payment.GymID) {
			out = append(out, *payment)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) SumAmount(_ context.Context, filter domain.TenantFilter) (int64, error) {
	var total int64
	for _, payment := range r.payments {
		if filter.Admits(payment.GymID) {
			total += payment.AmountCents
		}
	}
	return total, nil
}

type memExpenseRepo struct {
	expenses map[int64]*domain.Expense
	nextID   int64
}

func (r *memExpenseRepo) Create(_ context.Context, expense *domain.Expense) error {
	r.nextID++
	expense.ID = r.nextID
	stored := *expense
	r.expenses[expense.ID] = &stored
	return nil
}

func (r *memExpenseRepo) Delete(_ context.Context, filter domain.TenantFilter, id int64) error {
	existing, ok := r.expenses[id]
	if !ok || !filter.Admits(existing.GymID) {
		return pgx.ErrNoRows
	}
	delete(r.expenses, id)
	return nil
}

func (r *memExpenseRepo) GetByID(_ context.Context, filter domain.TenantFilter, id int64) (*domain.Expense, error) {
	existing, ok := r.expenses[id]
	if !ok || !filter.Admits(existing.GymID) {
		return nil, pgx.ErrNoRows
	}
	copied := *existing
	return &copied, nil
}

func (r *memExpenseRepo) List(_ context.Context, filter domain.TenantFilter) ([]domain.Expense, error) {
	var out []domain.Expense
	for _, expense := range r.expenses {
		if filter.Admits(expense.GymID) {
			out = append(out, *expense)
		}
	}
	return out, nil
}

func (r *memExpenseRepo) SumAmount(_ context.Context, filter domain.TenantFilter) (int64, error) {
	var total int64
	for _, expense := range r.expenses {
		if filter.Admits(expense.GymID) {
			total += expense.AmountCents
		}
	}
	return total, nil
}

// fixture wires the full request pipeline with in-memory repositories:
// auth middleware, capability gates, handlers and services.
type fixture struct {
	app     *fiber.App
	users   *memUserRepo
	gyms    *memGymRepo
	members *memMemberRepo
	plans   *memPlanRepo
	tokens  *auth.TokenManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:     "e2e-secret",
		TokenTTLHours: 1,
		BcryptCost:    bcrypt.MinCost,
	}}

	users := &memUserRepo{users: make(map[int64]*domain.User)}
	gyms := &memGymRepo{gyms: make(map[int64]*domain.Gym)}
	members := &memMemberRepo{members: make(map[int64]*domain.Member)}
	plans := &memPlanRepo{plans: make(map[int64]*domain.Plan)}
	payments := &memPaymentRepo{payments: make(map[int64]*domain.Payment)}
	expenses := &memExpenseRepo{expenses: make(map[int64]*domain.Expense)}

	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()

	authSvc := service.NewAuthService(cfg, service.AuthDependencies{UserRepo: users, GymRepo: gyms})
	memberSvc := service.NewMemberService(members, dispatcher)
	paymentSvc := service.NewPaymentService(payments, members, dispatcher)
	planSvc := service.NewPlanService(plans, nil, 0, logger)
	financeSvc := service.NewFinanceService(payments, expenses)

	mw := auth.NewMiddleware(authSvc.TokenManager(), auth.NewIdentityResolver(users), httptransport.Exemptions())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("gym-service", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authSvc),
		Gyms:           handlers.NewGymsHandler(gyms, dispatcher),
		Members:        handlers.NewMembersHandler(memberSvc),
		Payments:       handlers.NewPaymentsHandler(paymentSvc),
		Plans:          handlers.NewPlansHandler(planSvc),
		Classes:        handlers.NewClassesHandler(nil),
		Trainers:       handlers.NewTrainersHandler(nil),
		Assets:         handlers.NewAssetsHandler(nil),
		Expenses:       handlers.NewExpensesHandler(expenses),
		Finance:        handlers.NewFinanceHandler(financeSvc),
		AuthMiddleware: mw,
	})

	return &fixture{app: app, users: users, gyms: gyms, members: members, plans: plans, tokens: authSvc.TokenManager()}
}

func (f *fixture) seedGym(t *testing.T, name string) *domain.Gym {
	t.Helper()
	gym := &domain.Gym{Name: name, SubscriptionStatus: domain.SubscriptionActive}
	require.NoError(t, f.gyms.Create(context.Background(), gym))
	return gym
}

func (f *fixture) seedUser(t *testing.T, role domain.Role, gymID *int64) *domain.User {
	t.Helper()
	user := &domain.User{Name: "u", Email: "", Role: role, GymID: gymID}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *fixture) tokenFor(t *testing.T, userID int64) string {
	t.Helper()
	token, _, err := f.tokens.Issue(userID)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	return body.Error.Code
}

func TestPipelineRejectsAnonymousRequests(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, "GET", "/members/", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, resp))
}

func TestPipelineRejectsDeletedUserToken(t *testing.T) {
	f := newFixture(t)

	// token signed for an id that has no user row behind it
	token := f.tokenFor(t, 999)
	resp := f.do(t, "GET", "/members/", token, nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestCashierCannotReachAdminRoutes(t *testing.T) {
	f := newFixture(t)
	f.seedGym(t, "HQ")
	gym := f.seedGym(t, "East")
	cashier := f.seedUser(t, domain.RoleCashier, &gym.ID)

	token := f.tokenFor(t, cashier.ID)
	resp := f.do(t, "GET", "/gyms/", token, nil)
	assert.Equal(t, 403, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

func TestCashierSeesOnlyOwnGymMembers(t *testing.T) {
	f := newFixture(t)
	f.seedGym(t, "HQ")
	east := f.seedGym(t, "East")
	west := f.seedGym(t, "West")
	cashier := f.seedUser(t, domain.RoleCashier, &east.ID)

	ctx := context.Background()
	require.NoError(t, f.members.Create(ctx, &domain.Member{GymID: east.ID, Name: "A", Active: true}))
	require.NoError(t, f.members.Create(ctx, &domain.Member{GymID: west.ID, Name: "B", Active: true}))
	require.NoError(t, f.members.Create(ctx, &domain.Member{GymID: east.ID, Name: "C", Active: true}))

	token := f.tokenFor(t, cashier.ID)
	resp := f.do(t, "GET", "/members/", token, nil)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data []struct {
			GymID int64 `json:"gym_id"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 2)
	for _, member := range body.Data {
		assert.Equal(t, east.ID, member.GymID)
	}
}

func TestSuperTenantSeesAllGyms(t *testing.T) {
	f := newFixture(t)
	hq := f.seedGym(t, "HQ")
	east := f.seedGym(t, "East")
	require.Equal(t, domain.SuperGymID, hq.ID)

	admin := f.seedUser(t, domain.RoleAdmin, &hq.ID)

	ctx := context.Background()
	require.NoError(t, f.members.Create(ctx, &domain.Member{GymID: hq.ID, Name: "A", Active: true}))
	require.NoError(t, f.members.Create(ctx, &domain.Member{GymID: east.ID, Name: "B", Active: true}))

	token := f.tokenFor(t, admin.ID)
	resp := f.do(t, "GET", "/members/", token, nil)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data []struct {
			GymID int64 `json:"gym_id"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.Len(t, body.Data, 2)
}

func TestScopedRouteWithoutGymAssignment(t *testing.T) {
	f := newFixture(t)
	noGym := f.seedUser(t, domain.RoleAdmin, nil)

	token := f.tokenFor(t, noGym.ID)
	resp := f.do(t, "GET", "/members/", token, nil)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "MISSING_TENANT", errorCode(t, resp))
}

func TestMemberCreatePinnedToCallerGym(t *testing.T) {
	f := newFixture(t)
	f.seedGym(t, "HQ")
	east := f.seedGym(t, "East")
	west := f.seedGym(t, "West")
	cashier := f.seedUser(t, domain.RoleCashier, &east.ID)

	token := f.tokenFor(t, cashier.ID)
	resp := f.do(t, "POST", "/members/", token, map[string]any{
		"name":   "Dana",
		"gym_id": west.ID,
	})
	require.Equal(t, 201, resp.StatusCode)

	var body struct {
		Data struct {
			GymID int64 `json:"gym_id"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, east.ID, body.Data.GymID, "pinned caller must not write into another gym")
}

func TestPublicPlansReachableWithoutToken(t *testing.T) {
	f := newFixture(t)
	f.seedGym(t, "HQ")
	east := f.seedGym(t, "East")

	ctx := context.Background()
	require.NoError(t, f.plans.Create(ctx, &domain.Plan{GymID: east.ID, Name: "Monthly", PriceCents: 5000, DurationDays: 30, Public: true}))
	require.NoError(t, f.plans.Create(ctx, &domain.Plan{GymID: east.ID, Name: "Staff", PriceCents: 0, DurationDays: 30}))

	resp := f.do(t, "GET", "/plans/public", "", nil)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data []struct {
			Name   string `json:"name"`
			Public bool   `json:"public"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Monthly", body.Data[0].Name)
}

func TestSetupThenLoginFlow(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, "POST", "/setup", "", map[string]any{
		"gym_name":       "HQ",
		"admin_name":     "Root",
		"admin_email":    "root@example.com",
		"admin_password": "hunter22",
	})
	require.Equal(t, 201, resp.StatusCode)
	resp.Body.Close()

	// bootstrap is one-time only
	resp = f.do(t, "POST", "/setup", "", map[string]any{
		"gym_name":       "Again",
		"admin_name":     "Root",
		"admin_email":    "root2@example.com",
		"admin_password": "hunter22",
	})
	assert.Equal(t, 409, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(t, "POST", "/auth/login", "", map[string]any{
		"email":    "root@example.com",
		"password": "hunter22",
	})
	require.Equal(t, 200, resp.StatusCode)

	var login struct {
		Data struct {
			Auth struct {
				Token string `json:"token"`
			} `json:"auth"`
		} `json:"data"`
	}
	decodeBody(t, resp, &login)
	require.NotEmpty(t, login.Data.Auth.Token)

	// the first gym takes the reserved id, so the admin is super-tenant
	resp = f.do(t, "GET", "/gyms/", login.Data.Auth.Token, nil)
	assert.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()
}

func TestRoleChangeAppliesOnNextRequest(t *testing.T) {
	f := newFixture(t)
	f.seedGym(t, "HQ")
	east := f.seedGym(t, "East")
	user := f.seedUser(t, domain.RoleAdmin, &east.ID)

	token := f.tokenFor(t, user.ID)
	resp := f.do(t, "GET", "/finance/summary", token, nil)
	assert.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	// demote without reissuing the token; identity is re-read per request
	demoted := *f.users.users[user.ID]
	demoted.Role = domain.RoleCashier
	require.NoError(t, f.users.Update(context.Background(), &demoted))

	resp = f.do(t, "GET", "/finance/summary", token, nil)
	assert.Equal(t, 403, resp.StatusCode)
	resp.Body.Close()
}
