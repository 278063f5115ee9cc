package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/http/handlers"
	"github.com/spec-kit/gym-service/internal/auth"
	"github.com/spec-kit/gym-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Gyms           *handlers.GymsHandler
	Members        *handlers.MembersHandler
	Payments       *handlers.PaymentsHandler
	Plans          *handlers.PlansHandler
	Classes        *handlers.ClassesHandler
	Trainers       *handlers.TrainersHandler
	Assets         *handlers.AssetsHandler
	Expenses       *handlers.ExpensesHandler
	Finance        *handlers.FinanceHandler
	AuthMiddleware *auth.Middleware
}

// Exemptions declares the routes reachable without a token. The set is
// fixed at startup and handed to the auth middleware; nothing else may
// bypass authentication.
func Exemptions() []auth.Exemption {
	return []auth.Exemption{
		{Method: fiber.MethodPost, PathPrefix: "/auth/register"},
		{Method: fiber.MethodPost, PathPrefix: "/auth/login"},
		{Method: fiber.MethodGet, PathPrefix: "/plans/public"},
		{Method: fiber.MethodPost, PathPrefix: "/setup"},
		{Method: fiber.MethodGet, PathPrefix: "/health"},
	}
}

// Per-operation capabilities. Declared once here so the role requirements
// of the whole API are inspectable in a single place.
var (
	adminOnly   = auth.Capability{Roles: []domain.Role{domain.RoleAdmin}, TenantScoped: true}
	staffScoped = auth.Capability{Roles: []domain.Role{domain.RoleAdmin, domain.RoleCashier}, TenantScoped: true}
	anyScoped   = auth.Capability{Roles: auth.AnyRole(), TenantScoped: true}
	anyRole     = auth.Capability{Roles: auth.AnyRole()}
)

// RegisterRoutes wires HTTP routes behind the auth pipeline.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.AuthMiddleware.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/setup", cfg.Auth.Setup)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", auth.Require(anyRole), cfg.Auth.Me)

	gyms := app.Group("/gyms")
	gyms.Get("/", auth.Require(adminOnly), cfg.Gyms.List)
	gyms.Post("/", auth.Require(adminOnly), cfg.Gyms.Create)
	gyms.Get("/:id", auth.Require(adminOnly), cfg.Gyms.Get)
	gyms.Put("/:id", auth.Require(adminOnly), cfg.Gyms.Update)

	members := app.Group("/members")
	members.Get("/", auth.Require(anyScoped), cfg.Members.List)
	members.Post("/", auth.Require(staffScoped), cfg.Members.Create)
	members.Get("/:id", auth.Require(staffScoped), cfg.Members.Get)
	members.Put("/:id", auth.Require(staffScoped), cfg.Members.Update)
	members.Delete("/:id", auth.Require(staffScoped), cfg.Members.Delete)

	payments := app.Group("/payments")
	payments.Get("/", auth.Require(staffScoped), cfg.Payments.List)
	payments.Post("/", auth.Require(staffScoped), cfg.Payments.Create)
	payments.Get("/:id", auth.Require(staffScoped), cfg.Payments.Get)
	payments.Delete("/:id", auth.Require(staffScoped), cfg.Payments.Delete)

	plans := app.Group("/plans")
	plans.Get("/public", cfg.Plans.ListPublic)
	plans.Get("/", auth.Require(anyScoped), cfg.Plans.List)
	plans.Post("/", auth.Require(adminOnly), cfg.Plans.Create)
	plans.Get("/:id", auth.Require(anyScoped), cfg.Plans.Get)
	plans.Put("/:id", auth.Require(adminOnly), cfg.Plans.Update)
	plans.Delete("/:id", auth.Require(adminOnly), cfg.Plans.Delete)

	classes := app.Group("/classes")
	classes.Get("/", auth.Require(anyScoped), cfg.Classes.List)
	classes.Post("/", auth.Require(adminOnly), cfg.Classes.Create)
	classes.Get("/:id", auth.Require(anyScoped), cfg.Classes.Get)
	classes.Put("/:id", auth.Require(adminOnly), cfg.Classes.Update)
	classes.Delete("/:id", auth.Require(adminOnly), cfg.Classes.Delete)

	trainers := app.Group("/trainers")
	trainers.Get("/", auth.Require(anyScoped), cfg.Trainers.List)
	trainers.Post("/", auth.Require(adminOnly), cfg.Trainers.Create)
	trainers.Get("/:id", auth.Require(anyScoped), cfg.Trainers.Get)
	trainers.Put("/:id", auth.Require(adminOnly), cfg.Trainers.Update)
	trainers.Delete("/:id", auth.Require(adminOnly), cfg.Trainers.Delete)

	assets := app.Group("/assets")
	assets.Get("/", auth.Require(adminOnly), cfg.Assets.List)
	assets.Post("/", auth.Require(adminOnly), cfg.Assets.Create)
	assets.Get("/:id", auth.Require(adminOnly), cfg.Assets.Get)
	assets.Put("/:id", auth.Require(adminOnly), cfg.Assets.Update)
	assets.Delete("/:id", auth.Require(adminOnly), cfg.Assets.Delete)

	expenses := app.Group("/expenses")
	expenses.Get("/", auth.Require(adminOnly), cfg.Expenses.List)
	expenses.Post("/", auth.Require(adminOnly), cfg.Expenses.Create)
	expenses.Get("/:id", auth.Require(adminOnly), cfg.Expenses.Get)
	expenses.Delete("/:id", auth.Require(adminOnly), cfg.Expenses.Delete)

	app.Get("/finance/summary", auth.Require(adminOnly), cfg.Finance.Summary)
}
