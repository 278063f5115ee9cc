package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// PlansHandler exposes subscription plan operations.
type PlansHandler struct {
	plans *service.PlanService
}

// NewPlansHandler constructs handler.
func NewPlansHandler(plans *service.PlanService) *PlansHandler {
	return &PlansHandler{plans: plans}
}

// ListPublic handles GET /plans/public, reachable without a token.
func (h *PlansHandler) ListPublic(c *fiber.Ctx) error {
	plans, err := h.plans.ListPublic(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPlans(plans)})
}

// List handles GET /plans.
func (h *PlansHandler) List(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	plans, err := h.plans.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPlans(plans)})
}

// Create handles POST /plans.
func (h *PlansHandler) Create(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.PriceCents < 0 || req.DurationDays <= 0 {
		return apperrors.NewValidationError("name, price_cents, duration_days required", nil)
	}

	gymID, err := filter.TargetGym(optionalID(req.GymID))
	if err != nil {
		return apperrors.NewValidationError("gym_id required for cross-tenant create", nil)
	}

	plan := &domain.Plan{
		GymID:        gymID,
		Name:         req.Name,
		PriceCents:   req.PriceCents,
		DurationDays: req.DurationDays,
		Public:       req.Public,
	}
	if err := h.plans.Create(c.Context(), plan); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromPlan(plan)})
}

// Get handles GET /plans/:id.
func (h *PlansHandler) Get(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	plan, err := h.plans.Get(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "plan")
	}
	return c.JSON(fiber.Map{"data": dto.FromPlan(plan)})
}

// Update handles PUT /plans/:id.
func (h *PlansHandler) Update(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	plan, err := h.plans.Get(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "plan")
	}

	if req.Name != "" {
		plan.Name = req.Name
	}
	if req.PriceCents >= 0 {
		plan.PriceCents = req.PriceCents
	}
	if req.DurationDays > 0 {
		plan.DurationDays = req.DurationDays
	}
	plan.Public = req.Public

	if err := h.plans.Update(c.Context(), filter, plan); err != nil {
		return notFoundIfNoRows(err, "plan")
	}
	return c.JSON(fiber.Map{"data": dto.FromPlan(plan)})
}

// Delete handles DELETE /plans/:id.
func (h *PlansHandler) Delete(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.plans.Remove(c.Context(), filter, id); err != nil {
		return notFoundIfNoRows(err, "plan")
	}
	return c.SendStatus(http.StatusNoContent)
}
