package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// ExpensesHandler exposes expense operations under the caller's tenant scope.
type ExpensesHandler struct {
	expenses repository.ExpenseRepository
}

// NewExpensesHandler constructs handler.
func NewExpensesHandler(expenses repository.ExpenseRepository) *ExpensesHandler {
	return &ExpensesHandler{expenses: expenses}
}

// List handles GET /expenses.
func (h *ExpensesHandler) List(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	expenses, err := h.expenses.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromExpenses(expenses)})
}

// Create handles POST /expenses.
func (h *ExpensesHandler) Create(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	var req dto.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Description == "" || req.AmountCents <= 0 {
		return apperrors.NewValidationError("description and positive amount_cents required", nil)
	}

	gymID, err := filter.TargetGym(optionalID(req.GymID))
	if err != nil {
		return apperrors.NewValidationError("gym_id required for cross-tenant create", nil)
	}

	expense := &domain.Expense{
		GymID:       gymID,
		Description: req.Description,
		Category:    req.Category,
		AmountCents: req.AmountCents,
	}
	if req.SpentAt != nil {
		expense.SpentAt = *req.SpentAt
	} else {
		expense.SpentAt = time.Now()
	}

	if err := h.expenses.Create(c.Context(), expense); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromExpense(expense)})
}

// Get handles GET /expenses/:id.
func (h *ExpensesHandler) Get(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	expense, err := h.expenses.GetByID(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "expense")
	}
	return c.JSON(fiber.Map{"data": dto.FromExpense(expense)})
}

// Delete handles DELETE /expenses/:id.
func (h *ExpensesHandler) Delete(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.expenses.Delete(c.Context(), filter, id); err != nil {
		return notFoundIfNoRows(err, "expense")
	}
	return c.SendStatus(http.StatusNoContent)
}
