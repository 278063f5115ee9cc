package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/service"
)

// FinanceHandler exposes balance aggregation over the caller's tenant scope.
type FinanceHandler struct {
	finance *service.FinanceService
}

// NewFinanceHandler constructs handler.
func NewFinanceHandler(finance *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

// Summary handles GET /finance/summary.
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	summary, err := h.finance.Summary(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}
