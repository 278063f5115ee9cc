package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// PaymentsHandler exposes payment operations under the caller's tenant scope.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// List handles GET /payments.
func (h *PaymentsHandler) List(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	payments, err := h.payments.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPayments(payments)})
}

// Create handles POST /payments.
func (h *PaymentsHandler) Create(c *fiber.Ctx) error {
	identity, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.MemberID <= 0 {
		return apperrors.NewValidationError("member_id required", nil)
	}

	payment := &domain.Payment{
		MemberID:    req.MemberID,
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Note:        req.Note,
	}
	if req.PaidAt != nil {
		payment.PaidAt = *req.PaidAt
	}

	if err := h.payments.Record(c.Context(), identity, filter, payment); err != nil {
		return notFoundIfNoRows(err, "member")
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromPayment(payment)})
}

// Get handles GET /payments/:id.
func (h *PaymentsHandler) Get(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payment, err := h.payments.Get(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "payment")
	}
	return c.JSON(fiber.Map{"data": dto.FromPayment(payment)})
}

// Delete handles DELETE /payments/:id.
func (h *PaymentsHandler) Delete(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.payments.Remove(c.Context(), filter, id); err != nil {
		return notFoundIfNoRows(err, "payment")
	}
	return c.SendStatus(http.StatusNoContent)
}
