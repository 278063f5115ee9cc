package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/service"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// MembersHandler exposes member CRUD under the caller's tenant scope.
type MembersHandler struct {
	members *service.MemberService
}

// NewMembersHandler constructs handler.
func NewMembersHandler(members *service.MemberService) *MembersHandler {
	return &MembersHandler{members: members}
}

// List handles GET /members.
func (h *MembersHandler) List(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	members, err := h.members.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromMembers(members)})
}

// Create handles POST /members.
func (h *MembersHandler) Create(c *fiber.Ctx) error {
	identity, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	member := &domain.Member{
		GymID:     req.GymID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		PlanID:    req.PlanID,
		ExpiresAt: req.ExpiresAt,
	}
	if err := h.members.Register(c.Context(), identity, filter, member); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromMember(member)})
}

// Get handles GET /members/:id.
func (h *MembersHandler) Get(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	member, err := h.members.Get(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "member")
	}
	return c.JSON(fiber.Map{"data": dto.FromMember(member)})
}

// Update handles PUT /members/:id.
func (h *MembersHandler) Update(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	member, err := h.members.Get(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "member")
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	member.Email = req.Email
	member.Phone = req.Phone
	member.PlanID = req.PlanID
	member.ExpiresAt = req.ExpiresAt
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := h.members.Update(c.Context(), filter, member); err != nil {
		return notFoundIfNoRows(err, "member")
	}
	return c.JSON(fiber.Map{"data": dto.FromMember(member)})
}

// Delete handles DELETE /members/:id.
func (h *MembersHandler) Delete(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.members.Remove(c.Context(), filter, id); err != nil {
		return notFoundIfNoRows(err, "member")
	}
	return c.SendStatus(http.StatusNoContent)
}
