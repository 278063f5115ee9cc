package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// ClassesHandler exposes class CRUD under the caller's tenant scope.
type ClassesHandler struct {
	classes repository.ClassRepository
}

// NewClassesHandler constructs handler.
func NewClassesHandler(classes repository.ClassRepository) *ClassesHandler {
	return &ClassesHandler{classes: classes}
}

// List handles GET /classes.
func (h *ClassesHandler) List(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	classes, err := h.classes.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromClasses(classes)})
}

// Create handles POST /classes.
func (h *ClassesHandler) Create(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	gymID, err := filter.TargetGym(optionalID(req.GymID))
	if err != nil {
		return apperrors.NewValidationError("gym_id required for cross-tenant create", nil)
	}

	class := &domain.Class{
		GymID:     gymID,
		Name:      req.Name,
		TrainerID: req.TrainerID,
		Schedule:  req.Schedule,
		Capacity:  req.Capacity,
	}
	if err := h.classes.Create(c.Context(), class); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromClass(class)})
}

// Get handles GET /classes/:id.
func (h *ClassesHandler) Get(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	class, err := h.classes.GetByID(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "class")
	}
	return c.JSON(fiber.Map{"data": dto.FromClass(class)})
}

// Update handles PUT /classes/:id.
func (h *ClassesHandler) Update(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	class, err := h.classes.GetByID(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "class")
	}

	if req.Name != "" {
		class.Name = req.Name
	}
	class.TrainerID = req.TrainerID
	if req.Schedule != "" {
		class.Schedule = req.Schedule
	}
	if req.Capacity > 0 {
		class.Capacity = req.Capacity
	}

	if err := h.classes.Update(c.Context(), filter, class); err != nil {
		return notFoundIfNoRows(err, "class")
	}
	return c.JSON(fiber.Map{"data": dto.FromClass(class)})
}

// Delete handles DELETE /classes/:id.
func (h *ClassesHandler) Delete(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.classes.Delete(c.Context(), filter, id); err != nil {
		return notFoundIfNoRows(err, "class")
	}
	return c.SendStatus(http.StatusNoContent)
}
