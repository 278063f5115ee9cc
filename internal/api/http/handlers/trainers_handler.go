package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// TrainersHandler exposes trainer CRUD under the caller's tenant scope.
type TrainersHandler struct {
	trainers repository.TrainerRepository
}

// NewTrainersHandler constructs handler.
func NewTrainersHandler(trainers repository.TrainerRepository) *TrainersHandler {
	return &TrainersHandler{trainers: trainers}
}

// List handles GET /trainers.
func (h *TrainersHandler) List(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	trainers, err := h.trainers.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromTrainers(trainers)})
}

// Create handles POST /trainers.
func (h *TrainersHandler) Create(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	var req dto.TrainerRequest
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

	trainer := &domain.Trainer{
		GymID:     gymID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	}
	if err := h.trainers.Create(c.Context(), trainer); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromTrainer(trainer)})
}

// Get handles GET /trainers/:id.
func (h *TrainersHandler) Get(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	trainer, err := h.trainers.GetByID(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "trainer")
	}
	return c.JSON(fiber.Map{"data": dto.FromTrainer(trainer)})
}

// Update handles PUT /trainers/:id.
func (h *TrainersHandler) Update(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.TrainerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	trainer, err := h.trainers.GetByID(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "trainer")
	}

	if req.Name != "" {
		trainer.Name = req.Name
	}
	trainer.Email = req.Email
	trainer.Phone = req.Phone
	trainer.Specialty = req.Specialty

	if err := h.trainers.Update(c.Context(), filter, trainer); err != nil {
		return notFoundIfNoRows(err, "trainer")
	}
	return c.JSON(fiber.Map{"data": dto.FromTrainer(trainer)})
}

// Delete handles DELETE /trainers/:id.
func (h *TrainersHandler) Delete(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.trainers.Delete(c.Context(), filter, id); err != nil {
		return notFoundIfNoRows(err, "trainer")
	}
	return c.SendStatus(http.StatusNoContent)
}
