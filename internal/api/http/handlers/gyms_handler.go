package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/gym-service/internal/api/dto"
	"github.com/spec-kit/gym-service/internal/domain"
	"github.com/spec-kit/gym-service/internal/events"
	"github.com/spec-kit/gym-service/internal/repository"
	apperrors "github.com/spec-kit/gym-service/pkg/util"
)

// GymsHandler exposes tenant administration. Listing is tenant-scoped, so
// an ordinary admin sees only their own gym while the platform gym sees all.
type GymsHandler struct {
	gyms       repository.GymRepository
	dispatcher events.Dispatcher
}

// NewGymsHandler constructs handler.
func NewGymsHandler(gyms repository.GymRepository, dispatcher events.Dispatcher) *GymsHandler {
	return &GymsHandler{gyms: gyms, dispatcher: dispatcher}
}

// List handles GET /gyms.
func (h *GymsHandler) List(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	gyms, err := h.gyms.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromGyms(gyms)})
}

// Create handles POST /gyms. Only the platform gym may onboard new tenants.
func (h *GymsHandler) Create(c *fiber.Ctx) error {
	identity, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	if !filter.All {
		return apperrors.NewForbidden("only the platform gym can create gyms")
	}

	var req dto.GymRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	status := domain.SubscriptionStatus(req.SubscriptionStatus)
	if status == "" {
		status = domain.SubscriptionTrial
	}

	gym := &domain.Gym{Name: req.Name, SubscriptionStatus: status}
	if err := h.gyms.Create(c.Context(), gym); err != nil {
		return err
	}

	if h.dispatcher != nil {
		_ = h.dispatcher.Publish(c.Context(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventGymCreated,
			GymID:     gym.ID,
			Actor:     events.Actor{UserID: identity.UserID, Role: identity.Role},
			Timestamp: time.Now(),
			Payload:   events.GymCreatedPayload{Name: gym.Name},
		})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromGym(gym)})
}

// Get handles GET /gyms/:id.
func (h *GymsHandler) Get(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if !filter.Admits(id) {
		return apperrors.NewNotFound("gym", nil)
	}

	gym, err := h.gyms.GetByID(c.Context(), id)
	if err != nil {
		return notFoundIfNoRows(err, "gym")
	}
	return c.JSON(fiber.Map{"data": dto.FromGym(gym)})
}

// Update handles PUT /gyms/:id.
func (h *GymsHandler) Update(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if !filter.Admits(id) {
		return apperrors.NewNotFound("gym", nil)
	}

	var req dto.GymRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	gym, err := h.gyms.GetByID(c.Context(), id)
	if err != nil {
		return notFoundIfNoRows(err, "gym")
	}

	if req.Name != "" {
		gym.Name = req.Name
	}
	if req.SubscriptionStatus != "" {
		gym.SubscriptionStatus = domain.SubscriptionStatus(req.SubscriptionStatus)
	}

	if err := h.gyms.Update(c.Context(), gym); err != nil {
		return notFoundIfNoRows(err, "gym")
	}
	return c.JSON(fiber.Map{"data": dto.FromGym(gym)})
}
