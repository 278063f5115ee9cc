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

// AssetsHandler exposes asset CRUD under the caller's tenant scope.
type AssetsHandler struct {
	assets repository.AssetRepository
}

// NewAssetsHandler constructs handler.
func NewAssetsHandler(assets repository.AssetRepository) *AssetsHandler {
	return &AssetsHandler{assets: assets}
}

// List handles GET /assets.
func (h *AssetsHandler) List(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	assets, err := h.assets.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromAssets(assets)})
}

// Create handles POST /assets.
func (h *AssetsHandler) Create(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}

	var req dto.AssetRequest
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

	asset := &domain.Asset{
		GymID:     gymID,
		Name:      req.Name,
		Category:  req.Category,
		CostCents: req.CostCents,
	}
	if req.PurchasedAt != nil {
		asset.PurchasedAt = *req.PurchasedAt
	} else {
		asset.PurchasedAt = time.Now()
	}

	if err := h.assets.Create(c.Context(), asset); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromAsset(asset)})
}

// Get handles GET /assets/:id.
func (h *AssetsHandler) Get(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	asset, err := h.assets.GetByID(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "asset")
	}
	return c.JSON(fiber.Map{"data": dto.FromAsset(asset)})
}

// Update handles PUT /assets/:id.
func (h *AssetsHandler) Update(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	asset, err := h.assets.GetByID(c.Context(), filter, id)
	if err != nil {
		return notFoundIfNoRows(err, "asset")
	}

	if req.Name != "" {
		asset.Name = req.Name
	}
	asset.Category = req.Category
	if req.CostCents > 0 {
		asset.CostCents = req.CostCents
	}
	if req.PurchasedAt != nil {
		asset.PurchasedAt = *req.PurchasedAt
	}

	if err := h.assets.Update(c.Context(), filter, asset); err != nil {
		return notFoundIfNoRows(err, "asset")
	}
	return c.JSON(fiber.Map{"data": dto.FromAsset(asset)})
}

// Delete handles DELETE /assets/:id.
func (h *AssetsHandler) Delete(c *fiber.Ctx) error {
	_, filter, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.assets.Delete(c.Context(), filter, id); err != nil {
		return notFoundIfNoRows(err, "asset")
	}
	return c.SendStatus(http.StatusNoContent)
}
