package handlers

import (
	"youthy-chat/internal/models"
	"youthy-chat/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PolicyHandler struct {
	store  *service.PolicyStore
	logger *zap.Logger
}

func NewPolicyHandler(store *service.PolicyStore, logger *zap.Logger) *PolicyHandler {
	return &PolicyHandler{
		store:  store,
		logger: logger,
	}
}

// ListByCategory godoc
// @Summary List policies in a category
// @Description Returns every policy of exactly the given category
// @Tags policies
// @Produce json
// @Param category path string true "Category id" Enums(housing, employment, startup, education, assetBuilding, welfare, culture, other)
// @Success 200 {array} models.PolicyRecord
// @Failure 400 {object} map[string]string
// @Router /api/policies/{category} [get]
func (h *PolicyHandler) ListByCategory(c *fiber.Ctx) error {
	category := models.Category(c.Params("category"))
	if !models.ValidCategory(category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown category",
		})
	}

	policies := h.store.ByCategory(category)
	if policies == nil {
		policies = []models.PolicyRecord{}
	}
	return c.JSON(policies)
}
