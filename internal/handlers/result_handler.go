package handlers

import (
	"github.com/gofiber/fiber/v2"

	"leadpilot/lead-intent-api/internal/middleware"
	"leadpilot/lead-intent-api/internal/repositories"
)

type ResultHandler struct {
	resultRepo repositories.ResultRepository
}

func NewResultHandler(resultRepo repositories.ResultRepository) *ResultHandler {
	return &ResultHandler{resultRepo: resultRepo}
}

// HandleListResults handles GET /results, newest-first.
func (h *ResultHandler) HandleListResults(c *fiber.Ctx) error {
	ownerID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	results, err := h.resultRepo.ListByOwner(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list results",
		})
	}

	return c.JSON(results)
}
