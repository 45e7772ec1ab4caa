package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"leadpilot/lead-intent-api/internal/middleware"
	"leadpilot/lead-intent-api/internal/models"
	"leadpilot/lead-intent-api/internal/services"
)

type ScoreHandler struct {
	scoringService services.ScoringService
}

func NewScoreHandler(scoringService services.ScoringService) *ScoreHandler {
	return &ScoreHandler{scoringService: scoringService}
}

// HandleScore handles POST /score?offer_id=<uuid>. Classifier failures are
// absorbed into the summary's skipped list; only an unresolvable offer or
// a bad offer id fail the request.
func (h *ScoreHandler) HandleScore(c *fiber.Ctx) error {
	ownerID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	offerIDParam := c.Query("offer_id")
	if offerIDParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "offer_id is required",
		})
	}

	offerID, err := uuid.Parse(offerIDParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid offer_id format",
		})
	}

	summary, err := h.scoringService.ScoreOffer(c.Context(), ownerID, offerID)
	if err != nil {
		if errors.Is(err, services.ErrOfferNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Offer not found. Create one via /offers",
			})
		}
		if errors.Is(err, services.ErrNothingToScore) {
			return c.JSON(fiber.Map{
				"detail":    "No unscored leads for this offer",
				"processed": 0,
				"skipped":   []string{},
				"results":   []models.Result{},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Scoring run failed",
		})
	}

	return c.JSON(summary)
}
