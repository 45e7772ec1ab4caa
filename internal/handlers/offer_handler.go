package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"leadpilot/lead-intent-api/internal/middleware"
	"leadpilot/lead-intent-api/internal/models"
	"leadpilot/lead-intent-api/internal/repositories"
)

type OfferHandler struct {
	offerRepo repositories.OfferRepository
	validate  *validator.Validate
}

func NewOfferHandler(offerRepo repositories.OfferRepository) *OfferHandler {
	return &OfferHandler{
		offerRepo: offerRepo,
		validate:  validator.New(),
	}
}

// HandleCreateOffer handles POST /offers
func (h *OfferHandler) HandleCreateOffer(c *fiber.Ctx) error {
	ownerID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req models.CreateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	offer := &models.Offer{
		Name:             req.Name,
		AddedByID:        &ownerID,
		ValueProps:       req.ValueProps,
		IdealUseCases:    req.IdealUseCases,
		TargetRoles:      strings.Join(req.TargetRoles, ","),
		TargetIndustries: strings.Join(req.TargetIndustries, ","),
	}

	if err := h.offerRepo.Create(offer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create offer",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(offer)
}

// HandleListOffers handles GET /offers
func (h *OfferHandler) HandleListOffers(c *fiber.Ctx) error {
	ownerID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	offers, err := h.offerRepo.ListByOwner(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list offers",
		})
	}

	return c.JSON(offers)
}
