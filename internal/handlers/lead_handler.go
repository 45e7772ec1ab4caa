package handlers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"leadpilot/lead-intent-api/internal/middleware"
	"leadpilot/lead-intent-api/internal/models"
	"leadpilot/lead-intent-api/internal/repositories"
	"leadpilot/lead-intent-api/internal/services"
)

type LeadHandler struct {
	leadRepo    repositories.LeadRepository
	parser      services.LeadParserService
	maxFileSize int64
}

func NewLeadHandler(
	leadRepo repositories.LeadRepository,
	parser services.LeadParserService,
	maxFileSize int64,
) *LeadHandler {
	return &LeadHandler{
		leadRepo:    leadRepo,
		parser:      parser,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /leads/upload. The upload is all-or-nothing: a
// malformed file rejects the whole batch and nothing is ingested.
func (h *LeadHandler) HandleUpload(c *fiber.Ctx) error {
	ownerID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Upload file field name must be 'file'",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer src.Close()

	var records []services.LeadRecord
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		records, err = h.parser.ParseCSV(src)
	case ".xlsx":
		records, err = h.parser.ParseXLSX(src)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported file type. Upload a .csv or .xlsx file",
		})
	}
	if err != nil {
		if errors.Is(err, services.ErrMalformedUpload) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid upload: %v", err),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to parse upload",
		})
	}

	leads := make([]*models.Lead, 0, len(records))
	for _, r := range records {
		leads = append(leads, &models.Lead{
			Name:        r.Name,
			Role:        r.Role,
			Company:     r.Company,
			Industry:    r.Industry,
			Location:    r.Location,
			LinkedinBio: r.LinkedinBio,
			AddedByID:   &ownerID,
		})
	}

	if err := h.leadRepo.CreateBatch(leads); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save leads",
		})
	}

	created := make([]models.Lead, 0, len(leads))
	for _, lead := range leads {
		created = append(created, *lead)
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadLeadsResponse{
		Count: len(created),
		Leads: created,
	})
}

// HandleListLeads handles GET /leads
func (h *LeadHandler) HandleListLeads(c *fiber.Ctx) error {
	ownerID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	leads, err := h.leadRepo.ListByOwner(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list leads",
		})
	}

	return c.JSON(leads)
}
