package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"leadpilot/lead-intent-api/internal/models"
)

type ResultRepository interface {
	Create(result *models.Result) error
	Exists(leadID, offerID uuid.UUID) (bool, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// Create implements ResultRepository. The unique index on (lead_id,
// offer_id) makes this an atomic create-if-absent: when two scoring runs
// race, exactly one insert succeeds and the other gets ErrDuplicatePair.
func (r *resultRepository) Create(result *models.Result) error {
	if err := r.db.Create(result).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePair
		}
		return fmt.Errorf("failed to create result: %w", err)
	}

	return nil
}

// Exists implements ResultRepository.
func (r *resultRepository) Exists(leadID, offerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Result{}).
		Where("lead_id = ? AND offer_id = ?", leadID, offerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check result existence: %w", err)
	}

	return count > 0, nil
}

// ListByOwner implements ResultRepository. Results are reachable through
// the leads owned by the caller and returned newest-first with their lead
// and offer resolved.
func (r *resultRepository) ListByOwner(ownerID uuid.UUID) ([]models.Result, error) {
	var results []models.Result
	err := r.db.
		Joins("JOIN leads ON leads.id = results.lead_id").
		Where("leads.added_by_id = ?", ownerID).
		Preload("Lead").
		Preload("Offer").
		Order("results.created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}
